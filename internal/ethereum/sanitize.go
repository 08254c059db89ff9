package ethereum

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// SanitizeReceipt renders the receipt as a JSON friendly map where every
// binary value is a 0x-prefixed hex string.
func SanitizeReceipt(receipt *types.Receipt) map[string]any {
	if receipt == nil {
		return nil
	}

	logs := make([]any, 0, len(receipt.Logs))
	for _, log := range receipt.Logs {
		if log == nil {
			continue
		}
		logs = append(logs, map[string]any{
			"address":          log.Address,
			"topics":           log.Topics,
			"data":             log.Data,
			"blockNumber":      log.BlockNumber,
			"transactionHash":  log.TxHash,
			"transactionIndex": log.TxIndex,
			"blockHash":        log.BlockHash,
			"logIndex":         log.Index,
			"removed":          log.Removed,
		})
	}

	raw := map[string]any{
		"type":              receipt.Type,
		"status":            receipt.Status,
		"cumulativeGasUsed": receipt.CumulativeGasUsed,
		"logsBloom":         receipt.Bloom.Bytes(),
		"logs":              logs,
		"transactionHash":   receipt.TxHash,
		"contractAddress":   receipt.ContractAddress,
		"gasUsed":           receipt.GasUsed,
		"effectiveGasPrice": receipt.EffectiveGasPrice,
		"blockHash":         receipt.BlockHash,
		"blockNumber":       receipt.BlockNumber,
		"transactionIndex":  receipt.TransactionIndex,
	}

	return Sanitize(raw).(map[string]any)
}

// Sanitize walks v and replaces binary leaves (byte slices and arrays,
// hashes, addresses) with hex strings. Maps and slices are walked
// recursively. Big integers stay numeric while they fit in 64 bits and
// become decimal strings beyond that. Any other unrecognised leaf falls
// back to its string form.
func Sanitize(v any) any {
	switch value := v.(type) {
	case nil:
		return nil
	case string, bool, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return value
	case []byte:
		return hexutil.Encode(value)
	case common.Hash:
		return value.Hex()
	case common.Address:
		return value.Hex()
	case *big.Int:
		switch {
		case value == nil:
			return nil
		case value.IsUint64():
			return value.Uint64()
		case value.IsInt64():
			return value.Int64()
		}
		return value.String()
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = Sanitize(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = Sanitize(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Sanitize(rv.Elem().Interface())
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(buf), rv)
			return hexutil.Encode(buf)
		}
		return sanitizeList(rv)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return hexutil.Encode(rv.Bytes())
		}
		return sanitizeList(rv)
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Sanitize(iter.Value().Interface())
		}
		return out
	}

	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}

	return fmt.Sprintf("%v", v)
}

func sanitizeList(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = Sanitize(rv.Index(i).Interface())
	}
	return out
}
