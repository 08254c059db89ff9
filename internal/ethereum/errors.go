package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrConnectivity     error = errors.New("ethereum node unreachable")
	ErrChainMismatch    error = errors.New("chain id mismatch")
	ErrNoChainIdentity  error = errors.New("chain id unknown")
	ErrNoCredential     error = errors.New("no signing credential configured")
	ErrGasEstimation    error = errors.New("gas estimation failed")
	ErrRead             error = errors.New("contract read failed")
	ErrDecode           error = errors.New("event decode failed")
	ErrUnknownMethod    error = errors.New("unknown contract method")
	ErrTransactionEmpty error = errors.New("transaction has no fee pricing")
)

// ContractRevertedError is returned when the node rejects a call or a
// transaction is included with a failed status.
type ContractRevertedError struct {
	Reason string
	Err    error
}

func (e *ContractRevertedError) Error() string {
	return fmt.Sprintf("contract reverted: %s", e.Reason)
}

func (e *ContractRevertedError) Unwrap() error {
	return e.Err
}

// AsRevert inspects a node error and reports whether it is a revert. The
// reason is taken from the structured revert payload when one is present,
// otherwise the raw error text is used.
func AsRevert(err error) (*ContractRevertedError, bool) {
	if err == nil {
		return nil, false
	}

	var reverted *ContractRevertedError
	if errors.As(err, &reverted) {
		return reverted, true
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := unpackRevertData(dataErr.ErrorData()); ok {
			return &ContractRevertedError{Reason: reason, Err: err}, true
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "revert") {
		return &ContractRevertedError{Reason: err.Error(), Err: err}, true
	}

	return nil, false
}

func unpackRevertData(data any) (string, bool) {
	var raw []byte
	switch d := data.(type) {
	case string:
		decoded, err := hexutil.Decode(d)
		if err != nil {
			return "", false
		}
		raw = decoded
	case []byte:
		raw = d
	default:
		return "", false
	}

	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return "", false
	}

	return reason, true
}
