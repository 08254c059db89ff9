package ethereum

import (
	"context"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// UnsignedTransaction is a contract call ready to be signed.
type UnsignedTransaction struct {
	To      common.Address
	Method  string
	Args    []any
	Data    []byte
	From    common.Address
	Nonce   uint64
	Gas     uint64
	Value   *big.Int
	Pricing Pricing
	ChainID *big.Int
}

// CallMsg returns the transaction as a call message, used for gas estimation
// and revert replay.
func (tx UnsignedTransaction) CallMsg() geth.CallMsg {
	msg := geth.CallMsg{
		From:  tx.From,
		To:    &tx.To,
		Gas:   tx.Gas,
		Value: tx.Value,
		Data:  tx.Data,
	}

	switch p := tx.Pricing.(type) {
	case LegacyPricing:
		msg.GasPrice = p.GasPrice
	case DynamicPricing:
		msg.GasTipCap = p.GasTipCap
		msg.GasFeeCap = p.GasFeeCap
	}

	return msg
}

// TxData converts the transaction into its typed go-ethereum payload.
func (tx UnsignedTransaction) TxData() (types.TxData, error) {
	to := tx.To
	value := tx.Value
	if value == nil {
		value = new(big.Int)
	}

	switch p := tx.Pricing.(type) {
	case LegacyPricing:
		return &types.LegacyTx{
			Nonce:    tx.Nonce,
			GasPrice: p.GasPrice,
			Gas:      tx.Gas,
			To:       &to,
			Value:    value,
			Data:     tx.Data,
		}, nil
	case DynamicPricing:
		return &types.DynamicFeeTx{
			ChainID:   tx.ChainID,
			Nonce:     tx.Nonce,
			GasTipCap: p.GasTipCap,
			GasFeeCap: p.GasFeeCap,
			Gas:       tx.Gas,
			To:        &to,
			Value:     value,
			Data:      tx.Data,
		}, nil
	default:
		return nil, ErrTransactionEmpty
	}
}

// Overrides replace computed transaction fields. Setting GasPrice forces
// legacy pricing, setting GasTipCap or GasFeeCap forces dynamic pricing.
type Overrides struct {
	Gas       *uint64
	GasPrice  *big.Int
	GasTipCap *big.Int
	GasFeeCap *big.Int
	Value     *big.Int
}

// TransactionBuilder assembles unsigned contract calls.
type TransactionBuilder struct {
	chain    *ChainClient
	contract common.Address
	abi      abi.ABI
}

func NewTransactionBuilder(chain *ChainClient, contract common.Address, contractABI abi.ABI) *TransactionBuilder {
	return &TransactionBuilder{
		chain:    chain,
		contract: contract,
		abi:      contractABI,
	}
}

// Build packs the call and fills nonce, pricing and gas limit. The nonce is
// fetched from the node on every call.
func (b *TransactionBuilder) Build(ctx context.Context, method string, args []any, from common.Address, overrides *Overrides) (UnsignedTransaction, error) {
	if _, ok := b.abi.Methods[method]; !ok {
		return UnsignedTransaction{}, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	data, err := b.abi.Pack(method, args...)
	if err != nil {
		return UnsignedTransaction{}, fmt.Errorf("pack %s arguments: %w", method, err)
	}

	if overrides == nil {
		overrides = &Overrides{}
	}

	nonce, err := b.chain.NextNonce(ctx, from)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	value := new(big.Int)
	if overrides.Value != nil {
		value.Set(overrides.Value)
	}

	pricing, err := b.pricing(ctx, overrides)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	tx := UnsignedTransaction{
		To:      b.contract,
		Method:  method,
		Args:    args,
		Data:    data,
		From:    from,
		Nonce:   nonce,
		Value:   value,
		Pricing: pricing,
		ChainID: b.chain.ChainID(),
	}

	if overrides.Gas != nil {
		tx.Gas = *overrides.Gas
		return tx, nil
	}

	estimated, err := b.chain.EstimateGas(ctx, tx.CallMsg())
	if err != nil {
		return UnsignedTransaction{}, fmt.Errorf("estimate %s: %w", method, err)
	}
	tx.Gas = withGasMargin(estimated)

	return tx, nil
}

func (b *TransactionBuilder) pricing(ctx context.Context, overrides *Overrides) (Pricing, error) {
	if overrides.GasPrice != nil {
		return LegacyPricing{GasPrice: new(big.Int).Set(overrides.GasPrice)}, nil
	}

	model, err := b.chain.CurrentFeeModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("current fee model: %w", err)
	}

	if overrides.GasTipCap == nil && overrides.GasFeeCap == nil {
		return PricingFor(model), nil
	}

	dynamic, ok := PricingFor(model).(DynamicPricing)
	if !ok {
		dynamic = DynamicPricing{GasTipCap: DefaultPriorityFee()}
		dynamic.GasFeeCap = new(big.Int).Set(dynamic.GasTipCap)
	}
	if overrides.GasTipCap != nil {
		dynamic.GasTipCap = new(big.Int).Set(overrides.GasTipCap)
	}
	if overrides.GasFeeCap != nil {
		dynamic.GasFeeCap = new(big.Int).Set(overrides.GasFeeCap)
	}

	return dynamic, nil
}

// withGasMargin adds 20% to the estimate, rounding up.
func withGasMargin(estimated uint64) uint64 {
	return (estimated*6 + 4) / 5
}
