package ethereum

import "math/big"

// FeeModel is the pricing scheme observed on the network, either
// LegacyFeeModel or DynamicFeeModel.
type FeeModel interface {
	feeModel()
}

// LegacyFeeModel prices transactions with a single gas price.
type LegacyFeeModel struct {
	GasPrice *big.Int
}

// DynamicFeeModel carries the pending block base fee and the node suggested
// priority fee. SuggestedTip is nil when the node could not suggest one.
type DynamicFeeModel struct {
	BaseFee      *big.Int
	SuggestedTip *big.Int
}

func (LegacyFeeModel) feeModel()  {}
func (DynamicFeeModel) feeModel() {}

// Pricing holds the fee fields of an unsigned transaction, either
// LegacyPricing or DynamicPricing. A transaction carries exactly one.
type Pricing interface {
	pricing()
}

// LegacyPricing sets gasPrice.
type LegacyPricing struct {
	GasPrice *big.Int
}

// DynamicPricing sets maxPriorityFeePerGas and maxFeePerGas (type 2).
type DynamicPricing struct {
	GasTipCap *big.Int
	GasFeeCap *big.Int
}

func (LegacyPricing) pricing()  {}
func (DynamicPricing) pricing() {}

const defaultPriorityFeeWei = 2_000_000_000

// DefaultPriorityFee is used when the node cannot suggest a priority fee.
// Every call returns a fresh value.
func DefaultPriorityFee() *big.Int {
	return big.NewInt(defaultPriorityFeeWei)
}

// PricingFor derives transaction fee fields from the observed fee model.
func PricingFor(model FeeModel) Pricing {
	switch m := model.(type) {
	case DynamicFeeModel:
		tip := m.SuggestedTip
		if tip == nil || tip.Sign() == 0 {
			tip = DefaultPriorityFee()
		}
		feeCap := new(big.Int).Mul(m.BaseFee, big.NewInt(2))
		feeCap.Add(feeCap, tip)
		return DynamicPricing{GasTipCap: new(big.Int).Set(tip), GasFeeCap: feeCap}
	case LegacyFeeModel:
		return LegacyPricing{GasPrice: new(big.Int).Set(m.GasPrice)}
	default:
		return nil
	}
}
