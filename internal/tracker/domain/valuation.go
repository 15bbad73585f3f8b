package domain

// Valuation is the derived view of a position. CurrentValue, GainLossValue
// and GainLossPercent are nil when the record has no current price;
// PurchaseValue is always computed.
type Valuation struct {
	PurchaseValue   float64
	CurrentValue    *float64
	GainLossValue   *float64
	GainLossPercent *float64
}

// Valuate derives purchase value, current value and gain/loss from a
// record's quantity and prices. A zero purchase value yields a gain/loss
// percent of 0 rather than a division error. Plain IEEE-754 double
// arithmetic throughout, matching what a SQL projection would compute.
func Valuate(quantity, purchasePrice float64, currentPrice *float64) Valuation {
	v := Valuation{PurchaseValue: quantity * purchasePrice}

	if v.PurchaseValue == 0 {
		zero := 0.0
		v.GainLossPercent = &zero
	}

	if currentPrice == nil {
		return v
	}

	cv := quantity * (*currentPrice)
	gl := cv - v.PurchaseValue
	v.CurrentValue = &cv
	v.GainLossValue = &gl

	if v.GainLossPercent == nil {
		pct := gl / v.PurchaseValue * 100
		v.GainLossPercent = &pct
	}
	return v
}

// ValuateInvestment is a convenience wrapper over Valuate.
func ValuateInvestment(inv Investment) Valuation {
	return Valuate(inv.Quantity, inv.PurchasePrice, inv.CurrentPrice)
}
