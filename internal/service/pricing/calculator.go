// Package pricing computes quote amounts. Everything here is a pure
// function: callers are responsible for validating the discount range
// before calling in.
package pricing

import "github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"

// Net applies a discount percentage to a base price.
func Net(basePrice, discountPct float64) float64 {
	return basePrice * (1 - discountPct/100)
}

// Quote derives the full amount set for one quote. The office fee is a
// fixed add-on and is charged even when the discounted price is zero.
func Quote(basePrice, discountPct, officeFee float64) model.QuoteResult {
	net := Net(basePrice, discountPct)
	return model.QuoteResult{
		Net:   net,
		Fees:  officeFee,
		Total: net + officeFee,
	}
}
