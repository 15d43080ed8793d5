package model

// QuoteRequest is one clerk interaction: a unit, a customer and a discount.
// Requests are ephemeral and never persisted.
type QuoteRequest struct {
	UnitID      string  `json:"unitId" binding:"required"`
	Customer    string  `json:"customer" binding:"required"`
	DiscountPct float64 `json:"discountPct" binding:"min=0,max=100"`
}

// QuoteResult holds the derived amounts for one quote.
type QuoteResult struct {
	Net   float64 `json:"net"`   // base price after discount
	Fees  float64 `json:"fees"`  // fixed office fee
	Total float64 `json:"total"` // net + fees
}
