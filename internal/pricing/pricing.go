// Package pricing implements the checkout price computation: subtotal,
// promo discount, tax and total.  Everything operates on integer
// currency units (the smallest display unit) and is free of side
// effects, so results are reproducible and trivially testable.
package pricing

// TaxRatePercent is the tax applied to the post-discount subtotal.
const TaxRatePercent = 5

// Quote is the line-item breakdown for a prospective booking.
type Quote struct {
	UnitPrice          int64 `json:"unitPrice"`
	Quantity           int   `json:"quantity"`
	Subtotal           int64 `json:"subtotal"`
	DiscountPercentage int   `json:"discountPercentage"`
	DiscountAmount     int64 `json:"discountAmount"`
	Taxes              int64 `json:"taxes"`
	Total              int64 `json:"total"`
}

// Calculate builds a Quote from a non-negative unit price, a positive
// quantity and a discount percentage in 0..100.  Tax is always
// computed on the discounted subtotal.  Out-of-range discounts are
// clamped rather than rejected; callers validate promo codes before
// calling.
func Calculate(unitPrice int64, quantity, discountPercentage int) Quote {
	if unitPrice < 0 {
		unitPrice = 0
	}
	if quantity < 1 {
		quantity = 1
	}
	if discountPercentage < 0 {
		discountPercentage = 0
	}
	if discountPercentage > 100 {
		discountPercentage = 100
	}

	subtotal := unitPrice * int64(quantity)
	discount := percentOf(subtotal, discountPercentage)
	discounted := subtotal - discount
	taxes := percentOf(discounted, TaxRatePercent)

	return Quote{
		UnitPrice:          unitPrice,
		Quantity:           quantity,
		Subtotal:           subtotal,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     discount,
		Taxes:              taxes,
		Total:              discounted + taxes,
	}
}

// percentOf returns pct% of amount rounded half-up.  Inputs are
// non-negative, so half-up and half-away-from-zero coincide.
func percentOf(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}

// ClampQuantity restricts a requested quantity to [1, available].
// When no capacity is available it returns 0, meaning the slot is not
// bookable at all.
func ClampQuantity(requested, available int) int {
	if available <= 0 {
		return 0
	}
	if requested < 1 {
		return 1
	}
	if requested > available {
		return available
	}
	return requested
}
