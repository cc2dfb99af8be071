package model

import "time"

// PromoCode is a discount token validated server-side before checkout.
// Read-only from the booking flow.  Corresponds to a row in the
// `promo_codes` table; Code is the unique lookup key.
//
// Fields:
//  Code          – unique promo code string.
//  DiscountValue – discount percentage, 0..100 inclusive.
//  IsActive      – whether the code may currently be applied.
//  CreatedAt     – timestamp when the row was created.
//  UpdatedAt     – timestamp of last update.
type PromoCode struct {
	Code          string    // promo_codes.code
	DiscountValue int       // promo_codes.discount_value
	IsActive      bool      // promo_codes.is_active
	CreatedAt     time.Time // promo_codes.created_at
	UpdatedAt     time.Time // promo_codes.updated_at
}
