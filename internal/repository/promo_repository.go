package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/experience-booking/internal/model"
)

// PromoRepo provides read-only access to promo codes.  The booking
// flow never mutates promo rows; validation is idempotent and safely
// retryable.
type PromoRepo struct {
	db *sql.DB
}

// NewPromoRepo constructs a PromoRepo given a DB handle.
func NewPromoRepo(db *sql.DB) *PromoRepo {
	return &PromoRepo{db: db}
}

// GetByCode looks up a promo code by its unique code.  It returns
// ErrPromoNotFound when no row matches.  The caller decides how to
// treat an inactive code; this method returns the row either way.
func (r *PromoRepo) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	const q = `SELECT code, discount_value, is_active, created_at, updated_at
	           FROM promo_codes WHERE code = ?`
	var p model.PromoCode
	err := r.db.QueryRowContext(ctx, q, code).Scan(
		&p.Code, &p.DiscountValue, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
