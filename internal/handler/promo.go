package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// PromoStore looks up promo codes.  Implemented by *repository.PromoRepo.
type PromoStore interface {
	GetByCode(ctx context.Context, code string) (*model.PromoCode, error)
}

// PromoHandler validates promo codes on behalf of the checkout page.
// Validation never mutates state, so repeated calls with the same code
// yield identical results.
type PromoHandler struct {
	Promos PromoStore
}

// NewPromoHandler constructs a PromoHandler.  The store must be non-nil.
func NewPromoHandler(store PromoStore) *PromoHandler {
	if store == nil {
		panic("nil store passed to NewPromoHandler")
	}
	return &PromoHandler{Promos: store}
}

// Validate handles POST /promo/validate.  Status codes mirror the
// legacy API: 400 for a missing or inactive code, 404 for an unknown
// one.  The valid/message body shape is part of the public contract.
func (h *PromoHandler) Validate(c echo.Context) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	code := strings.TrimSpace(body.Code)
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing promo code"})
	}

	promo, err := h.Promos.GetByCode(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrPromoNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"valid":   false,
				"message": "Invalid promo code",
			})
		}
		c.Logger().Errorf("promo lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	if !promo.IsActive {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"valid":   false,
			"message": "Promo code is inactive",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"valid":              true,
		"discountPercentage": promo.DiscountValue,
	})
}
