package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/pricing"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// QuoteHandler prices a prospective booking server-side: unit price
// from the slot's experience, quantity clamped to the slot's remaining
// capacity, optional promo discount, tax on the discounted subtotal.
type QuoteHandler struct {
	Slots  SlotStore
	Promos PromoStore
}

// NewQuoteHandler constructs a QuoteHandler.  Both stores must be non-nil.
func NewQuoteHandler(slots SlotStore, promos PromoStore) *QuoteHandler {
	if slots == nil || promos == nil {
		panic("nil store passed to NewQuoteHandler")
	}
	return &QuoteHandler{Slots: slots, Promos: promos}
}

// Quote handles POST /quote.  Body: {slotId, quantity, promoCode?}.
// Quantity is clamped to [1, availableCapacity] rather than rejected;
// a slot with zero remaining capacity yields 400.  Promo failures use
// the same valid/message shape as POST /promo/validate.
func (h *QuoteHandler) Quote(c echo.Context) error {
	var body struct {
		SlotID    string `json:"slotId"`
		Quantity  int    `json:"quantity"`
		PromoCode string `json:"promoCode"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	slotID := strings.TrimSpace(body.SlotID)
	if slotID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	ctx := c.Request().Context()
	sum, err := h.Slots.GetSummary(ctx, slotID)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Invalid slot ID"})
		}
		c.Logger().Errorf("slot summary failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	available := sum.AvailableCapacity()
	if !sum.IsAvailable || available == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Slot is full or unavailable"})
	}
	qty := pricing.ClampQuantity(body.Quantity, available)

	discount := 0
	if code := strings.TrimSpace(body.PromoCode); code != "" {
		promo, err := h.Promos.GetByCode(ctx, code)
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
		discount = promo.DiscountValue
	}

	q := pricing.Calculate(sum.PriceUnits, qty, discount)
	return c.JSON(http.StatusOK, echo.Map{
		"slotId":             sum.SlotID,
		"experienceId":       sum.ExperienceID,
		"unitPrice":          q.UnitPrice,
		"quantity":           q.Quantity,
		"subtotal":           q.Subtotal,
		"discountPercentage": q.DiscountPercentage,
		"discountAmount":     q.DiscountAmount,
		"taxes":              q.Taxes,
		"total":              q.Total,
		"availableCapacity":  available,
	})
}
