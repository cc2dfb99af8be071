package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/queue"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// BookingStore creates and reads bookings.  Reserve must be atomic:
// under concurrent calls for the same slot the number of successes
// never exceeds the slot's capacity, and a failed call commits
// nothing.  Implemented by *repository.BookingRepo.
type BookingStore interface {
	Reserve(ctx context.Context, slotID, name, email string) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
}

// SlotStore resolves a slot to its owning date and experience.
// Implemented by *repository.SlotRepo.
type SlotStore interface {
	GetSummary(ctx context.Context, slotID string) (*repository.SlotSummary, error)
}

// EventPublisher sends a booking.confirmed event to the broker.
type EventPublisher func(ctx context.Context, ev queue.BookingConfirmedEvent) error

// BookingHandler implements the booking confirmation path.
type BookingHandler struct {
	Bookings BookingStore
	Slots    SlotStore
	Publish  EventPublisher // may be nil; then no event is emitted
}

// NewBookingHandler constructs a BookingHandler.  Bookings and Slots
// must be non-nil; Publish is optional.
func NewBookingHandler(bookings BookingStore, slots SlotStore, publish EventPublisher) *BookingHandler {
	if bookings == nil || slots == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Slots: slots, Publish: publish}
}

// Create handles POST /bookings.  The body must contain name, email
// and slotId; validation happens before any storage access.  The
// reservation itself is a single transaction in the store, so a full
// or unavailable slot produces a 400 with no partial state change and
// concurrent requests can never over-book a slot.
func (h *BookingHandler) Create(c echo.Context) error {
	var body struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		SlotID string `json:"slotId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	slotID := strings.TrimSpace(body.SlotID)
	if name == "" || email == "" || slotID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	ctx := c.Request().Context()
	booking, err := h.Bookings.Reserve(ctx, slotID, name, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Invalid slot ID"})
		case errors.Is(err, repository.ErrSlotUnavailable):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Slot is full or unavailable"})
		default:
			c.Logger().Errorf("reservation failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
	}

	h.publishConfirmed(ctx, c, booking)

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Booking confirmed",
		"bookingId": booking.ID,
	})
}

// publishConfirmed emits the booking.confirmed event best-effort.  The
// slot summary enriches the payload; if that lookup fails the event
// still goes out with the fields already at hand.  Publish failures
// never affect the HTTP response.
func (h *BookingHandler) publishConfirmed(ctx context.Context, c echo.Context, b *model.Booking) {
	if h.Publish == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:     b.ID,
		SlotID:        b.SlotID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		ConfirmedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if sum, err := h.Slots.GetSummary(ctx, b.SlotID); err == nil {
		ev.ExperienceID = sum.ExperienceID
		ev.ExperienceTitle = sum.ExperienceTitle
		ev.Date = sum.Date
		ev.StartTime = sum.StartTime
		ev.EndTime = sum.EndTime
	} else {
		c.Logger().Warnf("slot summary for event failed: %v", err)
	}
	if err := h.Publish(ctx, ev); err != nil {
		c.Logger().Warnf("booking.confirmed publish failed: %v", err)
	}
}

// Get handles GET /bookings/:id.  The confirmation page re-reads the
// booking it just created.
func (h *BookingHandler) Get(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
		c.Logger().Errorf("booking lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":            b.ID,
		"slotId":        b.SlotID,
		"customerName":  b.CustomerName,
		"customerEmail": b.CustomerEmail,
		"status":        b.Status,
		"createdAt":     b.CreatedAt.UTC().Format(time.RFC3339),
	})
}
