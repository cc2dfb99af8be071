// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting SQL error details. For example, ErrSlotUnavailable
// signals a business-rule violation (no remaining capacity) while
// ErrSlotNotFound indicates the referenced slot simply does not exist.
package repository

import "errors"

// ErrExperienceNotFound is returned when no experience exists for the
// requested ID. Handlers should translate this into an HTTP 404.
var ErrExperienceNotFound = errors.New("experience not found")

// ErrSlotNotFound is returned when no slot exists for the requested ID.
// Handlers should translate this into an HTTP 404.
var ErrSlotNotFound = errors.New("slot not found")

// ErrSlotUnavailable is returned when a reservation attempt fails the
// capacity guard: the slot is flagged unavailable or booked_count has
// reached capacity. Nothing is committed when this error is returned.
// Handlers should translate this into an HTTP 400.
var ErrSlotUnavailable = errors.New("slot unavailable")

// ErrBookingNotFound is returned when no booking exists for the
// requested ID. Handlers should translate this into an HTTP 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrPromoNotFound is returned when no promo code row matches the
// supplied code. Handlers should translate this into an HTTP 404 with
// a valid:false body.
var ErrPromoNotFound = errors.New("promo code not found")
