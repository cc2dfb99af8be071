// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a reservation commits.
// It carries enough information for downstream consumers to log or
// notify without querying the primary database.  Email delivery is out
// of scope for this service; consumers decide what to do with the
// customer contact details.
type BookingConfirmedEvent struct {
	BookingID       string `json:"booking_id"`
	SlotID          string `json:"slot_id"`
	ExperienceID    string `json:"experience_id,omitempty"`
	ExperienceTitle string `json:"experience_title,omitempty"`
	Date            string `json:"date,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	ConfirmedAt     string `json:"confirmed_at"`
}
