package model

import "time"

// BookingStatusBooked is the only status the reservation path produces.
// The column is an enum so additional states can be introduced without
// a schema change, but nothing in this service writes them.
const BookingStatusBooked = "BOOKED"

// Booking records a confirmed reservation of exactly one unit of a
// slot's capacity.  Bookings are created once and never mutated or
// deleted by this service.  Corresponds to a row in the `bookings`
// table.
//
// Fields:
//  ID            – primary key identifier (uuid string).
//  SlotID        – the slot whose capacity this booking consumes.
//  CustomerName  – name supplied at checkout.
//  CustomerEmail – email supplied at checkout.
//  Status        – always BOOKED.
//  CreatedAt     – timestamp when the booking was confirmed.
type Booking struct {
	ID            string    // bookings.id
	SlotID        string    // bookings.slot_id
	CustomerName  string    // bookings.customer_name
	CustomerEmail string    // bookings.customer_email
	Status        string    // bookings.status
	CreatedAt     time.Time // bookings.created_at
}
