package model

import "time"

// ExperienceSlot is a bookable time window on a given date with a
// fixed capacity.  The reservation path is the only writer of
// BookedCount, and the invariant 0 <= BookedCount <= Capacity must
// hold after every mutation.  IsAvailable is an independent
// admin-controlled flag; it is never derived from the counters, so
// availability checks must test both the flag and the counts.
//
// Fields:
//  ID          – primary key identifier (uuid string).
//  DateID      – owning experience date.
//  StartTime   – slot start, "HH:MM" in the experience's local time.
//  EndTime     – slot end, "HH:MM".
//  Capacity    – maximum confirmed bookings the slot accepts.
//  BookedCount – running total of confirmed bookings.
//  IsAvailable – admin flag gating new reservations.
//  CreatedAt   – timestamp when the row was created.
//  UpdatedAt   – timestamp of last update.
type ExperienceSlot struct {
	ID          string    // experience_slots.id
	DateID      string    // experience_slots.date_id
	StartTime   string    // experience_slots.start_time
	EndTime     string    // experience_slots.end_time
	Capacity    int       // experience_slots.capacity
	BookedCount int       // experience_slots.booked_count
	IsAvailable bool      // experience_slots.is_available
	CreatedAt   time.Time // experience_slots.created_at
	UpdatedAt   time.Time // experience_slots.updated_at
}

// AvailableCapacity returns the number of spots still open on the slot.
// It never returns a negative value.
func (s *ExperienceSlot) AvailableCapacity() int {
	if s.BookedCount >= s.Capacity {
		return 0
	}
	return s.Capacity - s.BookedCount
}
