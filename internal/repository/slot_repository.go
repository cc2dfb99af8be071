package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/experience-booking/internal/model"
)

// SlotRepo provides read access to experience slots.  Mutation of the
// booked_count counter lives in BookingRepo so the guarded increment
// and the booking insert always share one transaction.
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo constructs a SlotRepo given a DB handle.
func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// GetByID returns a single slot row.  It returns ErrSlotNotFound when
// the ID does not exist.
func (r *SlotRepo) GetByID(ctx context.Context, id string) (*model.ExperienceSlot, error) {
	const q = `SELECT id, date_id, start_time, end_time, capacity, booked_count, is_available, created_at, updated_at
	           FROM experience_slots WHERE id = ?`
	var s model.ExperienceSlot
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.DateID, &s.StartTime, &s.EndTime,
		&s.Capacity, &s.BookedCount, &s.IsAvailable,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SlotSummary joins a slot with its owning date and experience.  It
// carries everything the quote endpoint and the booking.confirmed
// event need: pricing, identity and remaining capacity.
type SlotSummary struct {
	SlotID          string `json:"slotId"`
	ExperienceID    string `json:"experienceId"`
	ExperienceTitle string `json:"experienceTitle"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	PriceUnits      int64  `json:"price"`
	Capacity        int    `json:"capacity"`
	BookedCount     int    `json:"bookedCount"`
	IsAvailable     bool   `json:"isAvailable"`
}

// AvailableCapacity returns the remaining capacity, never negative.
func (s *SlotSummary) AvailableCapacity() int {
	if s.BookedCount >= s.Capacity {
		return 0
	}
	return s.Capacity - s.BookedCount
}

// GetSummary loads a slot together with its date and experience.  It
// returns ErrSlotNotFound when the slot does not exist.
func (r *SlotRepo) GetSummary(ctx context.Context, slotID string) (*SlotSummary, error) {
	const q = `SELECT s.id, e.id, e.title, DATE_FORMAT(d.date, '%Y-%m-%d'),
	                  s.start_time, s.end_time, e.price_units,
	                  s.capacity, s.booked_count, s.is_available
	           FROM experience_slots s
	           JOIN experience_dates d ON d.id = s.date_id
	           JOIN experiences e ON e.id = d.experience_id
	           WHERE s.id = ?`
	var sum SlotSummary
	err := r.db.QueryRowContext(ctx, q, slotID).Scan(
		&sum.SlotID, &sum.ExperienceID, &sum.ExperienceTitle, &sum.Date,
		&sum.StartTime, &sum.EndTime, &sum.PriceUnits,
		&sum.Capacity, &sum.BookedCount, &sum.IsAvailable,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
