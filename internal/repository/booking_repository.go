package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/experience-booking/internal/model"
)

// BookingRepo creates and reads bookings.  It is the sole writer of
// the experience_slots.booked_count counter: the guarded increment and
// the booking insert are always executed inside one transaction so a
// failed reservation commits nothing.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Reserve atomically consumes one unit of the slot's capacity and
// records a booking.  The capacity check and the increment are a
// single conditional UPDATE, so concurrent reservations on the same
// slot can never push booked_count past capacity regardless of
// interleaving.  Possible errors:
//
//	ErrSlotNotFound     – the slot ID does not exist
//	ErrSlotUnavailable  – the slot is flagged unavailable or full
//	anything else       – storage failure; nothing was committed
func (r *BookingRepo) Reserve(ctx context.Context, slotID, name, email string) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Guarded increment: the WHERE clause is the availability check.
	// A plain read-then-write here would race under concurrency.
	const guard = `UPDATE experience_slots
	               SET booked_count = booked_count + 1
	               WHERE id = ? AND is_available = 1 AND booked_count < capacity`
	res, err := tx.ExecContext(ctx, guard, slotID)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Distinguish a missing slot from a full or disabled one.
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM experience_slots WHERE id = ?`, slotID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrSlotUnavailable
	}

	b := &model.Booking{
		ID:            uuid.NewString(),
		SlotID:        slotID,
		CustomerName:  name,
		CustomerEmail: email,
		Status:        model.BookingStatusBooked,
	}
	const ins = `INSERT INTO bookings (id, slot_id, customer_name, customer_email, status)
	             VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, ins, b.ID, b.SlotID, b.CustomerName, b.CustomerEmail, b.Status); err != nil {
		return nil, err
	}
	// Query back the row to populate the DB-assigned timestamp.
	const sel = `SELECT created_at FROM bookings WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

// GetByID returns a single booking.  It returns ErrBookingNotFound
// when the ID does not exist.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	const q = `SELECT id, slot_id, customer_name, customer_email, status, created_at
	           FROM bookings WHERE id = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.SlotID, &b.CustomerName, &b.CustomerEmail, &b.Status, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CountBySlot returns the number of booking rows recorded against a
// slot.  Used by operational tooling to cross-check the booked_count
// counter.
func (r *BookingRepo) CountBySlot(ctx context.Context, slotID string) (int64, error) {
	const q = `SELECT COUNT(*) FROM bookings WHERE slot_id = ?`
	var n int64
	if err := r.db.QueryRowContext(ctx, q, slotID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
