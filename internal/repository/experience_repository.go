package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/experience-booking/internal/model"
)

// ExperienceRepo provides read-only access to the experience catalog:
// the experiences themselves plus their nested dates and time slots.
// All timestamp fields are assumed to be stored in UTC.
type ExperienceRepo struct {
	db *sql.DB
}

// NewExperienceRepo returns a new ExperienceRepo bound to the given database.
func NewExperienceRepo(db *sql.DB) *ExperienceRepo { return &ExperienceRepo{db: db} }

// ExperienceRow is the list representation of an experience.  It
// carries no nested dates; clients fetch the detail view for those.
// JSON field names follow the public API contract (camelCase).
type ExperienceRow struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Details     *string `json:"details"`
	About       *string `json:"about"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	Price       int64   `json:"price"`
	IsAvailable bool    `json:"availability"`
	CreatedAt   string  `json:"createdAt"`
}

// SlotDetail is a time slot as exposed in the detail view.  The
// remaining capacity is included so clients can clamp quantity
// selection without a second round trip.
type SlotDetail struct {
	ID                string `json:"id"`
	DateID            string `json:"dateId"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Capacity          int    `json:"capacity"`
	BookedCount       int    `json:"bookedCount"`
	IsAvailable       bool   `json:"isAvailable"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// DateDetail is a calendar date with its slots nested.
type DateDetail struct {
	ID       string       `json:"id"`
	Date     string       `json:"date"`
	IsActive bool         `json:"isActive"`
	Slots    []SlotDetail `json:"timeSlots"`
}

// ExperienceDetail is the full detail view: the experience plus all of
// its dates and each date's slots.
type ExperienceDetail struct {
	ExperienceRow
	Dates []DateDetail `json:"dates"`
}

// List returns all experiences ordered by creation time descending
// (newest first), without nested dates.  When the catalog is empty an
// empty slice is returned.
func (r *ExperienceRepo) List(ctx context.Context) ([]ExperienceRow, error) {
	const q = `SELECT id, title, details, about, location, image_url, price_units, is_available, created_at
	           FROM experiences
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ExperienceRow, 0)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rowFromModel(exp))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a single experience with its dates and slots nested.
// Dates are ordered chronologically and slots by start time so output
// is deterministic.  It returns ErrExperienceNotFound when the ID does
// not exist.
func (r *ExperienceRepo) GetByID(ctx context.Context, id string) (*ExperienceDetail, error) {
	const q = `SELECT id, title, details, about, location, image_url, price_units, is_available, created_at
	           FROM experiences WHERE id = ?`
	exp, err := scanExperience(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, err
	}
	det := ExperienceDetail{ExperienceRow: rowFromModel(exp), Dates: make([]DateDetail, 0)}

	// Load all dates for the experience, then all slots for those dates
	// in a single IN query and stitch them together in memory.
	const dateQ = `SELECT id, experience_id, date, is_active FROM experience_dates
	               WHERE experience_id = ? ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, dateQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	index := make(map[string]int)
	for rows.Next() {
		var d model.ExperienceDate
		if err := rows.Scan(&d.ID, &d.ExperienceID, &d.Date, &d.IsActive); err != nil {
			return nil, err
		}
		index[d.ID] = len(det.Dates)
		det.Dates = append(det.Dates, DateDetail{
			ID:       d.ID,
			Date:     d.Date.UTC().Format("2006-01-02"),
			IsActive: d.IsActive,
			Slots:    make([]SlotDetail, 0),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(det.Dates) == 0 {
		return &det, nil
	}

	ids := make([]interface{}, 0, len(det.Dates))
	placeholders := make([]string, 0, len(det.Dates))
	for _, d := range det.Dates {
		ids = append(ids, d.ID)
		placeholders = append(placeholders, "?")
	}
	slotQ := `SELECT id, date_id, start_time, end_time, capacity, booked_count, is_available
	          FROM experience_slots
	          WHERE date_id IN (` + strings.Join(placeholders, ",") + `)
	          ORDER BY date_id, start_time`
	srows, err := r.db.QueryContext(ctx, slotQ, ids...)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var s model.ExperienceSlot
		if err := srows.Scan(&s.ID, &s.DateID, &s.StartTime, &s.EndTime, &s.Capacity, &s.BookedCount, &s.IsAvailable); err != nil {
			return nil, err
		}
		idx, ok := index[s.DateID]
		if !ok {
			continue
		}
		det.Dates[idx].Slots = append(det.Dates[idx].Slots, SlotDetail{
			ID:                s.ID,
			DateID:            s.DateID,
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			Capacity:          s.Capacity,
			BookedCount:       s.BookedCount,
			IsAvailable:       s.IsAvailable,
			AvailableCapacity: s.AvailableCapacity(),
		})
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}
	return &det, nil
}

// rowScanner abstracts sql.Row and sql.Rows so list and detail queries
// can share one scan routine.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExperience(sc rowScanner) (model.Experience, error) {
	var e model.Experience
	var details, about, imageURL sql.NullString
	err := sc.Scan(&e.ID, &e.Title, &details, &about, &e.Location, &imageURL, &e.PriceUnits, &e.IsAvailable, &e.CreatedAt)
	if err != nil {
		return e, err
	}
	if details.Valid {
		v := details.String
		e.Details = &v
	}
	if about.Valid {
		v := about.String
		e.About = &v
	}
	if imageURL.Valid {
		v := imageURL.String
		e.ImageURL = &v
	}
	return e, nil
}

func rowFromModel(e model.Experience) ExperienceRow {
	return ExperienceRow{
		ID:          e.ID,
		Title:       e.Title,
		Details:     e.Details,
		About:       e.About,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		Price:       e.PriceUnits,
		IsAvailable: e.IsAvailable,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
