package model

import "time"

// ExperienceDate is one calendar day on which an experience runs.
// Each date owns a set of time slots.  Corresponds to a row in the
// `experience_dates` table.
//
// Fields:
//  ID           – primary key identifier (uuid string).
//  ExperienceID – owning experience.
//  Date         – the calendar date (time portion is zero).
//  IsActive     – admin flag; inactive dates are hidden from detail views.
//  CreatedAt    – timestamp when the row was created.
//  UpdatedAt    – timestamp of last update.
type ExperienceDate struct {
	ID           string    // experience_dates.id
	ExperienceID string    // experience_dates.experience_id
	Date         time.Time // experience_dates.date
	IsActive     bool      // experience_dates.is_active
	CreatedAt    time.Time // experience_dates.created_at
	UpdatedAt    time.Time // experience_dates.updated_at
}
