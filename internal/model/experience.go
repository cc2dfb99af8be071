package model

import "time"

// Experience represents a bookable activity listed in the catalog.
// Experiences are read-only from the booking flow's perspective;
// this struct corresponds to a row in the `experiences` table.
//
// Fields:
//  ID          – primary key identifier (uuid string).
//  Title       – display title of the experience.
//  Details     – optional short description (nullable).
//  About       – optional long-form description (nullable).
//  Location    – city or venue where the experience takes place.
//  ImageURL    – optional image reference (nullable).
//  PriceUnits  – price per person in the smallest display unit.
//  IsAvailable – whether the experience is open for booking at all.
//  CreatedAt   – timestamp when the row was created.
//  UpdatedAt   – timestamp of last update.
type Experience struct {
	ID          string    // experiences.id
	Title       string    // experiences.title
	Details     *string   // experiences.details (nullable)
	About       *string   // experiences.about (nullable)
	Location    string    // experiences.location
	ImageURL    *string   // experiences.image_url (nullable)
	PriceUnits  int64     // experiences.price_units
	IsAvailable bool      // experiences.is_available
	CreatedAt   time.Time // experiences.created_at
	UpdatedAt   time.Time // experiences.updated_at
}
