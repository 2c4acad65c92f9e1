package entity

import (
	"time"

	"github.com/google/uuid"
)

// Show links one venue and one artist at a point in time. It is never updated.
type Show struct {
	BaseSimple
	VenueID   uuid.UUID `db:"venue_id"`
	ArtistID  uuid.UUID `db:"artist_id"`
	StartTime time.Time `db:"start_time"`
}

// ShowListing is a show joined with both of its parents.
type ShowListing struct {
	ShowID          uuid.UUID
	VenueID         uuid.UUID
	VenueName       string
	VenueImageLink  string
	ArtistID        uuid.UUID
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// IsUpcoming reports whether the show starts on or after today.
// today must already be truncated to midnight.
func (s ShowListing) IsUpcoming(today time.Time) bool {
	return !s.StartTime.Before(today)
}
