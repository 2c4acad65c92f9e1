package entity

import "github.com/google/uuid"

type Artist struct {
	Base
	Name               string   `db:"name"`
	City               string   `db:"city"`
	State              string   `db:"state"`
	Phone              string   `db:"phone"`
	Genres             []string `db:"genres"`
	ImageLink          string   `db:"image_link"`
	FacebookLink       string   `db:"facebook_link"`
	WebsiteLink        string   `db:"website_link"`
	SeekingVenue       bool     `db:"seeking_venue"`
	SeekingDescription string   `db:"seeking_description"`
}

// ArtistSummary is an artist row with its upcoming show count.
type ArtistSummary struct {
	ID               uuid.UUID
	Name             string
	NumUpcomingShows int
}
