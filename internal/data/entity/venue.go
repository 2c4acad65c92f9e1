package entity

import "github.com/google/uuid"

type Venue struct {
	Base
	Name               string   `db:"name"`
	City               string   `db:"city"`
	State              string   `db:"state"`
	Address            string   `db:"address"`
	Phone              string   `db:"phone"`
	ImageLink          string   `db:"image_link"`
	FacebookLink       string   `db:"facebook_link"`
	WebsiteLink        string   `db:"website_link"`
	SeekingTalent      bool     `db:"seeking_talent"`
	Genres             []string `db:"genres"`
	SeekingDescription string   `db:"seeking_description"`
}

// VenueSummary is a venue row with its upcoming show count.
type VenueSummary struct {
	ID               uuid.UUID
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}
