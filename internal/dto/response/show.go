package response

import (
	"time"

	"github.com/billwiliams/fyyur/internal/data/entity"
)

type ShowResponse struct {
	ID              string    `json:"id"`
	VenueID         string    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        string    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowCreatedResponse echoes the stored show row.
type ShowCreatedResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	ArtistID  string    `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

func ShowToResponse(show *entity.ShowListing) ShowResponse {
	return ShowResponse{
		ID:              show.ShowID.String(),
		VenueID:         show.VenueID.String(),
		VenueName:       show.VenueName,
		ArtistID:        show.ArtistID.String(),
		ArtistName:      show.ArtistName,
		ArtistImageLink: show.ArtistImageLink,
		StartTime:       show.StartTime,
	}
}

func ShowToCreatedResponse(show *entity.Show) ShowCreatedResponse {
	return ShowCreatedResponse{
		ID:        show.ID.String(),
		VenueID:   show.VenueID.String(),
		ArtistID:  show.ArtistID.String(),
		StartTime: show.StartTime,
	}
}
