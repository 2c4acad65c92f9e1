package response

import (
	"time"

	"github.com/billwiliams/fyyur/internal/data/entity"
)

type ArtistResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ArtistSummaryResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistShowResponse is a show seen from the artist: the counterpart is the venue.
type ArtistShowResponse struct {
	VenueID        string    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type ArtistDetailResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Genres             []string             `json:"genres"`
	City               string               `json:"city"`
	State              string               `json:"state"`
	Phone              string               `json:"phone"`
	Website            string               `json:"website"`
	FacebookLink       string               `json:"facebook_link"`
	SeekingVenue       bool                 `json:"seeking_venue"`
	SeekingDescription string               `json:"seeking_description"`
	ImageLink          string               `json:"image_link"`
	PastShows          []ArtistShowResponse `json:"past_shows"`
	UpcomingShows      []ArtistShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

func ArtistToResponse(artist *entity.ArtistSummary) ArtistResponse {
	return ArtistResponse{ID: artist.ID.String(), Name: artist.Name}
}

func ArtistSummaryToResponse(artist *entity.ArtistSummary) ArtistSummaryResponse {
	return ArtistSummaryResponse{
		ID:               artist.ID.String(),
		Name:             artist.Name,
		NumUpcomingShows: artist.NumUpcomingShows,
	}
}

func ArtistToDetailResponse(artist *entity.Artist) ArtistDetailResponse {
	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}
	return ArtistDetailResponse{
		ID:                 artist.ID.String(),
		Name:               artist.Name,
		Genres:             genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          []ArtistShowResponse{},
		UpcomingShows:      []ArtistShowResponse{},
	}
}

func ListingToArtistShow(show *entity.ShowListing) ArtistShowResponse {
	return ArtistShowResponse{
		VenueID:        show.VenueID.String(),
		VenueName:      show.VenueName,
		VenueImageLink: show.VenueImageLink,
		StartTime:      show.StartTime,
	}
}
