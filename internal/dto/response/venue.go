package response

import (
	"time"

	"github.com/billwiliams/fyyur/internal/data/entity"
)

type VenueSummaryResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueAreaResponse groups the venues of one city.
type VenueAreaResponse struct {
	City   string                 `json:"city"`
	State  string                 `json:"state"`
	Venues []VenueSummaryResponse `json:"venues"`
}

// VenueShowResponse is a show seen from the venue: the counterpart is the artist.
type VenueShowResponse struct {
	ArtistID        string    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type VenueDetailResponse struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Genres             []string            `json:"genres"`
	Address            string              `json:"address"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingTalent      bool                `json:"seeking_talent"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []VenueShowResponse `json:"past_shows"`
	UpcomingShows      []VenueShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

func VenueSummaryToResponse(venue *entity.VenueSummary) VenueSummaryResponse {
	return VenueSummaryResponse{
		ID:               venue.ID.String(),
		Name:             venue.Name,
		NumUpcomingShows: venue.NumUpcomingShows,
	}
}

// VenueToDetailResponse fills the record fields; show partitions are set by the caller.
func VenueToDetailResponse(venue *entity.Venue) VenueDetailResponse {
	genres := venue.Genres
	if genres == nil {
		genres = []string{}
	}
	return VenueDetailResponse{
		ID:                 venue.ID.String(),
		Name:               venue.Name,
		Genres:             genres,
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          []VenueShowResponse{},
		UpcomingShows:      []VenueShowResponse{},
	}
}

func ListingToVenueShow(show *entity.ShowListing) VenueShowResponse {
	return VenueShowResponse{
		ArtistID:        show.ArtistID.String(),
		ArtistName:      show.ArtistName,
		ArtistImageLink: show.ArtistImageLink,
		StartTime:       show.StartTime,
	}
}
