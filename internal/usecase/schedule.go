package usecase

import (
	"time"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/internal/dto/response"
	"github.com/billwiliams/fyyur/pkg/utils"
)

// Clock returns the current time in the display timezone.
type Clock func() time.Time

// today is the past/upcoming boundary shared by every query.
func (c Clock) today() time.Time {
	return utils.StartOfDay(c())
}

// partitionShows splits shows into those before today and those on or after it,
// keeping the input order within each side.
func partitionShows(shows []*entity.ShowListing, today time.Time) (past, upcoming []*entity.ShowListing) {
	for _, show := range shows {
		if show.IsUpcoming(today) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}
	return past, upcoming
}

// groupVenuesByArea groups venues by (city, state) in first-seen order.
func groupVenuesByArea(venues []*entity.VenueSummary) []response.VenueAreaResponse {
	type area struct{ city, state string }

	index := make(map[area]int)
	areas := []response.VenueAreaResponse{}
	for _, venue := range venues {
		key := area{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, response.VenueAreaResponse{
				City:   venue.City,
				State:  venue.State,
				Venues: []response.VenueSummaryResponse{},
			})
		}
		areas[i].Venues = append(areas[i].Venues, response.VenueSummaryToResponse(venue))
	}
	return areas
}
