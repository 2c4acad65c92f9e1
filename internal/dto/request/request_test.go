package request

import (
	"net/url"
	"strings"
	"testing"

	"github.com/billwiliams/fyyur/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func venueForm() url.Values {
	return url.Values{
		"name":          {"The Musical Hop"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"address":       {"1015 Folsom Street"},
		"phone":         {"123-123-1234"},
		"genres":        {"Jazz", "Reggae", "Swing"},
		"facebook_link": {"https://www.facebook.com/TheMusicalHop"},
	}
}

func TestNewVenueRequest_Decodes(t *testing.T) {
	form := venueForm()
	form.Set("name", "  The Musical Hop  ")
	form.Add("genres", "  ")

	req := NewVenueRequest(form)

	assert.Equal(t, "The Musical Hop", req.Name)
	assert.Equal(t, []string{"Jazz", "Reggae", "Swing"}, req.Genres)
	assert.True(t, req.SeekingTalent, "absent seeking_talent defaults to true")
}

func TestNewVenueRequest_SeekingTalent(t *testing.T) {
	form := venueForm()
	form.Set("seeking_talent", "y")
	assert.True(t, NewVenueRequest(form).SeekingTalent)

	form.Set("seeking_talent", "false")
	assert.False(t, NewVenueRequest(form).SeekingTalent)
}

func TestVenueRequest_Validation(t *testing.T) {
	req := NewVenueRequest(venueForm())

	errs := utils.ValidateStruct(req)
	assert.Equal(t, map[string]string{"genres": "Not a valid genre choice"}, errs)

	req.Genres = []string{"Jazz", "Reggae"}
	assert.Empty(t, utils.ValidateStruct(req))
}

func TestVenueRequest_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f url.Values)
		field string
	}{
		{"missing name", func(f url.Values) { f.Del("name") }, "name"},
		{"bad state", func(f url.Values) { f.Set("state", "XX") }, "state"},
		{"missing address", func(f url.Values) { f.Del("address") }, "address"},
		{"bad phone", func(f url.Values) { f.Set("phone", "1231231234") }, "phone"},
		{"bad facebook", func(f url.Values) { f.Set("facebook_link", "https://www.facebook.com/a/b") }, "facebook_link"},
		{"bad image url", func(f url.Values) { f.Set("image_link", "not a url") }, "image_link"},
		{"no genres", func(f url.Values) { f.Del("genres") }, "genres"},
		{"long name", func(f url.Values) { f.Set("name", strings.Repeat("a", 121)) }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := venueForm()
			form["genres"] = []string{"Jazz"}
			tt.edit(form)

			errs := utils.ValidateStruct(NewVenueRequest(form))
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestVenueRequest_GenresJoinedLength(t *testing.T) {
	form := venueForm()
	var genres []string
	for i := 0; i < 12; i++ {
		genres = append(genres, "Musical Theatre")
	}
	form["genres"] = genres

	errs := utils.ValidateStruct(NewVenueRequest(form))
	assert.Contains(t, errs, "genres")
}

func TestNewArtistRequest(t *testing.T) {
	form := url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"326-123-5000"},
		"genres": {"Rock n Roll"},
	}

	req := NewArtistRequest(form)
	assert.True(t, req.SeekingVenue)
	assert.Empty(t, utils.ValidateStruct(req))

	form.Set("seeking_venue", "n")
	assert.False(t, NewArtistRequest(form).SeekingVenue)
}

func TestCityLength_OnlyBoundForVenues(t *testing.T) {
	longCity := strings.Repeat("x", 150)

	artist := url.Values{
		"name":   {"Guns N Petals"},
		"city":   {longCity},
		"state":  {"CA"},
		"phone":  {"326-123-5000"},
		"genres": {"Rock n Roll"},
	}
	assert.Empty(t, utils.ValidateStruct(NewArtistRequest(artist)))

	venue := venueForm()
	venue.Set("city", longCity)
	venue["genres"] = []string{"Jazz"}
	assert.Contains(t, utils.ValidateStruct(NewVenueRequest(venue)), "city")
}

func TestShowRequest_Validation(t *testing.T) {
	valid := url.Values{
		"artist_id":  {"4c6e5f1e-4b8d-4d0c-9a4b-1c0f3a2b7d11"},
		"venue_id":   {"9a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"},
		"start_time": {"2035-04-01 20:00:00"},
	}
	assert.Empty(t, utils.ValidateStruct(NewShowRequest(valid)))

	noTime := url.Values{"artist_id": valid["artist_id"], "venue_id": valid["venue_id"]}
	assert.Empty(t, utils.ValidateStruct(NewShowRequest(noTime)))

	badTime := url.Values{"artist_id": valid["artist_id"], "venue_id": valid["venue_id"], "start_time": {"soon"}}
	assert.Equal(t, "Not a valid datetime value", utils.ValidateStruct(NewShowRequest(badTime))["start_time"])

	errs := utils.ValidateStruct(NewShowRequest(url.Values{"artist_id": {"7"}}))
	assert.Equal(t, "Must be a valid UUID", errs["artist_id"])
	assert.Equal(t, "This field is required", errs["venue_id"])
}

func TestNewSearchRequest(t *testing.T) {
	req := NewSearchRequest(url.Values{"search_term": {"  Hop "}})
	assert.Equal(t, "Hop", req.SearchTerm)

	assert.Equal(t, "", NewSearchRequest(url.Values{}).SearchTerm)
}
