package adaptor

import (
	"context"

	"github.com/billwiliams/fyyur/internal/dto/request"
	"github.com/billwiliams/fyyur/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockVenueService struct{ mock.Mock }

func (m *mockVenueService) ListVenues(ctx context.Context) ([]response.VenueAreaResponse, error) {
	args := m.Called(ctx)
	areas, _ := args.Get(0).([]response.VenueAreaResponse)
	return areas, args.Error(1)
}

func (m *mockVenueService) SearchVenues(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse[response.VenueSummaryResponse], error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*response.SearchResponse[response.VenueSummaryResponse])
	return result, args.Error(1)
}

func (m *mockVenueService) GetVenue(ctx context.Context, venueID string) (*response.VenueDetailResponse, error) {
	args := m.Called(ctx, venueID)
	detail, _ := args.Get(0).(*response.VenueDetailResponse)
	return detail, args.Error(1)
}

func (m *mockVenueService) GetVenueForm(ctx context.Context, venueID string) (*request.VenueRequest, error) {
	args := m.Called(ctx, venueID)
	form, _ := args.Get(0).(*request.VenueRequest)
	return form, args.Error(1)
}

func (m *mockVenueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueDetailResponse, error) {
	args := m.Called(ctx, req)
	detail, _ := args.Get(0).(*response.VenueDetailResponse)
	return detail, args.Error(1)
}

func (m *mockVenueService) UpdateVenue(ctx context.Context, venueID string, req *request.VenueRequest) (*response.VenueDetailResponse, error) {
	args := m.Called(ctx, venueID, req)
	detail, _ := args.Get(0).(*response.VenueDetailResponse)
	return detail, args.Error(1)
}

func (m *mockVenueService) DeleteVenue(ctx context.Context, venueID string) error {
	return m.Called(ctx, venueID).Error(0)
}

type mockArtistService struct{ mock.Mock }

func (m *mockArtistService) ListArtists(ctx context.Context) ([]response.ArtistResponse, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]response.ArtistResponse)
	return artists, args.Error(1)
}

func (m *mockArtistService) SearchArtists(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse[response.ArtistSummaryResponse], error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*response.SearchResponse[response.ArtistSummaryResponse])
	return result, args.Error(1)
}

func (m *mockArtistService) GetArtist(ctx context.Context, artistID string) (*response.ArtistDetailResponse, error) {
	args := m.Called(ctx, artistID)
	detail, _ := args.Get(0).(*response.ArtistDetailResponse)
	return detail, args.Error(1)
}

func (m *mockArtistService) GetArtistForm(ctx context.Context, artistID string) (*request.ArtistRequest, error) {
	args := m.Called(ctx, artistID)
	form, _ := args.Get(0).(*request.ArtistRequest)
	return form, args.Error(1)
}

func (m *mockArtistService) CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistDetailResponse, error) {
	args := m.Called(ctx, req)
	detail, _ := args.Get(0).(*response.ArtistDetailResponse)
	return detail, args.Error(1)
}

func (m *mockArtistService) UpdateArtist(ctx context.Context, artistID string, req *request.ArtistRequest) (*response.ArtistDetailResponse, error) {
	args := m.Called(ctx, artistID, req)
	detail, _ := args.Get(0).(*response.ArtistDetailResponse)
	return detail, args.Error(1)
}

func (m *mockArtistService) DeleteArtist(ctx context.Context, artistID string) error {
	return m.Called(ctx, artistID).Error(0)
}

type mockShowService struct{ mock.Mock }

func (m *mockShowService) ListShows(ctx context.Context) ([]response.ShowResponse, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]response.ShowResponse)
	return shows, args.Error(1)
}

func (m *mockShowService) NewShowForm() request.ShowRequest {
	return m.Called().Get(0).(request.ShowRequest)
}

func (m *mockShowService) CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowCreatedResponse, error) {
	args := m.Called(ctx, req)
	created, _ := args.Get(0).(*response.ShowCreatedResponse)
	return created, args.Error(1)
}

func (m *mockShowService) DeleteShow(ctx context.Context, showID string) error {
	return m.Called(ctx, showID).Error(0)
}

type stubHealth struct{ err error }

func (s stubHealth) Healthy(context.Context) error { return s.err }
