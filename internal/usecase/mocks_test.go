package usecase

import (
	"context"
	"time"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockVenueRepo struct{ mock.Mock }

func (m *mockVenueRepo) Create(ctx context.Context, venue *entity.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *mockVenueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	args := m.Called(ctx, id)
	venue, _ := args.Get(0).(*entity.Venue)
	return venue, args.Error(1)
}

func (m *mockVenueRepo) FindAllWithUpcoming(ctx context.Context, since time.Time) ([]*entity.VenueSummary, error) {
	args := m.Called(ctx, since)
	venues, _ := args.Get(0).([]*entity.VenueSummary)
	return venues, args.Error(1)
}

func (m *mockVenueRepo) SearchByName(ctx context.Context, term string, since time.Time) ([]*entity.VenueSummary, error) {
	args := m.Called(ctx, term, since)
	venues, _ := args.Get(0).([]*entity.VenueSummary)
	return venues, args.Error(1)
}

// Update runs apply on the stored venue handed to Return, as the locked
// load would.
func (m *mockVenueRepo) Update(ctx context.Context, id uuid.UUID, apply func(venue *entity.Venue)) (*entity.Venue, error) {
	args := m.Called(ctx, id, apply)
	venue, _ := args.Get(0).(*entity.Venue)
	if venue != nil {
		apply(venue)
	}
	return venue, args.Error(1)
}

func (m *mockVenueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockArtistRepo struct{ mock.Mock }

func (m *mockArtistRepo) Create(ctx context.Context, artist *entity.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *mockArtistRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	args := m.Called(ctx, id)
	artist, _ := args.Get(0).(*entity.Artist)
	return artist, args.Error(1)
}

func (m *mockArtistRepo) FindAll(ctx context.Context) ([]*entity.ArtistSummary, error) {
	args := m.Called(ctx)
	artists, _ := args.Get(0).([]*entity.ArtistSummary)
	return artists, args.Error(1)
}

func (m *mockArtistRepo) SearchByName(ctx context.Context, term string, since time.Time) ([]*entity.ArtistSummary, error) {
	args := m.Called(ctx, term, since)
	artists, _ := args.Get(0).([]*entity.ArtistSummary)
	return artists, args.Error(1)
}

func (m *mockArtistRepo) Update(ctx context.Context, id uuid.UUID, apply func(artist *entity.Artist)) (*entity.Artist, error) {
	args := m.Called(ctx, id, apply)
	artist, _ := args.Get(0).(*entity.Artist)
	if artist != nil {
		apply(artist)
	}
	return artist, args.Error(1)
}

func (m *mockArtistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockShowRepo struct{ mock.Mock }

func (m *mockShowRepo) Create(ctx context.Context, show *entity.Show) error {
	return m.Called(ctx, show).Error(0)
}

func (m *mockShowRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	args := m.Called(ctx, id)
	show, _ := args.Get(0).(*entity.Show)
	return show, args.Error(1)
}

func (m *mockShowRepo) FindAll(ctx context.Context) ([]*entity.ShowListing, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]*entity.ShowListing)
	return shows, args.Error(1)
}

func (m *mockShowRepo) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.ShowListing, error) {
	args := m.Called(ctx, venueID)
	shows, _ := args.Get(0).([]*entity.ShowListing)
	return shows, args.Error(1)
}

func (m *mockShowRepo) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.ShowListing, error) {
	args := m.Called(ctx, artistID)
	shows, _ := args.Get(0).([]*entity.ShowListing)
	return shows, args.Error(1)
}

func (m *mockShowRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// fixedNow is mid-afternoon so that "earlier today" and "yesterday" differ.
var fixedNow = time.Date(2030, 6, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type testRepos struct {
	venue  *mockVenueRepo
	artist *mockArtistRepo
	show   *mockShowRepo
	repo   *repository.Repository
}

func newTestRepos() *testRepos {
	r := &testRepos{
		venue:  &mockVenueRepo{},
		artist: &mockArtistRepo{},
		show:   &mockShowRepo{},
	}
	r.repo = &repository.Repository{Venue: r.venue, Artist: r.artist, Show: r.show}
	return r
}

func (r *testRepos) assertExpectations(t mock.TestingT) {
	r.venue.AssertExpectations(t)
	r.artist.AssertExpectations(t)
	r.show.AssertExpectations(t)
}

var testLogger = zap.NewNop()
