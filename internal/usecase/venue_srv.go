package usecase

import (
	"context"
	"errors"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/internal/data/repository"
	"github.com/billwiliams/fyyur/internal/dto/request"
	"github.com/billwiliams/fyyur/internal/dto/response"

	"go.uber.org/zap"
)

type VenueService interface {
	ListVenues(ctx context.Context) ([]response.VenueAreaResponse, error)
	SearchVenues(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse[response.VenueSummaryResponse], error)
	GetVenue(ctx context.Context, venueID string) (*response.VenueDetailResponse, error)
	GetVenueForm(ctx context.Context, venueID string) (*request.VenueRequest, error)

	CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueDetailResponse, error)
	UpdateVenue(ctx context.Context, venueID string, req *request.VenueRequest) (*response.VenueDetailResponse, error)
	DeleteVenue(ctx context.Context, venueID string) error
}

type venueService struct {
	repo  *repository.Repository
	clock Clock
	log   *zap.Logger
}

func NewVenueService(repo *repository.Repository, clock Clock, log *zap.Logger) VenueService {
	return &venueService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) ListVenues(ctx context.Context) ([]response.VenueAreaResponse, error) {
	venues, err := s.repo.Venue.FindAllWithUpcoming(ctx, s.clock.today())
	if err != nil {
		s.log.Error("Failed to list venues", zap.Error(err))
		return nil, &StorageError{Op: "list venues", Err: err}
	}

	areas := groupVenuesByArea(venues)

	s.log.Debug("Venues listed",
		zap.Int("venue_count", len(venues)),
		zap.Int("area_count", len(areas)),
	)

	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse[response.VenueSummaryResponse], error) {
	venues, err := s.repo.Venue.SearchByName(ctx, req.SearchTerm, s.clock.today())
	if err != nil {
		s.log.Error("Failed to search venues",
			zap.Error(err),
			zap.String("search_term", req.SearchTerm),
		)
		return nil, &StorageError{Op: "search venues", Err: err}
	}

	results := make([]response.VenueSummaryResponse, len(venues))
	for i, venue := range venues {
		results[i] = response.VenueSummaryToResponse(venue)
	}

	return response.NewSearchResponse(results, req.SearchTerm), nil
}

func (s *venueService) GetVenue(ctx context.Context, venueID string) (*response.VenueDetailResponse, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	shows, err := s.repo.Show.FindByVenueID(ctx, venue.ID)
	if err != nil {
		s.log.Error("Failed to get shows for venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, &StorageError{Op: "get venue shows", Err: err}
	}

	detail := response.VenueToDetailResponse(venue)
	past, upcoming := partitionShows(shows, s.clock.today())
	for _, show := range past {
		detail.PastShows = append(detail.PastShows, response.ListingToVenueShow(show))
	}
	for _, show := range upcoming {
		detail.UpcomingShows = append(detail.UpcomingShows, response.ListingToVenueShow(show))
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return &detail, nil
}

func (s *venueService) GetVenueForm(ctx context.Context, venueID string) (*request.VenueRequest, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	form := request.VenueRequestFromEntity(venue)
	return &form, nil
}

func (s *venueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueDetailResponse, error) {
	if err := validate("venue", req); err != nil {
		s.log.Warn("Create venue validation failed", zap.Error(err))
		return nil, err
	}

	venue := &entity.Venue{Base: entity.NewBase(s.clock())}
	applyVenueRequest(venue, req)

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		s.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, &StorageError{Op: "create venue", Err: err}
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name),
		zap.String("city", venue.City),
	)

	detail := response.VenueToDetailResponse(venue)
	return &detail, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, venueID string, req *request.VenueRequest) (*response.VenueDetailResponse, error) {
	id, err := parseID("venue", venueID)
	if err != nil {
		return nil, err
	}

	if err := validate("venue", req); err != nil {
		s.log.Warn("Update venue validation failed",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, err
	}

	now := s.clock()
	venue, err := s.repo.Venue.Update(ctx, id, func(v *entity.Venue) {
		applyVenueRequest(v, req)
		v.UpdatedAt = now
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Entity: "venue", ID: venueID}
		}
		s.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, &StorageError{Op: "update venue", Err: err}
	}

	s.log.Info("Venue updated",
		zap.String("venue_id", venueID),
		zap.String("name", venue.Name),
	)

	return s.GetVenue(ctx, venueID)
}

func (s *venueService) DeleteVenue(ctx context.Context, venueID string) error {
	id, err := parseID("venue", venueID)
	if err != nil {
		return err
	}

	if err := s.repo.Venue.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Entity: "venue", ID: venueID}
		}
		s.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return &StorageError{Op: "delete venue", Err: err}
	}

	s.log.Info("Venue deleted", zap.String("venue_id", venueID))
	return nil
}

func (s *venueService) findVenue(ctx context.Context, venueID string) (*entity.Venue, error) {
	id, err := parseID("venue", venueID)
	if err != nil {
		return nil, err
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get venue by ID",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, &StorageError{Op: "get venue", Err: err}
	}
	if venue == nil {
		return nil, &NotFoundError{Entity: "venue", ID: venueID}
	}

	return venue, nil
}

// applyVenueRequest overwrites every editable attribute; id and created_at stay.
func applyVenueRequest(venue *entity.Venue, req *request.VenueRequest) {
	venue.Name = req.Name
	venue.City = req.City
	venue.State = req.State
	venue.Address = req.Address
	venue.Phone = req.Phone
	venue.ImageLink = req.ImageLink
	venue.Genres = req.Genres
	venue.FacebookLink = req.FacebookLink
	venue.WebsiteLink = req.WebsiteLink
	venue.SeekingTalent = req.SeekingTalent
	venue.SeekingDescription = req.SeekingDescription
}
