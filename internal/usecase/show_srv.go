package usecase

import (
	"context"
	"errors"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/internal/data/repository"
	"github.com/billwiliams/fyyur/internal/dto/request"
	"github.com/billwiliams/fyyur/internal/dto/response"
	"github.com/billwiliams/fyyur/pkg/database"
	"github.com/billwiliams/fyyur/pkg/utils"

	"go.uber.org/zap"
)

const showFormTimeLayout = "2006-01-02 15:04:05"

type ShowService interface {
	ListShows(ctx context.Context) ([]response.ShowResponse, error)
	NewShowForm() request.ShowRequest
	CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowCreatedResponse, error)
	DeleteShow(ctx context.Context, showID string) error
}

type showService struct {
	repo  *repository.Repository
	clock Clock
	log   *zap.Logger
}

func NewShowService(repo *repository.Repository, clock Clock, log *zap.Logger) ShowService {
	return &showService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "show")),
	}
}

func (s *showService) ListShows(ctx context.Context) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list shows", zap.Error(err))
		return nil, &StorageError{Op: "list shows", Err: err}
	}

	results := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		results[i] = response.ShowToResponse(show)
	}

	return results, nil
}

// NewShowForm prefills start_time with the current time.
func (s *showService) NewShowForm() request.ShowRequest {
	return request.ShowRequest{StartTime: s.clock().Format(showFormTimeLayout)}
}

func (s *showService) CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowCreatedResponse, error) {
	if err := validate("show", req); err != nil {
		s.log.Warn("Create show validation failed", zap.Error(err))
		return nil, err
	}

	now := s.clock()
	show := &entity.Show{
		BaseSimple: entity.NewBaseSimple(now),
		StartTime:  now,
	}

	// both ids already passed the uuid rule
	show.VenueID, _ = parseID("venue", req.VenueID)
	show.ArtistID, _ = parseID("artist", req.ArtistID)

	if req.StartTime != "" {
		startTime, err := utils.ParseDateTime(req.StartTime, now.Location())
		if err != nil {
			return nil, &ValidationError{Entity: "show", Fields: map[string]string{"start_time": "Not a valid datetime value"}}
		}
		show.StartTime = startTime
	}

	if err := s.repo.Show.Create(ctx, show); err != nil {
		if database.IsForeignKeyViolation(err) {
			s.log.Warn("Show references unknown venue or artist",
				zap.Error(err),
				zap.String("venue_id", req.VenueID),
				zap.String("artist_id", req.ArtistID),
			)
		} else {
			s.log.Error("Failed to create show",
				zap.Error(err),
				zap.String("venue_id", req.VenueID),
				zap.String("artist_id", req.ArtistID),
			)
		}
		return nil, &StorageError{Op: "create show", Err: err}
	}

	s.log.Info("Show created",
		zap.String("show_id", show.ID.String()),
		zap.String("venue_id", req.VenueID),
		zap.String("artist_id", req.ArtistID),
		zap.Time("start_time", show.StartTime),
	)

	created := response.ShowToCreatedResponse(show)
	return &created, nil
}

func (s *showService) DeleteShow(ctx context.Context, showID string) error {
	id, err := parseID("show", showID)
	if err != nil {
		return err
	}

	show, err := s.repo.Show.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get show by ID",
			zap.Error(err),
			zap.String("show_id", showID),
		)
		return &StorageError{Op: "get show", Err: err}
	}
	if show == nil {
		return &NotFoundError{Entity: "show", ID: showID}
	}

	if err := s.repo.Show.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Entity: "show", ID: showID}
		}
		s.log.Error("Failed to delete show",
			zap.Error(err),
			zap.String("show_id", showID),
		)
		return &StorageError{Op: "delete show", Err: err}
	}

	s.log.Info("Show deleted",
		zap.String("show_id", showID),
		zap.String("venue_id", show.VenueID.String()),
		zap.String("artist_id", show.ArtistID.String()),
		zap.Time("start_time", show.StartTime),
	)
	return nil
}
