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

type ArtistService interface {
	ListArtists(ctx context.Context) ([]response.ArtistResponse, error)
	SearchArtists(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse[response.ArtistSummaryResponse], error)
	GetArtist(ctx context.Context, artistID string) (*response.ArtistDetailResponse, error)
	GetArtistForm(ctx context.Context, artistID string) (*request.ArtistRequest, error)

	CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistDetailResponse, error)
	UpdateArtist(ctx context.Context, artistID string, req *request.ArtistRequest) (*response.ArtistDetailResponse, error)
	DeleteArtist(ctx context.Context, artistID string) error
}

type artistService struct {
	repo  *repository.Repository
	clock Clock
	log   *zap.Logger
}

func NewArtistService(repo *repository.Repository, clock Clock, log *zap.Logger) ArtistService {
	return &artistService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "artist")),
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]response.ArtistResponse, error) {
	artists, err := s.repo.Artist.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list artists", zap.Error(err))
		return nil, &StorageError{Op: "list artists", Err: err}
	}

	results := make([]response.ArtistResponse, len(artists))
	for i, artist := range artists {
		results[i] = response.ArtistToResponse(artist)
	}

	return results, nil
}

func (s *artistService) SearchArtists(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse[response.ArtistSummaryResponse], error) {
	artists, err := s.repo.Artist.SearchByName(ctx, req.SearchTerm, s.clock.today())
	if err != nil {
		s.log.Error("Failed to search artists",
			zap.Error(err),
			zap.String("search_term", req.SearchTerm),
		)
		return nil, &StorageError{Op: "search artists", Err: err}
	}

	results := make([]response.ArtistSummaryResponse, len(artists))
	for i, artist := range artists {
		results[i] = response.ArtistSummaryToResponse(artist)
	}

	return response.NewSearchResponse(results, req.SearchTerm), nil
}

func (s *artistService) GetArtist(ctx context.Context, artistID string) (*response.ArtistDetailResponse, error) {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	shows, err := s.repo.Show.FindByArtistID(ctx, artist.ID)
	if err != nil {
		s.log.Error("Failed to get shows for artist",
			zap.Error(err),
			zap.String("artist_id", artistID),
		)
		return nil, &StorageError{Op: "get artist shows", Err: err}
	}

	detail := response.ArtistToDetailResponse(artist)
	past, upcoming := partitionShows(shows, s.clock.today())
	for _, show := range past {
		detail.PastShows = append(detail.PastShows, response.ListingToArtistShow(show))
	}
	for _, show := range upcoming {
		detail.UpcomingShows = append(detail.UpcomingShows, response.ListingToArtistShow(show))
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return &detail, nil
}

func (s *artistService) GetArtistForm(ctx context.Context, artistID string) (*request.ArtistRequest, error) {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	form := request.ArtistRequestFromEntity(artist)
	return &form, nil
}

func (s *artistService) CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistDetailResponse, error) {
	if err := validate("artist", req); err != nil {
		s.log.Warn("Create artist validation failed", zap.Error(err))
		return nil, err
	}

	artist := &entity.Artist{Base: entity.NewBase(s.clock())}
	applyArtistRequest(artist, req)

	if err := s.repo.Artist.Create(ctx, artist); err != nil {
		s.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, &StorageError{Op: "create artist", Err: err}
	}

	s.log.Info("Artist created",
		zap.String("artist_id", artist.ID.String()),
		zap.String("name", artist.Name),
	)

	detail := response.ArtistToDetailResponse(artist)
	return &detail, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, artistID string, req *request.ArtistRequest) (*response.ArtistDetailResponse, error) {
	id, err := parseID("artist", artistID)
	if err != nil {
		return nil, err
	}

	if err := validate("artist", req); err != nil {
		s.log.Warn("Update artist validation failed",
			zap.Error(err),
			zap.String("artist_id", artistID),
		)
		return nil, err
	}

	now := s.clock()
	artist, err := s.repo.Artist.Update(ctx, id, func(a *entity.Artist) {
		applyArtistRequest(a, req)
		a.UpdatedAt = now
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Entity: "artist", ID: artistID}
		}
		s.log.Error("Failed to update artist",
			zap.Error(err),
			zap.String("artist_id", artistID),
		)
		return nil, &StorageError{Op: "update artist", Err: err}
	}

	s.log.Info("Artist updated",
		zap.String("artist_id", artistID),
		zap.String("name", artist.Name),
	)

	return s.GetArtist(ctx, artistID)
}

func (s *artistService) DeleteArtist(ctx context.Context, artistID string) error {
	id, err := parseID("artist", artistID)
	if err != nil {
		return err
	}

	if err := s.repo.Artist.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Entity: "artist", ID: artistID}
		}
		s.log.Error("Failed to delete artist",
			zap.Error(err),
			zap.String("artist_id", artistID),
		)
		return &StorageError{Op: "delete artist", Err: err}
	}

	s.log.Info("Artist deleted", zap.String("artist_id", artistID))
	return nil
}

func (s *artistService) findArtist(ctx context.Context, artistID string) (*entity.Artist, error) {
	id, err := parseID("artist", artistID)
	if err != nil {
		return nil, err
	}

	artist, err := s.repo.Artist.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get artist by ID",
			zap.Error(err),
			zap.String("artist_id", artistID),
		)
		return nil, &StorageError{Op: "get artist", Err: err}
	}
	if artist == nil {
		return nil, &NotFoundError{Entity: "artist", ID: artistID}
	}

	return artist, nil
}

func applyArtistRequest(artist *entity.Artist, req *request.ArtistRequest) {
	artist.Name = req.Name
	artist.City = req.City
	artist.State = req.State
	artist.Phone = req.Phone
	artist.Genres = req.Genres
	artist.ImageLink = req.ImageLink
	artist.FacebookLink = req.FacebookLink
	artist.WebsiteLink = req.WebsiteLink
	artist.SeekingVenue = req.SeekingVenue
	artist.SeekingDescription = req.SeekingDescription
}
