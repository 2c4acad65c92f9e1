package usecase

import (
	"context"

	"github.com/billwiliams/fyyur/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Venue  VenueService
	Artist ArtistService
	Show   ShowService

	repo *repository.Repository
}

func NewService(repo *repository.Repository, clock Clock, log *zap.Logger) *Service {
	return &Service{
		Venue:  NewVenueService(repo, clock, log),
		Artist: NewArtistService(repo, clock, log),
		Show:   NewShowService(repo, clock, log),
		repo:   repo,
	}
}

// Healthy reports whether storage is reachable.
func (s *Service) Healthy(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
