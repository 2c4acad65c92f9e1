package repository

import (
	"context"

	"github.com/billwiliams/fyyur/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Venue  VenueRepository
	Artist ArtistRepository
	Show   ShowRepository

	db database.PgxIface
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Venue:  NewVenueRepository(db, log),
		Artist: NewArtistRepository(db, log),
		Show:   NewShowRepository(db, log),
		db:     db,
	}
}

// Ping checks the underlying pool.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
