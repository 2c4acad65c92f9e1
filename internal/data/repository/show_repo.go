package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error)
	FindAll(ctx context.Context) ([]*entity.ShowListing, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.ShowListing, error)
	FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.ShowListing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

const showListingSelect = `
	SELECT s.id, s.venue_id, v.name, v.image_link,
	       s.artist_id, a.name, a.image_link, s.start_time
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
`

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (id, venue_id, artist_id, start_time, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			show.ID,
			show.VenueID,
			show.ArtistID,
			show.StartTime,
			show.CreatedAt,
		)
		return err
	})

	// unknown parents are reported by the caller
	if err != nil && !database.IsForeignKeyViolation(err) {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("venue_id", show.VenueID.String()),
			zap.String("artist_id", show.ArtistID.String()),
			zap.Time("start_time", show.StartTime),
		)
	}
	if err != nil {
		return fmt.Errorf("create show for venue %s artist %s: %w",
			show.VenueID.String(), show.ArtistID.String(), err)
	}

	return nil
}

func (r *showRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	query := `
		SELECT id, venue_id, artist_id, start_time, created_at
		FROM shows
		WHERE id = $1
	`

	var show entity.Show
	err := r.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.VenueID,
		&show.ArtistID,
		&show.StartTime,
		&show.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show by ID",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return nil, fmt.Errorf("find show by ID %s: %w", id.String(), err)
	}

	return &show, nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]*entity.ShowListing, error) {
	query := showListingSelect + ` ORDER BY s.start_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all shows", zap.Error(err))
		return nil, fmt.Errorf("find all shows: %w", err)
	}
	defer rows.Close()

	return r.scanListings(rows)
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.ShowListing, error) {
	query := showListingSelect + ` WHERE s.venue_id = $1 ORDER BY s.start_time`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find shows by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find shows by venue ID %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	return r.scanListings(rows)
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.ShowListing, error) {
	query := showListingSelect + ` WHERE s.artist_id = $1 ORDER BY s.start_time`

	rows, err := r.db.Query(ctx, query, artistID)
	if err != nil {
		r.log.Error("Failed to find shows by artist ID",
			zap.Error(err),
			zap.String("artist_id", artistID.String()),
		)
		return nil, fmt.Errorf("find shows by artist ID %s: %w", artistID.String(), err)
	}
	defer rows.Close()

	return r.scanListings(rows)
}

func (r *showRepository) scanListings(rows pgx.Rows) ([]*entity.ShowListing, error) {
	shows := []*entity.ShowListing{}
	for rows.Next() {
		var show entity.ShowListing
		err := rows.Scan(
			&show.ShowID,
			&show.VenueID,
			&show.VenueName,
			&show.VenueImageLink,
			&show.ArtistID,
			&show.ArtistName,
			&show.ArtistImageLink,
			&show.StartTime,
		)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate show rows: %w", err)
	}

	return shows, nil
}

func (r *showRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM shows WHERE id = $1`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})

	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("show %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to delete show",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return fmt.Errorf("delete show %s: %w", id.String(), err)
	}

	r.log.Info("Show deleted", zap.String("show_id", id.String()))
	return nil
}
