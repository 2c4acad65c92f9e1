package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	// FindAllWithUpcoming lists every venue with its count of shows starting at or after since.
	FindAllWithUpcoming(ctx context.Context, since time.Time) ([]*entity.VenueSummary, error)
	SearchByName(ctx context.Context, term string, since time.Time) ([]*entity.VenueSummary, error)
	// Update loads the venue under a row lock, lets apply overwrite it and
	// writes it back, all in one transaction.
	Update(ctx context.Context, id uuid.UUID, apply func(venue *entity.Venue)) (*entity.Venue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

const venueSelect = `
	SELECT id, name, city, state, address, phone, image_link, facebook_link,
	       website_link, seeking_talent, genres, seeking_description,
	       created_at, updated_at
	FROM venues
`

const venueSummarySelect = `
	SELECT v.id, v.name, v.city, v.state,
	       COUNT(s.id) FILTER (WHERE s.start_time >= $1) AS num_upcoming_shows
	FROM venues v
	LEFT JOIN shows s ON s.venue_id = v.id
`

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (id, name, city, state, address, phone, image_link,
		                    facebook_link, website_link, seeking_talent, genres,
		                    seeking_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			venue.ID,
			venue.Name,
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			venue.ImageLink,
			venue.FacebookLink,
			venue.WebsiteLink,
			venue.SeekingTalent,
			nonNil(venue.Genres),
			venue.SeekingDescription,
			venue.CreatedAt,
			venue.UpdatedAt,
		)
		return err
	})

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", venue.Name),
			zap.String("city", venue.City),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, err)
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	venue, err := scanVenue(r.db.QueryRow(ctx, venueSelect+` WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return venue, nil
}

func (r *venueRepository) FindAllWithUpcoming(ctx context.Context, since time.Time) ([]*entity.VenueSummary, error) {
	query := venueSummarySelect + `
		GROUP BY v.id
		ORDER BY v.state, v.city, v.name
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		r.log.Error("Failed to find all venues",
			zap.Error(err),
			zap.Time("since", since),
		)
		return nil, fmt.Errorf("find all venues: %w", err)
	}
	defer rows.Close()

	return r.scanSummaries(rows)
}

func (r *venueRepository) SearchByName(ctx context.Context, term string, since time.Time) ([]*entity.VenueSummary, error) {
	query := venueSummarySelect + `
		WHERE v.name ILIKE $2
		GROUP BY v.id
		ORDER BY v.name
	`

	rows, err := r.db.Query(ctx, query, since, containsPattern(term))
	if err != nil {
		r.log.Error("Failed to search venues",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search venues %q: %w", term, err)
	}
	defer rows.Close()

	return r.scanSummaries(rows)
}

func (r *venueRepository) scanSummaries(rows pgx.Rows) ([]*entity.VenueSummary, error) {
	venues := []*entity.VenueSummary{}
	for rows.Next() {
		var venue entity.VenueSummary
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.City,
			&venue.State,
			&venue.NumUpcomingShows,
		)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate venue rows: %w", err)
	}

	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, id uuid.UUID, apply func(venue *entity.Venue)) (*entity.Venue, error) {
	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6,
		    image_link = $7, facebook_link = $8, website_link = $9,
		    seeking_talent = $10, genres = $11, seeking_description = $12,
		    updated_at = $13
		WHERE id = $1
	`

	var venue *entity.Venue
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		venue, err = scanVenue(tx.QueryRow(ctx, venueSelect+` WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		apply(venue)
		venue.ID = id

		_, err = tx.Exec(ctx, query,
			venue.ID,
			venue.Name,
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			venue.ImageLink,
			venue.FacebookLink,
			venue.WebsiteLink,
			venue.SeekingTalent,
			nonNil(venue.Genres),
			venue.SeekingDescription,
			venue.UpdatedAt,
		)
		return err
	})

	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("venue %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("update venue %s: %w", id.String(), err)
	}

	return venue, nil
}

// Delete removes the venue; its shows go with it through ON DELETE CASCADE.
func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM venues WHERE id = $1`

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
		return fmt.Errorf("venue %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return fmt.Errorf("delete venue %s: %w", id.String(), err)
	}

	r.log.Info("Venue deleted", zap.String("venue_id", id.String()))
	return nil
}

func scanVenue(row pgx.Row) (*entity.Venue, error) {
	var venue entity.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.WebsiteLink,
		&venue.SeekingTalent,
		&venue.Genres,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}
