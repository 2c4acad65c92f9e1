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

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)
	FindAll(ctx context.Context) ([]*entity.ArtistSummary, error)
	SearchByName(ctx context.Context, term string, since time.Time) ([]*entity.ArtistSummary, error)
	// Update loads the artist under a row lock, lets apply overwrite it and
	// writes it back, all in one transaction.
	Update(ctx context.Context, id uuid.UUID, apply func(artist *entity.Artist)) (*entity.Artist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type artistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

const artistSelect = `
	SELECT id, name, city, state, phone, genres, image_link, facebook_link,
	       website_link, seeking_venue, seeking_description, created_at, updated_at
	FROM artists
`

func NewArtistRepository(db database.PgxIface, log *zap.Logger) ArtistRepository {
	return &artistRepository{
		db:  db,
		log: log.With(zap.String("repository", "artist")),
	}
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	query := `
		INSERT INTO artists (id, name, city, state, phone, genres, image_link,
		                     facebook_link, website_link, seeking_venue,
		                     seeking_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			artist.ID,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			nonNil(artist.Genres),
			artist.ImageLink,
			artist.FacebookLink,
			artist.WebsiteLink,
			artist.SeekingVenue,
			artist.SeekingDescription,
			artist.CreatedAt,
			artist.UpdatedAt,
		)
		return err
	})

	if err != nil {
		r.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", artist.Name),
		)
		return fmt.Errorf("create artist %s: %w", artist.Name, err)
	}

	return nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	artist, err := scanArtist(r.db.QueryRow(ctx, artistSelect+` WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find artist by ID",
			zap.Error(err),
			zap.String("artist_id", id.String()),
		)
		return nil, fmt.Errorf("find artist by ID %s: %w", id.String(), err)
	}

	return artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]*entity.ArtistSummary, error) {
	query := `SELECT id, name FROM artists ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all artists", zap.Error(err))
		return nil, fmt.Errorf("find all artists: %w", err)
	}
	defer rows.Close()

	artists := []*entity.ArtistSummary{}
	for rows.Next() {
		var artist entity.ArtistSummary
		if err := rows.Scan(&artist.ID, &artist.Name); err != nil {
			r.log.Error("Failed to scan artist row", zap.Error(err))
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, &artist)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string, since time.Time) ([]*entity.ArtistSummary, error) {
	query := `
		SELECT a.id, a.name,
		       COUNT(s.id) FILTER (WHERE s.start_time >= $1) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $2
		GROUP BY a.id
		ORDER BY a.name
	`

	rows, err := r.db.Query(ctx, query, since, containsPattern(term))
	if err != nil {
		r.log.Error("Failed to search artists",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search artists %q: %w", term, err)
	}
	defer rows.Close()

	artists := []*entity.ArtistSummary{}
	for rows.Next() {
		var artist entity.ArtistSummary
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.NumUpcomingShows); err != nil {
			r.log.Error("Failed to scan artist row", zap.Error(err))
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, &artist)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, nil
}

func (r *artistRepository) Update(ctx context.Context, id uuid.UUID, apply func(artist *entity.Artist)) (*entity.Artist, error) {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6,
		    image_link = $7, facebook_link = $8, website_link = $9,
		    seeking_venue = $10, seeking_description = $11, updated_at = $12
		WHERE id = $1
	`

	var artist *entity.Artist
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		artist, err = scanArtist(tx.QueryRow(ctx, artistSelect+` WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		apply(artist)
		artist.ID = id

		_, err = tx.Exec(ctx, query,
			artist.ID,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			nonNil(artist.Genres),
			artist.ImageLink,
			artist.FacebookLink,
			artist.WebsiteLink,
			artist.SeekingVenue,
			artist.SeekingDescription,
			artist.UpdatedAt,
		)
		return err
	})

	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("artist %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update artist",
			zap.Error(err),
			zap.String("artist_id", id.String()),
		)
		return nil, fmt.Errorf("update artist %s: %w", id.String(), err)
	}

	return artist, nil
}

// Delete removes the artist and, by cascade, every show it plays.
func (r *artistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM artists WHERE id = $1`

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
		return fmt.Errorf("artist %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to delete artist",
			zap.Error(err),
			zap.String("artist_id", id.String()),
		)
		return fmt.Errorf("delete artist %s: %w", id.String(), err)
	}

	r.log.Info("Artist deleted", zap.String("artist_id", id.String()))
	return nil
}

func scanArtist(row pgx.Row) (*entity.Artist, error) {
	var artist entity.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Genres,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.WebsiteLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}
