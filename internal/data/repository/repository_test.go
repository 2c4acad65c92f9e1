package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/billwiliams/fyyur/internal/data/entity"
	"github.com/billwiliams/fyyur/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeRow hands its scan func the destinations of a single-row query.
type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeTx records every statement sent through it. Unused pgx.Tx methods panic.
type fakeTx struct {
	pgx.Tx
	statements []string
	execArgs   [][]any
	row        fakeRow
	execErr    error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	t.statements = append(t.statements, sql)
	return t.row
}

func (t *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.statements = append(t.statements, sql)
	t.execArgs = append(t.execArgs, args)
	return pgconn.NewCommandTag("UPDATE 1"), t.execErr
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	database.PgxIface
	tx *fakeTx
}

func (d *fakeDB) Begin(context.Context) (pgx.Tx, error) { return d.tx, nil }

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"", "%%"},
		{"Hop", "%Hop%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.term), "term %q", tt.term)
	}
}

func TestVenueRepository_UpdateLocksRowInSameTx(t *testing.T) {
	id := uuid.New()
	tx := &fakeTx{row: fakeRow{scan: func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = "The Musical Hop"
		return nil
	}}}
	repo := NewVenueRepository(&fakeDB{tx: tx}, zap.NewNop())

	var seen string
	venue, err := repo.Update(context.Background(), id, func(v *entity.Venue) {
		seen = v.Name
		v.Name = "The Musical Hop II"
	})

	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", seen)
	assert.Equal(t, "The Musical Hop II", venue.Name)

	require.Len(t, tx.statements, 2)
	assert.Contains(t, tx.statements[0], "FOR UPDATE")
	assert.Contains(t, tx.statements[1], "UPDATE venues")
	assert.Equal(t, "The Musical Hop II", tx.execArgs[0][1])
	assert.True(t, tx.committed)
}

func TestArtistRepository_UpdateMissingRow(t *testing.T) {
	tx := &fakeTx{row: fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}}
	repo := NewArtistRepository(&fakeDB{tx: tx}, zap.NewNop())

	called := false
	_, err := repo.Update(context.Background(), uuid.New(), func(*entity.Artist) { called = true })

	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
	require.Len(t, tx.statements, 1)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(tx.statements[0]), "FOR UPDATE"))
	assert.True(t, tx.rolledBack)
}

func TestShowRepository_CreateLogLevels(t *testing.T) {
	tests := []struct {
		name       string
		execErr    error
		wantErrors int
	}{
		{
			name:       "unknown parent left to the caller",
			execErr:    &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			wantErrors: 0,
		},
		{
			name:       "other failures logged",
			execErr:    errors.New("connection reset"),
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			tx := &fakeTx{execErr: tt.execErr}
			repo := NewShowRepository(&fakeDB{tx: tx}, zap.New(core))

			err := repo.Create(context.Background(), &entity.Show{
				BaseSimple: entity.BaseSimple{ID: uuid.New()},
				VenueID:    uuid.New(),
				ArtistID:   uuid.New(),
			})

			assert.ErrorIs(t, err, tt.execErr)
			assert.Equal(t, tt.wantErrors, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
			assert.True(t, tx.rolledBack)
		})
	}
}
