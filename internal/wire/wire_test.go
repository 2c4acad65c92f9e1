package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/billwiliams/fyyur/internal/data/repository"
	"github.com/billwiliams/fyyur/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T, admin utils.AdminConfig) *App {
	t.Helper()
	config := &utils.Config{
		App:   utils.AppConfig{Name: "fyyur"},
		Admin: admin,
	}
	// no route exercised here reaches storage
	repo := repository.NewRepository(nil, zap.NewNop())
	clock := func() time.Time { return time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC) }
	return Wiring(repo, clock, config, zap.NewNop())
}

func TestRouter_Pages(t *testing.T) {
	app := newTestApp(t, utils.AdminConfig{})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/venues/create", http.StatusOK},
		{http.MethodGet, "/artists/create", http.StatusOK},
		{http.MethodGet, "/shows/create", http.StatusOK},
		{http.MethodGet, "/no/such/page", http.StatusNotFound},
		{http.MethodPut, "/venues/create", http.StatusMethodNotAllowed},
		{http.MethodPatch, "/shows/create", http.StatusMethodNotAllowed},
		// malformed ids are rejected before storage
		{http.MethodGet, "/venues/not-a-uuid", http.StatusNotFound},
		{http.MethodDelete, "/artists/42", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_AdminGuardsMutations(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	app := newTestApp(t, utils.AdminConfig{User: "admin", PasswordHash: string(hash)})

	for _, tt := range []struct{ method, path string }{
		{http.MethodPost, "/venues/create"},
		{http.MethodPost, "/artists/create"},
		{http.MethodPost, "/shows/create"},
		{http.MethodDelete, "/venues/42"},
		{http.MethodPost, "/artists/42/edit"},
		{http.MethodDelete, "/shows/42"},
	} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tt.method+" "+tt.path)
	}

	// reads stay public
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/create", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// authorized mutation passes the guard and reaches validation
	req := httptest.NewRequest(http.MethodPost, "/shows/create", nil)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("admin", "s3cret")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
