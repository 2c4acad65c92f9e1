package wire

import (
	"github.com/billwiliams/fyyur/internal/adaptor"
	"github.com/billwiliams/fyyur/internal/data/repository"
	"github.com/billwiliams/fyyur/internal/usecase"
	"github.com/billwiliams/fyyur/pkg/middleware"
	"github.com/billwiliams/fyyur/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, clock usecase.Clock, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, clock, logger)
	handler := adaptor.NewHandler(service, config.App.Name, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.NotFound(handler.Page.NotFound)
	r.MethodNotAllowed(handler.Page.MethodNotAllowed)

	admin := middleware.AdminAuth(config.Admin, logger)

	r.Get("/", handler.Page.Index)
	r.Get("/health", handler.Page.Health)

	wireVenue(r, handler.Venue, admin)
	wireArtist(r, handler.Artist, admin)
	wireShow(r, handler.Show, admin)

	return r
}
