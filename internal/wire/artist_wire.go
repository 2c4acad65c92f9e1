package wire

import (
	"net/http"

	"github.com/billwiliams/fyyur/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireArtist(r chi.Router, artistHandler *adaptor.ArtistHandler, admin func(http.Handler) http.Handler) {
	r.Route("/artists", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", artistHandler.ListArtists)
		r.Post("/search", artistHandler.SearchArtists)
		r.Get("/create", artistHandler.CreateArtistForm)
		r.Get("/{id}", artistHandler.GetArtist)
		r.Get("/{id}/edit", artistHandler.EditArtistForm)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(admin)

			r.Post("/create", artistHandler.CreateArtist)
			r.Post("/{id}/edit", artistHandler.UpdateArtist)
			r.Delete("/{id}", artistHandler.DeleteArtist)
		})
	})
}
