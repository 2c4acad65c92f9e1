package wire

import (
	"net/http"

	"github.com/billwiliams/fyyur/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler, admin func(http.Handler) http.Handler) {
	r.Route("/shows", func(r chi.Router) {
		r.Get("/", showHandler.ListShows)
		r.Get("/create", showHandler.CreateShowForm)

		r.Group(func(r chi.Router) {
			r.Use(admin)

			r.Post("/create", showHandler.CreateShow)
			r.Delete("/{id}", showHandler.DeleteShow)
		})
	})
}
