package wire

import (
	"net/http"

	"github.com/billwiliams/fyyur/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler, admin func(http.Handler) http.Handler) {
	r.Route("/venues", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", venueHandler.ListVenues)
		r.Post("/search", venueHandler.SearchVenues)
		r.Get("/create", venueHandler.CreateVenueForm)
		r.Get("/{id}", venueHandler.GetVenue)
		r.Get("/{id}/edit", venueHandler.EditVenueForm)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(admin)

			r.Post("/create", venueHandler.CreateVenue)
			r.Post("/{id}/edit", venueHandler.UpdateVenue)
			r.Delete("/{id}", venueHandler.DeleteVenue)
		})
	})
}
