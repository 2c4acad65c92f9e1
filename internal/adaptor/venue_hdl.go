package adaptor

import (
	"fmt"
	"net/http"

	"github.com/billwiliams/fyyur/internal/dto/request"
	"github.com/billwiliams/fyyur/internal/dto/response"
	"github.com/billwiliams/fyyur/internal/usecase"
	"github.com/billwiliams/fyyur/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// ListVenues handles GET /venues
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.ListVenues(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list venues", "An error occurred. Venues could not be listed.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", areas)
}

// SearchVenues handles POST /venues/search
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	results, err := h.service.SearchVenues(r.Context(), request.NewSearchRequest(r.Form))
	if err != nil {
		handleServiceError(h.log, w, err, "search venues", "An error occurred. Venues could not be searched.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", results)
}

// GetVenue handles GET /venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	venue, err := h.service.GetVenue(r.Context(), venueID)
	if err != nil {
		handleServiceError(h.log, w, err, "get venue", "An error occurred. Venue could not be shown.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// CreateVenueForm handles GET /venues/create
func (h *VenueHandler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", response.NewVenueForm(request.DefaultVenueRequest()))
}

// CreateVenue handles POST /venues/create
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	req := request.NewVenueRequest(r.PostForm)

	venue, err := h.service.CreateVenue(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "create venue",
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name),
			response.NewVenueForm(*req))
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("Venue %s was successfully listed!", venue.Name), venue)
}

// EditVenueForm handles GET /venues/{id}/edit
func (h *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	form, err := h.service.GetVenueForm(r.Context(), venueID)
	if err != nil {
		handleServiceError(h.log, w, err, "get venue form", "An error occurred. Venue could not be loaded.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", response.NewVenueForm(*form))
}

// UpdateVenue handles POST /venues/{id}/edit
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	req := request.NewVenueRequest(r.PostForm)

	venue, err := h.service.UpdateVenue(r.Context(), venueID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "update venue",
			fmt.Sprintf("An error occurred. Venue %s could not be edited.", req.Name),
			response.NewVenueForm(*req))
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Venue %s was successfully edited!", venue.Name), venue)
}

// DeleteVenue handles DELETE /venues/{id}
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	if err := h.service.DeleteVenue(r.Context(), venueID); err != nil {
		handleServiceError(h.log, w, err, "delete venue", "An error occurred. Venue could not be deleted.", nil)
		return
	}

	h.log.Info("Venue deleted", zap.String("venue_id", venueID), actor(r))
	utils.ResponseSuccess(w, "Venue was successfully deleted!", nil)
}
