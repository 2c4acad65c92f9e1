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

type ArtistHandler struct {
	service usecase.ArtistService
	log     *zap.Logger
}

func NewArtistHandler(service usecase.ArtistService, log *zap.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		log:     log.With(zap.String("handler", "artist")),
	}
}

// ListArtists handles GET /artists
func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.ListArtists(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list artists", "An error occurred. Artists could not be listed.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", artists)
}

// SearchArtists handles POST /artists/search
func (h *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	results, err := h.service.SearchArtists(r.Context(), request.NewSearchRequest(r.Form))
	if err != nil {
		handleServiceError(h.log, w, err, "search artists", "An error occurred. Artists could not be searched.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", results)
}

// GetArtist handles GET /artists/{id}
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	artist, err := h.service.GetArtist(r.Context(), artistID)
	if err != nil {
		handleServiceError(h.log, w, err, "get artist", "An error occurred. Artist could not be shown.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", artist)
}

// CreateArtistForm handles GET /artists/create
func (h *ArtistHandler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", response.NewArtistForm(request.DefaultArtistRequest()))
}

// CreateArtist handles POST /artists/create
func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	req := request.NewArtistRequest(r.PostForm)

	artist, err := h.service.CreateArtist(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "create artist",
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name),
			response.NewArtistForm(*req))
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("Artist %s was successfully listed!", artist.Name), artist)
}

// EditArtistForm handles GET /artists/{id}/edit
func (h *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	form, err := h.service.GetArtistForm(r.Context(), artistID)
	if err != nil {
		handleServiceError(h.log, w, err, "get artist form", "An error occurred. Artist could not be loaded.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", response.NewArtistForm(*form))
}

// UpdateArtist handles POST /artists/{id}/edit
func (h *ArtistHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	req := request.NewArtistRequest(r.PostForm)

	artist, err := h.service.UpdateArtist(r.Context(), artistID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "update artist",
			fmt.Sprintf("An error occurred. Artist %s could not be edited.", req.Name),
			response.NewArtistForm(*req))
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Artist %s was successfully edited!", artist.Name), artist)
}

// DeleteArtist handles DELETE /artists/{id}
func (h *ArtistHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	if err := h.service.DeleteArtist(r.Context(), artistID); err != nil {
		handleServiceError(h.log, w, err, "delete artist", "An error occurred. Artist could not be deleted.", nil)
		return
	}

	h.log.Info("Artist deleted", zap.String("artist_id", artistID), actor(r))
	utils.ResponseSuccess(w, "Artist was successfully deleted!", nil)
}
