package adaptor

import (
	"net/http"

	"github.com/billwiliams/fyyur/internal/dto/request"
	"github.com/billwiliams/fyyur/internal/dto/response"
	"github.com/billwiliams/fyyur/internal/usecase"
	"github.com/billwiliams/fyyur/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.ShowService
	log     *zap.Logger
}

func NewShowHandler(service usecase.ShowService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "show")),
	}
}

// ListShows handles GET /shows
func (h *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.ListShows(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list shows", "An error occurred. Shows could not be listed.", nil)
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

// CreateShowForm handles GET /shows/create
func (h *ShowHandler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", response.NewShowForm(h.service.NewShowForm()))
}

// CreateShow handles POST /shows/create
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	req := request.NewShowRequest(r.PostForm)

	show, err := h.service.CreateShow(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "create show",
			"An error occurred. Show could not be listed.",
			response.NewShowForm(*req))
		return
	}

	utils.ResponseCreated(w, "Show was successfully listed!", show)
}

// DeleteShow handles DELETE /shows/{id}
func (h *ShowHandler) DeleteShow(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")

	if err := h.service.DeleteShow(r.Context(), showID); err != nil {
		handleServiceError(h.log, w, err, "delete show", "An error occurred. Show could not be deleted.", nil)
		return
	}

	h.log.Info("Show deleted", zap.String("show_id", showID), actor(r))
	utils.ResponseSuccess(w, "Show was successfully deleted!", nil)
}
