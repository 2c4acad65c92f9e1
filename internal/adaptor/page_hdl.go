package adaptor

import (
	"context"
	"net/http"

	"github.com/billwiliams/fyyur/pkg/utils"

	"go.uber.org/zap"
)

// HealthChecker is satisfied by *usecase.Service.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

// PageHandler serves the index, health and error pages.
type PageHandler struct {
	health  HealthChecker
	appName string
	log     *zap.Logger
}

func NewPageHandler(health HealthChecker, appName string, log *zap.Logger) *PageHandler {
	return &PageHandler{
		health:  health,
		appName: appName,
		log:     log.With(zap.String("handler", "page")),
	}
}

type indexResponse struct {
	Name  string            `json:"name"`
	Links map[string]string `json:"links"`
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", indexResponse{
		Name: h.appName,
		Links: map[string]string{
			"venues":        "/venues",
			"artists":       "/artists",
			"shows":         "/shows",
			"create_venue":  "/venues/create",
			"create_artist": "/artists/create",
			"create_show":   "/shows/create",
		},
	})
}

// Health handles GET /health
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Healthy(r.Context()); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "database unreachable", nil, nil)
		return
	}

	utils.ResponseSuccess(w, "OK", nil)
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "Page not found")
}

func (h *PageHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "Method not allowed")
}
