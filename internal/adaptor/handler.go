package adaptor

import (
	"errors"
	"net/http"

	"github.com/billwiliams/fyyur/internal/usecase"
	"github.com/billwiliams/fyyur/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Venue  *VenueHandler
	Artist *ArtistHandler
	Show   *ShowHandler
	Page   *PageHandler
}

func NewHandler(service *usecase.Service, appName string, log *zap.Logger) *Handler {
	return &Handler{
		Venue:  NewVenueHandler(service.Venue, log),
		Artist: NewArtistHandler(service.Artist, log),
		Show:   NewShowHandler(service.Show, log),
		Page:   NewPageHandler(service, appName, log),
	}
}

// handleServiceError maps usecase errors to status codes. Services log their
// own failures, so only untyped errors are logged here. form, when set, is
// echoed back on 400.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation, failure string, form any) {
	var (
		validationErr *usecase.ValidationError
		notFoundErr   *usecase.NotFoundError
		storageErr    *usecase.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.ResponseJSON(w, http.StatusBadRequest, false, "Validation failed", form, validationErr.Fields)

	case errors.As(err, &notFoundErr):
		utils.ResponseNotFound(w, notFoundErr.Error())

	case errors.As(err, &storageErr):
		utils.ResponseInternalError(w, failure)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, failure)
	}
}

// parseForm reads both the query string and an urlencoded or multipart body.
func parseForm(r *http.Request) error {
	if err := r.ParseMultipartForm(10 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// actor names the admin behind a mutation for audit logs.
func actor(r *http.Request) zap.Field {
	if user, ok := utils.GetAdminFromContext(r.Context()); ok {
		return zap.String("admin", user)
	}
	return zap.String("admin", "anonymous")
}
