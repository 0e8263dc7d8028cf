package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/phonebook/internal/middleware"
	"github.com/forgo/phonebook/internal/model"
	"github.com/forgo/phonebook/internal/service"
)

// MapServiceError converts a service error to an API error response.
// Anything the service layer does not name is a 500.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	var verr *service.ValidationError

	switch {
	// ===== Bad Request → 400 =====
	case errors.Is(err, service.ErrMalformedID):
		return model.NewMalformattedIDError()
	case errors.As(err, &verr):
		return model.NewValidationError("Person", verr.Fields)

	// ===== Not Found → 404 =====
	case errors.Is(err, service.ErrPersonNotFound):
		return model.NewNotFoundError()

	// ===== Default → 500 =====
	default:
		return model.NewInternalError()
	}
}

// writeServiceError maps err and writes it, logging anything that became a 500
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := MapServiceError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
	}
	WriteError(w, apiErr)
}
