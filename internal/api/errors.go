package api

import (
	"errors"
	"net/http"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
	"github.com/andreluoliveira82/car-api/internal/store"
)

// HandleError maps an error from the service or store layer to an HTTP
// response. Domain errors carry their own user-facing message; everything
// else becomes an opaque 500 so internal details never leak to clients.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		// The response carries only the message; the field prefix in
		// Error() is for logs.
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, vErr.Message)
	case errors.Is(err, domain.ErrValidation):
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrConflict):
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		shared.RespondWithError(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrNotFound):
		// Store sentinels that escaped translation still get the right
		// status, just without a localized message.
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	case errors.Is(err, store.ErrDuplicate), errors.Is(err, store.ErrReferenced):
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request conflicts with existing data")
	default:
		logger.FromContext(r.Context()).Error("unhandled error", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}
