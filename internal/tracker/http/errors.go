package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fernwick/stockfolio/internal/tracker/service"
	"github.com/fernwick/stockfolio/internal/tracker/store"
	"github.com/fernwick/stockfolio/pkg/foliosdk"
)

// decodeJSON parses a request body into v. Callers treat a non-nil error
// as a validation failure.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeServiceError maps a service-layer error onto the API error
// envelope. Everything unrecognized is a 500 with details logged, never
// returned.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		foliosdk.NewValidationError(verr.Msg).WriteError(w)

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrIdentityTaken):
		foliosdk.NewConflictError(err.Error()).WriteError(w)

	case errors.Is(err, service.ErrInvalidCredentials):
		foliosdk.ErrInvalidCredentials.WriteError(w)

	case errors.Is(err, service.ErrMFARequired):
		foliosdk.ErrMFARequired.WriteError(w)

	case errors.Is(err, service.ErrInvalidTOTPCode):
		(&foliosdk.APIError{
			StatusCode: http.StatusUnauthorized,
			Kind:       foliosdk.ErrorKindAuth,
			Message:    "invalid TOTP code",
		}).WriteError(w)

	case errors.Is(err, service.ErrMFANotEnabled),
		errors.Is(err, service.ErrMFAAlreadyEnabled):
		foliosdk.NewValidationError(err.Error()).WriteError(w)

	case errors.Is(err, store.ErrNotFound):
		foliosdk.ErrNotFound.WriteError(w)

	default:
		log.Error("unexpected service error", "err", err)
		foliosdk.ErrServerError.WriteError(w)
	}
}
