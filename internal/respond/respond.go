// Package respond writes JSON bodies and translates errors into the API envelope.
package respond

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"toyland-backend/internal/errs"
	"toyland-backend/internal/logging"
	"toyland-backend/internal/models"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Warn().Err(err).Msg("failed to encode response")
	}
}

// Error maps err to a status code. Unknown errors are logged and reported as a bare 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *errs.HTTPError
	switch {
	case errors.As(err, &httpErr):
	case errors.Is(err, models.ErrInvalidID):
		httpErr = errs.NewBadRequestError(err.Error(), errs.CodeInvalidID, nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		httpErr = errs.NewInternalServerError()
	}
	JSON(w, httpErr.Status, httpErr)
}

// Decode reads a JSON request body into v.
func Decode(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errs.NewBadRequestError("request body is required", errs.CodeInvalidBody, nil)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.NewBadRequestError("invalid request body", errs.CodeInvalidBody, nil)
	}
	return nil
}
