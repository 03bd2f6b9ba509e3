package http

import (
	"errors"
	"net/http"

	"layover-os/internal/concierge"
	pkgErrors "layover-os/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errUpstream    = pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream service unavailable, retry the request")
)

// mapError translates concierge errors into HTTP errors. Anything unrecognised is a 500.
// Upstream failures get a fixed message; callers log the wrapped detail.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, concierge.ErrEmptySessionID),
		errors.Is(err, concierge.ErrMissingLocation),
		errors.Is(err, concierge.ErrUnknownScope):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, concierge.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, concierge.ErrSessionConflict):
		return pkgErrors.NewHTTPError(http.StatusConflict, "session was modified concurrently, retry the request")
	case errors.Is(err, concierge.ErrRetrievalFailed),
		errors.Is(err, concierge.ErrLookupFailed):
		return errUpstream
	default:
		return pkgErrors.ErrInternalServerError
	}
}
