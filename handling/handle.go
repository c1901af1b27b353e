package handling

import (
	"errors"
	"net/http"

	"ollacart_server/lib"

	"github.com/MonkyMars/gecho"
)

// RespondError maps a service error onto the right HTTP response. Every
// handler funnels its error path through here so the sentinel-to-status
// mapping lives in one place.
func RespondError(w http.ResponseWriter, logger *gecho.Logger, err error, msg string) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrValidation):
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrSelfFork),
		errors.Is(err, lib.ErrAlreadyForked),
		errors.Is(err, lib.ErrConflict),
		errors.Is(err, lib.ErrProviderAccountMissing),
		errors.Is(err, lib.ErrOnboardingIncomplete):
		gecho.Conflict(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrStorageUnavailable):
		logger.Error("Storage unavailable", gecho.Field("error", err))
		gecho.ServiceUnavailable(w, gecho.WithMessage("Service temporarily unavailable"), gecho.Send())
	default:
		logger.Error("Request failed", gecho.Field("error", err), gecho.Field("msg", msg))
		gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
	}
}
