package affiliate

import (
	"net/http"

	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// TrackClick handles POST /affiliate/track/{code}/click. Unknown codes
// are acknowledged without action.
func (a *AffiliateRoutesManager) TrackClick(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := chi.URLParam(r, "code")
	if err := a.affiliateService.TrackClick(ctx, code); err != nil {
		handling.RespondError(w, a.logger, err, "Failed to track click")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Click tracked"),
		gecho.Send(),
	)
}

// TrackConversion handles POST /affiliate/track/{code}/conversion with the
// gross sale amount in the body.
func (a *AffiliateRoutesManager) TrackConversion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := chi.URLParam(r, "code")
	req, err := lib.ExtractAndValidateBody[structs.ConversionRequest](r)
	if err != nil {
		a.logger.Warn("Invalid conversion payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid conversion payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	link, err := a.affiliateService.TrackConversion(ctx, code, req.Revenue)
	if err != nil {
		handling.RespondError(w, a.logger, err, "Failed to track conversion")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"link": link}),
		gecho.Send(),
	)
}
