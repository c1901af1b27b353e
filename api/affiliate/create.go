package affiliate

import (
	"net/http"

	"ollacart_server/api/middleware"
	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateAffiliateLink handles POST /affiliate/links
func (a *AffiliateRoutesManager) CreateAffiliateLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	req, err := lib.ExtractAndValidateBody[structs.AffiliateLinkRequest](r)
	if err != nil {
		a.logger.Warn("Invalid affiliate link payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid affiliate link payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	link, err := a.affiliateService.CreateAffiliateLink(ctx, userID, req)
	if err != nil {
		handling.RespondError(w, a.logger, err, "Failed to create affiliate link")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"link": link}),
		gecho.Send(),
	)
}

// FetchAffiliateLinks handles GET /affiliate/links
func (a *AffiliateRoutesManager) FetchAffiliateLinks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	links, err := a.affiliateService.GetAffiliateLinks(ctx, userID)
	if err != nil {
		handling.RespondError(w, a.logger, err, "Failed to fetch affiliate links")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"links": links,
			"count": len(links),
		}),
		gecho.Send(),
	)
}
