package affiliate

import (
	"ollacart_server/api/middleware"
	"ollacart_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AffiliateRoutesManager struct {
	logger           *gecho.Logger
	affiliateService *services.AffiliateService
	mw               *middleware.Middleware
}

func NewAffiliateRoutesManager(
	logger *gecho.Logger,
	affiliateService *services.AffiliateService,
	mw *middleware.Middleware,
) *AffiliateRoutesManager {
	return &AffiliateRoutesManager{
		logger:           logger,
		affiliateService: affiliateService,
		mw:               mw,
	}
}

func (arm *AffiliateRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(arm.mw.UserAuthMiddleware)

		r.Post("/affiliate/links", arm.CreateAffiliateLink)
		r.Get("/affiliate/links", arm.FetchAffiliateLinks)
	})

	// Tracking endpoints are hit from redirects and checkout callbacks,
	// not logged-in sessions.
	r.Post("/affiliate/track/{code}/click", arm.TrackClick)
	r.Post("/affiliate/track/{code}/conversion", arm.TrackConversion)
}
