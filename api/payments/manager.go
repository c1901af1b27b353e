package payments

import (
	"ollacart_server/api/middleware"
	"ollacart_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PaymentRoutesManager struct {
	logger         *gecho.Logger
	paymentService *services.PaymentService
	mw             *middleware.Middleware
}

func NewPaymentRoutesManager(
	logger *gecho.Logger,
	paymentService *services.PaymentService,
	mw *middleware.Middleware,
) *PaymentRoutesManager {
	return &PaymentRoutesManager{
		logger:         logger,
		paymentService: paymentService,
		mw:             mw,
	}
}

func (prm *PaymentRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(prm.mw.UserAuthMiddleware)

		r.Post("/retailers", prm.CreateRetailer)
		r.Get("/retailers/{id}/onboarding-link", prm.GetOnboardingLink)
		r.Get("/retailers/{id}/payments", prm.FetchRetailerPayments)
		r.Get("/retailers/{id}/analytics", prm.FetchRetailerAnalytics)
		r.Post("/payments/intent", prm.CreatePaymentIntent)
	})

	// The provider signs and delivers events here; no user session.
	r.Post("/payments/webhook", prm.HandleWebhook)
}
