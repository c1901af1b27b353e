package payments

import (
	"net/http"

	"ollacart_server/api/middleware"
	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// CreateRetailer handles POST /retailers. The retailer starts in pending
// onboarding state; the onboarding email goes out in the background.
func (p *PaymentRoutesManager) CreateRetailer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	req, err := lib.ExtractAndValidateBody[structs.RetailerCreateRequest](r)
	if err != nil {
		p.logger.Warn("Invalid retailer payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid retailer payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	retailer, err := p.paymentService.CreateRetailer(ctx, userID, req)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to create retailer")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"retailer": retailer}),
		gecho.Send(),
	)
}

// GetOnboardingLink handles GET /retailers/{id}/onboarding-link
func (p *PaymentRoutesManager) GetOnboardingLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	retailerID := chi.URLParam(r, "id")
	link, err := p.paymentService.GetOnboardingLink(ctx, retailerID)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to get onboarding link")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"url": link}),
		gecho.Send(),
	)
}

// FetchRetailerPayments handles GET /retailers/{id}/payments
func (p *PaymentRoutesManager) FetchRetailerPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	retailerID := chi.URLParam(r, "id")
	payments, err := p.paymentService.GetRetailerPayments(ctx, retailerID)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to fetch payments")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"payments": payments,
			"count":    len(payments),
		}),
		gecho.Send(),
	)
}

// FetchRetailerAnalytics handles GET /retailers/{id}/analytics?days=30
func (p *PaymentRoutesManager) FetchRetailerAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	retailerID := chi.URLParam(r, "id")
	days := handling.ParseDays(r)

	summary, err := p.paymentService.GetRetailerAnalytics(ctx, retailerID, days)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to fetch analytics")
		return
	}

	gecho.Success(w,
		gecho.WithData(summary),
		gecho.Send(),
	)
}
