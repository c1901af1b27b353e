package payments

import (
	"net/http"

	"ollacart_server/api/middleware"
	"ollacart_server/handling"
	"ollacart_server/lib"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreatePaymentIntent handles POST /payments/intent
func (p *PaymentRoutesManager) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.CallerID(ctx)

	req, err := lib.ExtractAndValidateBody[structs.PaymentIntentRequest](r)
	if err != nil {
		p.logger.Warn("Invalid payment intent payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid payment intent payload"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	payment, err := p.paymentService.CreatePaymentIntent(ctx, userID, req)
	if err != nil {
		handling.RespondError(w, p.logger, err, "Failed to create payment intent")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"payment": payment}),
		gecho.Send(),
	)
}
