package payments

import (
	"encoding/json"
	"net/http"

	"ollacart_server/handling"
	"ollacart_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleWebhook handles POST /payments/webhook. The provider retries on
// non-2xx, so only genuinely failed processing returns an error status;
// unknown event types are acknowledged.
func (p *PaymentRoutesManager) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var event structs.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		p.logger.Warn("Malformed webhook payload", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Malformed webhook payload"),
			gecho.Send(),
		)
		return
	}

	p.logger.Info("Webhook event received",
		gecho.Field("id", event.ID),
		gecho.Field("type", event.Type))

	if err := p.paymentService.HandleWebhook(ctx, &event); err != nil {
		handling.RespondError(w, p.logger, err, "Failed to process webhook event")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Event processed"),
		gecho.Send(),
	)
}
