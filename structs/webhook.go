package structs

import "encoding/json"

// WebhookEvent is the provider event envelope delivered to the webhook
// endpoint. Data.Object is decoded per event type; unknown types are
// ignored by the dispatcher.
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// WebhookAccount is the object payload of account.updated events. The
// onboarding gate is the AND of the two enablement flags.
type WebhookAccount struct {
	ID             string `json:"id"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

// WebhookPaymentIntent is the object payload of payment_intent.* events.
// Metadata carries the payment record id set at intent-creation time.
type WebhookPaymentIntent struct {
	ID       string `json:"id"`
	Metadata struct {
		PaymentID string `json:"paymentId"`
	} `json:"metadata"`
}
