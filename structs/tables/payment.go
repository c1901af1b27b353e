package tables

import (
	"slices"
	"time"
)

// Retailer is a seller account. StripeOnboardingComplete is flipped only
// by the provider's account.updated webhook, never by direct client
// action.
type Retailer struct {
	tableName                struct{}  `bun:"table:retailers,alias:r"`
	ID                       string    `bun:"id,pk" json:"id"`
	Name                     string    `bun:"name,notnull" json:"name"`
	Email                    string    `bun:"email,notnull" json:"email"`
	Domain                   string    `bun:"domain,notnull" json:"domain"`
	StripeAccountID          string    `bun:"stripe_account_id" json:"stripe_account_id,omitempty"`
	StripeOnboardingComplete bool      `bun:"stripe_onboarding_complete,notnull" json:"stripe_onboarding_complete"`
	CommissionRate           float64   `bun:"commission_rate,notnull" json:"commission_rate"`
	UserID                   string    `bun:"user_id,notnull" json:"user_id"`
	IsActive                 bool      `bun:"is_active,notnull" json:"is_active"`
	CreatedAt                time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt                time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCanceled  PaymentStatus = "canceled"
)

// CanTransitionTo enforces the one-way payment state machine:
// pending → succeeded | failed | canceled, everything else terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	transitions := map[PaymentStatus][]PaymentStatus{
		PaymentPending:   {PaymentSucceeded, PaymentFailed, PaymentCanceled},
		PaymentSucceeded: {},
		PaymentFailed:    {},
		PaymentCanceled:  {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	return slices.Contains(allowed, next)
}

// StripePayment is one checkout attempt. CartItemIDs captures the cart
// item ids at intent-creation time; the cart rows themselves are never
// mutated by the payment flow.
type StripePayment struct {
	tableName             struct{}      `bun:"table:stripe_payments,alias:sp"`
	ID                    string        `bun:"id,pk" json:"id"`
	StripePaymentIntentID string        `bun:"stripe_payment_intent_id" json:"stripe_payment_intent_id,omitempty"`
	UserID                string        `bun:"user_id,notnull" json:"user_id"`
	RetailerID            string        `bun:"retailer_id,notnull" json:"retailer_id"`
	Amount                float64       `bun:"amount,notnull" json:"amount"`
	Currency              string        `bun:"currency,notnull" json:"currency"`
	Status                PaymentStatus `bun:"status,notnull,default:'pending'" json:"status"`
	CartItemIDs           StringList    `bun:"cart_items" json:"cart_items"`
	AffiliateCommission   float64       `bun:"affiliate_commission,notnull" json:"affiliate_commission"`
	CreatedAt             time.Time     `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt             time.Time     `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
