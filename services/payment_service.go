package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// PaymentService owns retailer onboarding and the checkout payment
// lifecycle. Provider-side state changes arrive exclusively through
// HandleWebhook.
type PaymentService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	store        PaymentStore
	carts        CartStore
	products     ProductStore
	affiliates   AffiliateStore
	provider     ConnectProvider
	emailService *EmailService
}

func NewPaymentService(
	logger *gecho.Logger,
	cfg *structs.Config,
	store PaymentStore,
	carts CartStore,
	products ProductStore,
	affiliates AffiliateStore,
	provider ConnectProvider,
	emailService *EmailService,
) *PaymentService {
	return &PaymentService{
		logger:       logger,
		cfg:          cfg,
		store:        store,
		carts:        carts,
		products:     products,
		affiliates:   affiliates,
		provider:     provider,
		emailService: emailService,
	}
}

// CreateRetailer registers a seller in pending onboarding state. Account
// provisioning is attempted immediately but its failure never fails the
// registration; the onboarding email goes out in the background.
func (ps *PaymentService) CreateRetailer(ctx context.Context, userID string, req *structs.RetailerCreateRequest) (*tables.Retailer, error) {
	now := time.Now()
	retailer := &tables.Retailer{
		ID:             lib.NewID("retailer"),
		Name:           req.Name,
		Email:          req.Email,
		Domain:         req.Domain,
		CommissionRate: ps.cfg.Payments.DefaultCommissionRate,
		UserID:         userID,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := ps.store.InsertRetailer(ctx, retailer); err != nil {
		ps.logger.Error("Failed to create retailer",
			gecho.Field("userId", userID),
			gecho.Field("error", err))
		return nil, fmt.Errorf("failed to create retailer: %w", err)
	}

	accountID, err := ps.provider.CreateAccount(ctx, retailer)
	if err != nil {
		ps.logger.Error("Provider account provisioning failed, retailer left unprovisioned",
			gecho.Field("retailerId", retailer.ID),
			gecho.Field("error", err))
	} else {
		retailer.StripeAccountID = accountID
		retailer.UpdatedAt = time.Now()
		if err := ps.store.SaveRetailer(ctx, retailer); err != nil {
			ps.logger.Error("Failed to save provider account id",
				gecho.Field("retailerId", retailer.ID),
				gecho.Field("error", err))
		} else {
			go ps.sendOnboardingEmail(retailer)
		}
	}

	ps.logger.Info("Retailer created",
		gecho.Field("id", retailer.ID),
		gecho.Field("domain", retailer.Domain),
		gecho.Field("provisioned", retailer.StripeAccountID != ""))

	return retailer, nil
}

func (ps *PaymentService) sendOnboardingEmail(retailer *tables.Retailer) {
	if ps.emailService == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	link, err := ps.provider.OnboardingLink(ctx, retailer.StripeAccountID)
	if err != nil {
		ps.logger.Warn("Could not build onboarding link for email",
			gecho.Field("retailerId", retailer.ID),
			gecho.Field("error", err))
		return
	}

	if err := ps.emailService.SendOnboardingEmail(retailer, link); err != nil {
		ps.logger.Warn("Onboarding email failed",
			gecho.Field("retailerId", retailer.ID),
			gecho.Field("error", err))
	}
}

// GetOnboardingLink returns the URL where the retailer completes payment
// onboarding.
func (ps *PaymentService) GetOnboardingLink(ctx context.Context, retailerID string) (string, error) {
	retailer, err := ps.store.GetRetailer(ctx, retailerID)
	if err != nil {
		return "", err
	}

	if retailer.StripeAccountID == "" {
		return "", lib.ErrProviderAccountMissing
	}

	return ps.provider.OnboardingLink(ctx, retailer.StripeAccountID)
}

// CreatePaymentIntent opens a pending payment for a set of the caller's
// cart items sold by one retailer. The cart rows themselves are only
// captured by id, never mutated. Items whose product has since been
// deleted are skipped.
func (ps *PaymentService) CreatePaymentIntent(ctx context.Context, userID string, req *structs.PaymentIntentRequest) (*tables.StripePayment, error) {
	retailer, err := ps.store.GetRetailer(ctx, req.RetailerID)
	if err != nil {
		return nil, err
	}
	if !retailer.StripeOnboardingComplete {
		return nil, lib.ErrOnboardingIncomplete
	}

	items, err := ps.carts.ListByIDs(ctx, req.CartItemIDs)
	if err != nil {
		return nil, err
	}

	var amount, commission float64
	capturedIDs := make(tables.StringList, 0, len(items))
	for i := range items {
		item := &items[i]
		if item.UserID != userID {
			continue
		}

		product, err := ps.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, lib.ErrNotFound) {
				continue
			}
			return nil, err
		}

		subtotal := product.Price * float64(item.Quantity)
		amount += subtotal
		if item.AffiliateLinkID != "" {
			commission += subtotal * retailer.CommissionRate
		}
		capturedIDs = append(capturedIDs, item.ID)
	}

	if len(capturedIDs) == 0 {
		return nil, fmt.Errorf("%w: no payable cart items", lib.ErrValidation)
	}

	now := time.Now()
	payment := &tables.StripePayment{
		ID:                    lib.NewID("payment"),
		StripePaymentIntentID: fmt.Sprintf("pi_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:24]),
		UserID:                userID,
		RetailerID:            retailer.ID,
		Amount:                amount,
		Currency:              "usd",
		Status:                tables.PaymentPending,
		CartItemIDs:           capturedIDs,
		AffiliateCommission:   commission,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := ps.store.InsertPayment(ctx, payment); err != nil {
		ps.logger.Error("Failed to create payment intent",
			gecho.Field("retailerId", retailer.ID),
			gecho.Field("error", err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	ps.logger.Info("Payment intent created",
		gecho.Field("id", payment.ID),
		gecho.Field("amount", amount),
		gecho.Field("commission", commission),
		gecho.Field("items", len(capturedIDs)))

	return payment, nil
}

// ConfirmPayment marks a pending payment succeeded and credits each
// affiliated captured item to its link: conversions plus one, revenue
// plus that item's subtotal times the link's own rate. Confirming a
// payment that already succeeded is a no-op.
func (ps *PaymentService) ConfirmPayment(ctx context.Context, paymentID string) (*tables.StripePayment, error) {
	payment, err := ps.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == tables.PaymentSucceeded {
		return payment, nil
	}
	if !payment.Status.CanTransitionTo(tables.PaymentSucceeded) {
		return nil, fmt.Errorf("%w: payment %s is %s", lib.ErrConflict, paymentID, payment.Status)
	}

	payment.Status = tables.PaymentSucceeded
	payment.UpdatedAt = time.Now()
	if err := ps.store.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}

	ps.creditAffiliates(ctx, payment)

	ps.logger.Info("Payment confirmed",
		gecho.Field("id", payment.ID),
		gecho.Field("amount", payment.Amount))

	return payment, nil
}

func (ps *PaymentService) creditAffiliates(ctx context.Context, payment *tables.StripePayment) {
	items, err := ps.carts.ListByIDs(ctx, payment.CartItemIDs)
	if err != nil {
		ps.logger.Warn("Could not load captured cart items for commission",
			gecho.Field("paymentId", payment.ID),
			gecho.Field("error", err))
		return
	}

	for i := range items {
		item := &items[i]
		if item.AffiliateLinkID == "" {
			continue
		}

		link, err := ps.affiliates.GetByID(ctx, item.AffiliateLinkID)
		if err != nil {
			ps.logger.Warn("Affiliate link missing for captured item",
				gecho.Field("linkId", item.AffiliateLinkID),
				gecho.Field("error", err))
			continue
		}

		product, err := ps.products.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}

		subtotal := product.Price * float64(item.Quantity)
		link.Conversions++
		link.Revenue += subtotal * link.CommissionRate
		link.UpdatedAt = time.Now()
		if err := ps.affiliates.Save(ctx, link); err != nil {
			ps.logger.Warn("Failed to credit affiliate link",
				gecho.Field("linkId", link.ID),
				gecho.Field("error", err))
		}
	}

	rollup := &tables.RetailerAnalytics{
		ID:         lib.NewID("analytics"),
		RetailerID: payment.RetailerID,
		Date:       time.Now().UTC().Format("2006-01-02"),
		Purchases:  1,
		Revenue:    payment.Amount,
		CreatedAt:  time.Now(),
	}
	if err := ps.affiliates.IncrementDaily(ctx, rollup); err != nil {
		ps.logger.Warn("Failed to update retailer rollup",
			gecho.Field("retailerId", payment.RetailerID),
			gecho.Field("error", err))
	}
}

// FailPayment marks a pending payment failed.
func (ps *PaymentService) FailPayment(ctx context.Context, paymentID string) (*tables.StripePayment, error) {
	payment, err := ps.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == tables.PaymentFailed {
		return payment, nil
	}
	if !payment.Status.CanTransitionTo(tables.PaymentFailed) {
		return nil, fmt.Errorf("%w: payment %s is %s", lib.ErrConflict, paymentID, payment.Status)
	}

	payment.Status = tables.PaymentFailed
	payment.UpdatedAt = time.Now()
	if err := ps.store.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to mark payment failed: %w", err)
	}

	return payment, nil
}

// HandleWebhook dispatches a provider event. Unknown event types and
// references to unknown records are acknowledged without action so the
// provider stops redelivering them.
func (ps *PaymentService) HandleWebhook(ctx context.Context, event *structs.WebhookEvent) error {
	switch event.Type {
	case "account.updated":
		return ps.handleAccountUpdated(ctx, event)
	case "payment_intent.succeeded":
		return ps.handlePaymentOutcome(ctx, event, ps.ConfirmPayment)
	case "payment_intent.payment_failed":
		return ps.handlePaymentOutcome(ctx, event, ps.FailPayment)
	default:
		ps.logger.Debug("Ignoring webhook event", gecho.Field("type", event.Type))
		return nil
	}
}

func (ps *PaymentService) handleAccountUpdated(ctx context.Context, event *structs.WebhookEvent) error {
	var account structs.WebhookAccount
	if err := json.Unmarshal(event.Data.Object, &account); err != nil {
		return fmt.Errorf("%w: malformed account payload", lib.ErrValidation)
	}

	retailer, err := ps.store.GetRetailerByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			ps.logger.Warn("account.updated for unknown account", gecho.Field("accountId", account.ID))
			return nil
		}
		return err
	}

	complete := account.ChargesEnabled && account.PayoutsEnabled
	if retailer.StripeOnboardingComplete == complete {
		return nil
	}

	retailer.StripeOnboardingComplete = complete
	retailer.UpdatedAt = time.Now()
	if err := ps.store.SaveRetailer(ctx, retailer); err != nil {
		return fmt.Errorf("failed to update onboarding state: %w", err)
	}

	ps.logger.Info("Retailer onboarding state updated",
		gecho.Field("retailerId", retailer.ID),
		gecho.Field("complete", complete))

	return nil
}

func (ps *PaymentService) handlePaymentOutcome(ctx context.Context, event *structs.WebhookEvent, apply func(context.Context, string) (*tables.StripePayment, error)) error {
	var intent structs.WebhookPaymentIntent
	if err := json.Unmarshal(event.Data.Object, &intent); err != nil {
		return fmt.Errorf("%w: malformed payment intent payload", lib.ErrValidation)
	}

	if intent.Metadata.PaymentID == "" {
		ps.logger.Warn("Payment intent event without payment metadata", gecho.Field("intentId", intent.ID))
		return nil
	}

	if _, err := apply(ctx, intent.Metadata.PaymentID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			ps.logger.Warn("Payment intent event for unknown payment",
				gecho.Field("paymentId", intent.Metadata.PaymentID))
			return nil
		}
		return err
	}

	return nil
}

// GetRetailerPayments lists a retailer's payment records, newest first.
func (ps *PaymentService) GetRetailerPayments(ctx context.Context, retailerID string) ([]tables.StripePayment, error) {
	if _, err := ps.store.GetRetailer(ctx, retailerID); err != nil {
		return nil, err
	}

	payments, err := ps.store.ListPaymentsByRetailer(ctx, retailerID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []tables.StripePayment{}
	}

	return payments, nil
}

// RetailerAnalyticsSummary aggregates the daily rollup over a window.
type RetailerAnalyticsSummary struct {
	RetailerID     string                     `json:"retailer_id"`
	Days           int                        `json:"days"`
	ProductViews   int64                      `json:"product_views"`
	CartAdds       int64                      `json:"cart_adds"`
	Purchases      int64                      `json:"purchases"`
	Revenue        float64                    `json:"revenue"`
	ConversionRate float64                    `json:"conversion_rate"`
	Daily          []tables.RetailerAnalytics `json:"daily"`
}

// GetRetailerAnalytics summarizes the last days of the retailer's rollup.
func (ps *PaymentService) GetRetailerAnalytics(ctx context.Context, retailerID string, days int) (*RetailerAnalyticsSummary, error) {
	if days <= 0 {
		days = 30
	}

	if _, err := ps.store.GetRetailer(ctx, retailerID); err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -days+1).Format("2006-01-02")
	rows, err := ps.affiliates.ListDaily(ctx, retailerID, since)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []tables.RetailerAnalytics{}
	}

	summary := &RetailerAnalyticsSummary{
		RetailerID: retailerID,
		Days:       days,
		Daily:      rows,
	}
	for i := range rows {
		summary.ProductViews += rows[i].ProductViews
		summary.CartAdds += rows[i].CartAdds
		summary.Purchases += rows[i].Purchases
		summary.Revenue += rows[i].Revenue
	}
	if summary.ProductViews > 0 {
		summary.ConversionRate = float64(summary.Purchases) / float64(summary.ProductViews)
	}

	return summary, nil
}
