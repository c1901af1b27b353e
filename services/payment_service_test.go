package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	service    *PaymentService
	affiliates *AffiliateService
	carts      *CartService
	products   *ProductService

	productStore   *fakeProductStore
	cartStore      *fakeCartStore
	affiliateStore *fakeAffiliateStore
	paymentStore   *fakePaymentStore
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	logger := gecho.NewDefaultLogger()
	cfg := testConfig()

	productStore := newFakeProductStore()
	cartStore := newFakeCartStore()
	affiliateStore := newFakeAffiliateStore()
	paymentStore := newFakePaymentStore()

	affiliates := NewAffiliateService(logger, cfg, affiliateStore, productStore)

	return &paymentFixture{
		service: NewPaymentService(
			logger, cfg,
			paymentStore, cartStore, productStore, affiliateStore,
			NewSimulatedConnectProvider(cfg),
			nil,
		),
		affiliates:     affiliates,
		carts:          NewCartService(logger, cartStore, productStore, affiliates),
		products:       NewProductService(logger, productStore, nil),
		productStore:   productStore,
		cartStore:      cartStore,
		affiliateStore: affiliateStore,
		paymentStore:   paymentStore,
	}
}

func (f *paymentFixture) onboardedRetailer(t *testing.T) *tables.Retailer {
	t.Helper()
	ctx := context.Background()

	retailer, err := f.service.CreateRetailer(ctx, "seller", &structs.RetailerCreateRequest{
		Name:   "Acme Outfitters",
		Email:  "sales@acme.test",
		Domain: "acme.test",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.HandleWebhook(ctx, accountEvent(retailer.StripeAccountID, true, true)))

	onboarded, err := f.paymentStore.GetRetailer(ctx, retailer.ID)
	require.NoError(t, err)
	return onboarded
}

func (f *paymentFixture) seedCartItem(t *testing.T, user string, price float64, quantity int, affiliateLinkID string) *tables.CartItem {
	t.Helper()
	ctx := context.Background()

	product, err := f.products.Create(ctx, "seller", &structs.ProductCreateRequest{
		Name:  "Item",
		Price: price,
		URL:   "https://acme.test/p/item",
	})
	require.NoError(t, err)

	item, err := f.carts.AddToCart(ctx, user, &structs.CartAddRequest{
		ProductID:       product.ID,
		Quantity:        quantity,
		AffiliateLinkID: affiliateLinkID,
	})
	require.NoError(t, err)
	return item
}

func accountEvent(accountID string, charges, payouts bool) *structs.WebhookEvent {
	return webhookEvent("account.updated", structs.WebhookAccount{
		ID:             accountID,
		ChargesEnabled: charges,
		PayoutsEnabled: payouts,
	})
}

func paymentEvent(eventType, paymentID string) *structs.WebhookEvent {
	var intent structs.WebhookPaymentIntent
	intent.ID = "pi_evt"
	intent.Metadata.PaymentID = paymentID
	return webhookEvent(eventType, intent)
}

func webhookEvent(eventType string, object any) *structs.WebhookEvent {
	raw, _ := json.Marshal(object)
	event := &structs.WebhookEvent{ID: "evt_1", Type: eventType}
	event.Data.Object = raw
	return event
}

func TestCreateRetailerStartsPending(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	retailer, err := f.service.CreateRetailer(ctx, "seller", &structs.RetailerCreateRequest{
		Name:   "Acme",
		Email:  "sales@acme.test",
		Domain: "acme.test",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(retailer.ID, "retailer_"))
	assert.True(t, strings.HasPrefix(retailer.StripeAccountID, "acct_"))
	assert.False(t, retailer.StripeOnboardingComplete)
	assert.Equal(t, 0.05, retailer.CommissionRate)

	link, err := f.service.GetOnboardingLink(ctx, retailer.ID)
	require.NoError(t, err)
	assert.Contains(t, link, retailer.StripeAccountID)
}

func TestGetOnboardingLinkErrors(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.service.GetOnboardingLink(ctx, "retailer_missing")
	assert.ErrorIs(t, err, lib.ErrNotFound)

	unprovisioned := &tables.Retailer{ID: "retailer_bare", Name: "Bare", Email: "b@b.test"}
	require.NoError(t, f.paymentStore.InsertRetailer(ctx, unprovisioned))

	_, err = f.service.GetOnboardingLink(ctx, "retailer_bare")
	assert.ErrorIs(t, err, lib.ErrProviderAccountMissing)
}

func TestOnboardingGateForPaymentIntent(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	retailer, err := f.service.CreateRetailer(ctx, "seller", &structs.RetailerCreateRequest{
		Name:   "Acme",
		Email:  "sales@acme.test",
		Domain: "acme.test",
	})
	require.NoError(t, err)

	item := f.seedCartItem(t, "buyer", 25, 2, "")

	_, err = f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{item.ID},
	})
	assert.ErrorIs(t, err, lib.ErrOnboardingIncomplete)

	// Charges alone are not enough.
	require.NoError(t, f.service.HandleWebhook(ctx, accountEvent(retailer.StripeAccountID, true, false)))
	_, err = f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{item.ID},
	})
	assert.ErrorIs(t, err, lib.ErrOnboardingIncomplete)

	require.NoError(t, f.service.HandleWebhook(ctx, accountEvent(retailer.StripeAccountID, true, true)))

	payment, err := f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{item.ID},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(payment.ID, "payment_"))
	assert.Equal(t, tables.PaymentPending, payment.Status)
	assert.InDelta(t, 50.0, payment.Amount, 1e-9)
	assert.Equal(t, tables.StringList{item.ID}, payment.CartItemIDs)

	// Intent creation never mutates the cart.
	items, err := f.carts.GetCartItems(ctx, "buyer", "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreatePaymentIntentSkipsForeignItems(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	retailer := f.onboardedRetailer(t)
	mine := f.seedCartItem(t, "buyer", 10, 1, "")
	other := f.seedCartItem(t, "someone_else", 99, 1, "")

	payment, err := f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{mine.ID, other.ID},
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, payment.Amount, 1e-9)
	assert.Equal(t, tables.StringList{mine.ID}, payment.CartItemIDs)

	_, err = f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{other.ID},
	})
	assert.ErrorIs(t, err, lib.ErrValidation, "nothing payable left")
}

func TestConfirmPaymentCreditsAffiliateLinks(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	retailer := f.onboardedRetailer(t)

	product, err := f.products.Create(ctx, "seller", &structs.ProductCreateRequest{
		Name:  "Jacket",
		Price: 100,
		URL:   "https://acme.test/p/jacket",
	})
	require.NoError(t, err)

	rate := 0.10
	link, err := f.affiliates.CreateAffiliateLink(ctx, "marketer", &structs.AffiliateLinkRequest{
		ProductID:      product.ID,
		RetailerID:     retailer.ID,
		CommissionRate: &rate,
	})
	require.NoError(t, err)

	item, err := f.carts.AddToCart(ctx, "buyer", &structs.CartAddRequest{
		ProductID:       product.ID,
		Quantity:        2,
		AffiliateLinkID: link.ID,
	})
	require.NoError(t, err)

	payment, err := f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{item.ID},
	})
	require.NoError(t, err)
	assert.InDelta(t, 200.0, payment.Amount, 1e-9)

	confirmed, err := f.service.ConfirmPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, tables.PaymentSucceeded, confirmed.Status)

	credited := f.affiliateStore.links[link.ID]
	assert.Equal(t, int64(1), credited.Conversions)
	assert.InDelta(t, 20.0, credited.Revenue, 1e-9, "item subtotal times the link's own rate")

	// Confirming again is a no-op, not a second credit.
	again, err := f.service.ConfirmPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, tables.PaymentSucceeded, again.Status)
	assert.Equal(t, int64(1), f.affiliateStore.links[link.ID].Conversions)
}

func TestPaymentStateMachineIsTerminal(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	retailer := f.onboardedRetailer(t)
	item := f.seedCartItem(t, "buyer", 30, 1, "")

	payment, err := f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{item.ID},
	})
	require.NoError(t, err)

	failed, err := f.service.FailPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, tables.PaymentFailed, failed.Status)

	_, err = f.service.ConfirmPayment(ctx, payment.ID)
	assert.ErrorIs(t, err, lib.ErrConflict, "failed is terminal")
}

func TestHandleWebhookDispatch(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	retailer := f.onboardedRetailer(t)
	item := f.seedCartItem(t, "buyer", 30, 1, "")

	payment, err := f.service.CreatePaymentIntent(ctx, "buyer", &structs.PaymentIntentRequest{
		RetailerID:  retailer.ID,
		CartItemIDs: []string{item.ID},
	})
	require.NoError(t, err)

	t.Run("unknown event type is ignored", func(t *testing.T) {
		err := f.service.HandleWebhook(ctx, webhookEvent("charge.refunded", struct{}{}))
		assert.NoError(t, err)
	})

	t.Run("unknown account is acknowledged", func(t *testing.T) {
		err := f.service.HandleWebhook(ctx, accountEvent("acct_unknown", true, true))
		assert.NoError(t, err)
	})

	t.Run("missing payment metadata is acknowledged", func(t *testing.T) {
		err := f.service.HandleWebhook(ctx, paymentEvent("payment_intent.succeeded", ""))
		assert.NoError(t, err)
	})

	t.Run("succeeded event confirms the payment", func(t *testing.T) {
		require.NoError(t, f.service.HandleWebhook(ctx, paymentEvent("payment_intent.succeeded", payment.ID)))
		stored, err := f.paymentStore.GetPayment(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, tables.PaymentSucceeded, stored.Status)
	})

	t.Run("failed event on a succeeded payment errors", func(t *testing.T) {
		err := f.service.HandleWebhook(ctx, paymentEvent("payment_intent.payment_failed", payment.ID))
		assert.ErrorIs(t, err, lib.ErrConflict)
	})
}

func TestGetRetailerAnalyticsSummary(t *testing.T) {
	t.Parallel()

	f := newPaymentFixture(t)
	ctx := context.Background()

	retailer := f.onboardedRetailer(t)

	today := time.Now().UTC().Format("2006-01-02")
	require.NoError(t, f.affiliateStore.IncrementDaily(ctx, &tables.RetailerAnalytics{
		ID: "analytics_1", RetailerID: retailer.ID, Date: today,
		ProductViews: 10, CartAdds: 4, Purchases: 2, Revenue: 120,
	}))

	summary, err := f.service.GetRetailerAnalytics(ctx, retailer.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(10), summary.ProductViews)
	assert.Equal(t, int64(4), summary.CartAdds)
	assert.Equal(t, int64(2), summary.Purchases)
	assert.InDelta(t, 120.0, summary.Revenue, 1e-9)
	assert.InDelta(t, 0.2, summary.ConversionRate, 1e-9)
	require.Len(t, summary.Daily, 1)

	_, err = f.service.GetRetailerAnalytics(ctx, "retailer_missing", 7)
	assert.ErrorIs(t, err, lib.ErrNotFound)
}
