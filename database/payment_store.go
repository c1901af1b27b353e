package database

import (
	"context"
	"ollacart_server/structs/tables"
)

// PaymentStore is the bun-backed persistence layer for retailers and
// payment records.
type PaymentStore struct {
	db *DB
}

func NewPaymentStore(db *DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) InsertRetailer(ctx context.Context, retailer *tables.Retailer) error {
	return NewQuery[tables.Retailer](s.db).Insert(ctx, retailer)
}

func (s *PaymentStore) GetRetailer(ctx context.Context, id string) (*tables.Retailer, error) {
	return FindByID[tables.Retailer](ctx, s.db, id)
}

// GetRetailerByAccountID resolves a provider account id back to the
// retailer it was provisioned for. Used by account.updated webhooks.
func (s *PaymentStore) GetRetailerByAccountID(ctx context.Context, accountID string) (*tables.Retailer, error) {
	return NewQuery[tables.Retailer](s.db).Where("stripe_account_id", accountID).First(ctx)
}

func (s *PaymentStore) SaveRetailer(ctx context.Context, retailer *tables.Retailer) error {
	return NewQuery[tables.Retailer](s.db).UpdateModel(ctx, retailer)
}

func (s *PaymentStore) InsertPayment(ctx context.Context, payment *tables.StripePayment) error {
	return NewQuery[tables.StripePayment](s.db).Insert(ctx, payment)
}

func (s *PaymentStore) GetPayment(ctx context.Context, id string) (*tables.StripePayment, error) {
	return FindByID[tables.StripePayment](ctx, s.db, id)
}

func (s *PaymentStore) SavePayment(ctx context.Context, payment *tables.StripePayment) error {
	return NewQuery[tables.StripePayment](s.db).UpdateModel(ctx, payment)
}

func (s *PaymentStore) ListPaymentsByRetailer(ctx context.Context, retailerID string) ([]tables.StripePayment, error) {
	return NewQuery[tables.StripePayment](s.db).
		Where("retailer_id", retailerID).
		Order("created_at", OrderDesc).
		All(ctx)
}
