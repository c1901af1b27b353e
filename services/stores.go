package services

import (
	"context"

	"ollacart_server/structs"
	"ollacart_server/structs/tables"
)

// The services talk to persistence through these interfaces. The bun
// implementations live in the database package; tests inject in-memory
// fakes.

type ProductStore interface {
	Insert(ctx context.Context, product *tables.Product) error
	GetByID(ctx context.Context, id string) (*tables.Product, error)
	Save(ctx context.Context, product *tables.Product) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, req structs.ProductSearchRequest) ([]tables.Product, error)
}

type CartStore interface {
	Insert(ctx context.Context, item *tables.CartItem) error
	GetByID(ctx context.Context, id string) (*tables.CartItem, error)
	Get(ctx context.Context, userID, productID string, cartType tables.CartType) (*tables.CartItem, error)
	Save(ctx context.Context, item *tables.CartItem) error
	List(ctx context.Context, userID string, cartType tables.CartType) ([]tables.CartItem, error)
	ListByIDs(ctx context.Context, ids []string) ([]tables.CartItem, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, userID string, cartType tables.CartType) (int64, error)
}

type AffiliateStore interface {
	Insert(ctx context.Context, link *tables.AffiliateLink) error
	GetByID(ctx context.Context, id string) (*tables.AffiliateLink, error)
	GetByCode(ctx context.Context, code string) (*tables.AffiliateLink, error)
	Save(ctx context.Context, link *tables.AffiliateLink) error
	ListByUser(ctx context.Context, userID string) ([]tables.AffiliateLink, error)
	IncrementDaily(ctx context.Context, row *tables.RetailerAnalytics) error
	ListDaily(ctx context.Context, retailerID, sinceDate string) ([]tables.RetailerAnalytics, error)
}

type PaymentStore interface {
	InsertRetailer(ctx context.Context, retailer *tables.Retailer) error
	GetRetailer(ctx context.Context, id string) (*tables.Retailer, error)
	GetRetailerByAccountID(ctx context.Context, accountID string) (*tables.Retailer, error)
	SaveRetailer(ctx context.Context, retailer *tables.Retailer) error
	InsertPayment(ctx context.Context, payment *tables.StripePayment) error
	GetPayment(ctx context.Context, id string) (*tables.StripePayment, error)
	SavePayment(ctx context.Context, payment *tables.StripePayment) error
	ListPaymentsByRetailer(ctx context.Context, retailerID string) ([]tables.StripePayment, error)
}
