package database

import (
	"context"
	"ollacart_server/structs/tables"
)

// AffiliateStore is the bun-backed persistence layer for affiliate links
// and the daily analytics rollup.
type AffiliateStore struct {
	db *DB
}

func NewAffiliateStore(db *DB) *AffiliateStore {
	return &AffiliateStore{db: db}
}

func (s *AffiliateStore) Insert(ctx context.Context, link *tables.AffiliateLink) error {
	return NewQuery[tables.AffiliateLink](s.db).Insert(ctx, link)
}

func (s *AffiliateStore) GetByID(ctx context.Context, id string) (*tables.AffiliateLink, error) {
	return FindByID[tables.AffiliateLink](ctx, s.db, id)
}

func (s *AffiliateStore) GetByCode(ctx context.Context, code string) (*tables.AffiliateLink, error) {
	return NewQuery[tables.AffiliateLink](s.db).Where("affiliate_code", code).First(ctx)
}

func (s *AffiliateStore) Save(ctx context.Context, link *tables.AffiliateLink) error {
	return NewQuery[tables.AffiliateLink](s.db).UpdateModel(ctx, link)
}

func (s *AffiliateStore) ListByUser(ctx context.Context, userID string) ([]tables.AffiliateLink, error) {
	return NewQuery[tables.AffiliateLink](s.db).
		Where("user_id", userID).
		Order("created_at", OrderDesc).
		All(ctx)
}

// IncrementDaily applies the row's counter values as deltas to the
// (retailer_id, date) rollup, creating the row on first touch. The
// increment happens inside the database so concurrent events never lose
// updates.
func (s *AffiliateStore) IncrementDaily(ctx context.Context, row *tables.RetailerAnalytics) error {
	return Upsert(ctx, s.db, row,
		[]string{"retailer_id", "date"},
		[]string{
			"product_views = ra.product_views + EXCLUDED.product_views",
			"cart_adds = ra.cart_adds + EXCLUDED.cart_adds",
			"purchases = ra.purchases + EXCLUDED.purchases",
			"revenue = ra.revenue + EXCLUDED.revenue",
		},
	)
}

// ListDaily returns the rollup rows for a retailer from sinceDate
// (inclusive, YYYY-MM-DD) onward, oldest first.
func (s *AffiliateStore) ListDaily(ctx context.Context, retailerID, sinceDate string) ([]tables.RetailerAnalytics, error) {
	return NewQuery[tables.RetailerAnalytics](s.db).
		Where("retailer_id", retailerID).
		WhereOp("date", OpGreaterEqual, sinceDate).
		Order("date", OrderAsc).
		All(ctx)
}
