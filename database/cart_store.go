package database

import (
	"context"
	"ollacart_server/lib"
	"ollacart_server/structs/tables"
)

// CartStore is the bun-backed persistence layer for cart lanes.
type CartStore struct {
	db *DB
}

func NewCartStore(db *DB) *CartStore {
	return &CartStore{db: db}
}

func (s *CartStore) Insert(ctx context.Context, item *tables.CartItem) error {
	return NewQuery[tables.CartItem](s.db).Insert(ctx, item)
}

func (s *CartStore) GetByID(ctx context.Context, id string) (*tables.CartItem, error) {
	return FindByID[tables.CartItem](ctx, s.db, id)
}

// Get returns the single row for one product in one lane of one user's
// cart, or ErrNotFound.
func (s *CartStore) Get(ctx context.Context, userID, productID string, cartType tables.CartType) (*tables.CartItem, error) {
	return NewQuery[tables.CartItem](s.db).
		Where("user_id", userID).
		Where("product_id", productID).
		Where("cart_type", cartType).
		First(ctx)
}

func (s *CartStore) Save(ctx context.Context, item *tables.CartItem) error {
	return NewQuery[tables.CartItem](s.db).UpdateModel(ctx, item)
}

func (s *CartStore) List(ctx context.Context, userID string, cartType tables.CartType) ([]tables.CartItem, error) {
	return NewQuery[tables.CartItem](s.db).
		Where("user_id", userID).
		Where("cart_type", cartType).
		Order("created_at", OrderDesc).
		All(ctx)
}

func (s *CartStore) ListByIDs(ctx context.Context, ids []string) ([]tables.CartItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	return NewQuery[tables.CartItem](s.db).WhereIn("id", values...).All(ctx)
}

func (s *CartStore) Delete(ctx context.Context, id string) error {
	affected, err := NewQuery[tables.CartItem](s.db).Where("id", id).Delete(ctx)
	if err != nil {
		return err
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// Clear empties one lane for one user in a single statement.
func (s *CartStore) Clear(ctx context.Context, userID string, cartType tables.CartType) (int64, error) {
	return NewQuery[tables.CartItem](s.db).
		Where("user_id", userID).
		Where("cart_type", cartType).
		Delete(ctx)
}
