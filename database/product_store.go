package database

import (
	"context"
	"ollacart_server/lib"
	"ollacart_server/structs"
	"ollacart_server/structs/tables"
)

// ProductStore is the bun-backed persistence layer for products.
type ProductStore struct {
	db *DB
}

func NewProductStore(db *DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Insert(ctx context.Context, product *tables.Product) error {
	return NewQuery[tables.Product](s.db).Insert(ctx, product)
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*tables.Product, error) {
	return FindByID[tables.Product](ctx, s.db, id)
}

func (s *ProductStore) Save(ctx context.Context, product *tables.Product) error {
	return NewQuery[tables.Product](s.db).UpdateModel(ctx, product)
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	affected, err := NewQuery[tables.Product](s.db).Where("id", id).Delete(ctx)
	if err != nil {
		return err
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// Search returns the slice of the catalog the request selects, newest
// additions first.
func (s *ProductStore) Search(ctx context.Context, req structs.ProductSearchRequest) ([]tables.Product, error) {
	query := NewQuery[tables.Product](s.db)

	switch {
	case req.Social:
		ids := make([]any, len(req.UserIDs))
		for i, id := range req.UserIDs {
			ids[i] = id
		}
		query = query.Where("shared", true).WhereIn("user_id", ids...)
	case req.Shared:
		query = query.Where("shared", true).Where("user_id", req.UserID)
	default:
		query = query.Where("user_id", req.UserID)
		if req.Purchased {
			query = query.Where("purchased", true)
		}
	}

	query = query.Order("sequence", OrderDesc).Order("created_at", OrderDesc)

	page, err := Paginate(ctx, query, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
