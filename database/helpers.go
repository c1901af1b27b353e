package database

import (
	"context"
	"fmt"
	"strings"
)

// Upsert inserts the entity or, when the conflict columns collide with an
// existing row, applies the given SET expressions instead. Used for
// increment-on-conflict rollups.
func Upsert[T any](ctx context.Context, db *DB, entity *T, conflictColumns []string, updates []string) error {
	err := WithRetry(ctx, func() error {
		query := db.NewInsert().
			Model(entity).
			On(fmt.Sprintf("CONFLICT (%s) DO UPDATE", strings.Join(conflictColumns, ", ")))

		for _, set := range updates {
			query = query.Set(set)
		}

		_, execErr := query.Returning("*").Exec(ctx)
		return execErr
	})
	if err != nil {
		return classifyError(err)
	}

	return nil
}

// FindByID fetches a single entity by its primary key column
func FindByID[T any](ctx context.Context, db *DB, id string) (*T, error) {
	return NewQuery[T](db).Where("id", id).First(ctx)
}

// Page describes one page of a paginated result set
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Paginate executes the query twice, once for the total count and once for
// the requested window, and returns both.
func Paginate[T any](ctx context.Context, q *Query[T], limit, offset int) (*Page[T], error) {
	total, err := q.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := q.Limit(limit).Offset(offset).All(ctx)
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
