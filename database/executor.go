package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"ollacart_server/lib"

	"github.com/uptrace/bun"
)

// applySelectConditions applies the builder's state to a bun SELECT query
func (q *Query[T]) applySelectConditions(query *bun.SelectQuery) *bun.SelectQuery {
	for _, where := range q.wheres {
		query = applyWhere(query.Where, where)
	}

	for _, order := range q.orders {
		query = query.Order(fmt.Sprintf("%s %s", order.Column, order.Direction))
	}

	if q.limitVal > 0 {
		query = query.Limit(q.limitVal)
	}
	if q.offsetVal > 0 {
		query = query.Offset(q.offsetVal)
	}
	if q.forUpdate {
		query = query.For("UPDATE")
	}

	return query
}

// applyWhere translates one WhereCondition through a bun Where func
func applyWhere[Q any](whereFn func(string, ...any) Q, where WhereCondition) Q {
	switch {
	case where.Raw != "":
		return whereFn(where.Raw, where.RawArgs...)
	case where.Operator == OpIn:
		return whereFn(fmt.Sprintf("%s IN (?)", where.Column), bun.In(where.Values))
	case where.Operator == OpIsNull || where.Operator == OpIsNotNull:
		return whereFn(fmt.Sprintf("%s %s", where.Column, where.Operator))
	default:
		return whereFn(fmt.Sprintf("%s %s ?", where.Column, where.Operator), where.Value)
	}
}

// All executes the query and returns all matching rows
func (q *Query[T]) All(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var results []T
	err := WithRetry(ctx, func() error {
		results = results[:0]
		query := q.db.NewSelect().Model(&results)
		query = q.applySelectConditions(query)
		return query.Scan(ctx)
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return results, nil
}

// First executes the query and returns the first matching row
func (q *Query[T]) First(ctx context.Context) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	result := new(T)
	err := WithRetry(ctx, func() error {
		query := q.db.NewSelect().Model(result)
		query = q.applySelectConditions(query).Limit(1)
		return query.Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lib.ErrNotFound
		}
		return nil, classifyError(err)
	}

	return result, nil
}

// Count returns the number of matching rows
func (q *Query[T]) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var count int
	err := WithRetry(ctx, func() error {
		query := q.db.NewSelect().Model((*T)(nil))
		for _, where := range q.wheres {
			query = applyWhere(query.Where, where)
		}
		var countErr error
		count, countErr = query.Count(ctx)
		return countErr
	})
	if err != nil {
		return 0, classifyError(err)
	}

	return count, nil
}

// Exists reports whether any row matches the query
func (q *Query[T]) Exists(ctx context.Context) (bool, error) {
	count, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert inserts the given entity and scans database defaults back into it
func (q *Query[T]) Insert(ctx context.Context, entity *T) error {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	err := WithRetry(ctx, func() error {
		_, insertErr := q.db.NewInsert().Model(entity).Returning("*").Exec(ctx)
		return insertErr
	})
	if err != nil {
		return classifyError(err)
	}

	return nil
}

// Update applies the given column updates to all matching rows and
// returns the number of rows affected
func (q *Query[T]) Update(ctx context.Context, updates map[string]any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var affected int64
	err := WithRetry(ctx, func() error {
		query := q.db.NewUpdate().Model((*T)(nil))
		for column, value := range updates {
			query = query.Set(fmt.Sprintf("%s = ?", column), value)
		}
		for _, where := range q.wheres {
			query = applyWhere(query.Where, where)
		}

		result, execErr := query.Exec(ctx)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, classifyError(err)
	}

	return affected, nil
}

// UpdateModel saves the full entity back to its row, matching on primary key
func (q *Query[T]) UpdateModel(ctx context.Context, entity *T) error {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	err := WithRetry(ctx, func() error {
		_, execErr := q.db.NewUpdate().Model(entity).WherePK().Returning("*").Exec(ctx)
		return execErr
	})
	if err != nil {
		return classifyError(err)
	}

	return nil
}

// Delete removes all matching rows and returns the number of rows affected
func (q *Query[T]) Delete(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	var affected int64
	err := WithRetry(ctx, func() error {
		query := q.db.NewDelete().Model((*T)(nil))
		for _, where := range q.wheres {
			query = applyWhere(query.Where, where)
		}

		result, execErr := query.Exec(ctx)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, classifyError(err)
	}

	return affected, nil
}

// classifyError maps low-level database errors onto the shared error taxonomy
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return lib.ErrNotFound
	}
	if IsUnavailable(err) {
		return fmt.Errorf("%w: %v", lib.ErrStorageUnavailable, err)
	}
	return lib.MapPgError(err)
}
