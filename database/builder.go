package database

import (
	"time"
)

// Operator represents SQL comparison operators
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpGreaterThan  Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLessThan     Operator = "<"
	OpLessEqual    Operator = "<="
	OpLike         Operator = "LIKE"
	OpILike        Operator = "ILIKE"
	OpIn           Operator = "IN"
	OpIsNull       Operator = "IS NULL"
	OpIsNotNull    Operator = "IS NOT NULL"
)

// OrderDirection represents sort order
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// WhereCondition represents a single WHERE clause condition
type WhereCondition struct {
	Column   string
	Operator Operator
	Value    any
	Values   []any // for IN clauses
	Raw      string
	RawArgs  []any
}

// OrderBy represents an ORDER BY clause
type OrderBy struct {
	Column    string
	Direction OrderDirection
}

// Query is a generic fluent query builder for entity tables.
// T must be a struct with bun table annotations.
type Query[T any] struct {
	db        *DB
	model     *T
	wheres    []WhereCondition
	orders    []OrderBy
	limitVal  int
	offsetVal int
	timeout   time.Duration
	forUpdate bool
}

// NewQuery creates a new query builder for the given entity type
func NewQuery[T any](db *DB) *Query[T] {
	return &Query[T]{
		db:      db,
		model:   new(T),
		timeout: 30 * time.Second,
	}
}

// Where adds an equality condition
func (q *Query[T]) Where(column string, value any) *Query[T] {
	q.wheres = append(q.wheres, WhereCondition{
		Column:   column,
		Operator: OpEqual,
		Value:    value,
	})
	return q
}

// WhereOp adds a condition with a custom operator
func (q *Query[T]) WhereOp(column string, op Operator, value any) *Query[T] {
	q.wheres = append(q.wheres, WhereCondition{
		Column:   column,
		Operator: op,
		Value:    value,
	})
	return q
}

// WhereIn adds an IN condition
func (q *Query[T]) WhereIn(column string, values ...any) *Query[T] {
	q.wheres = append(q.wheres, WhereCondition{
		Column:   column,
		Operator: OpIn,
		Values:   values,
	})
	return q
}

// WhereNull adds an IS NULL condition
func (q *Query[T]) WhereNull(column string) *Query[T] {
	q.wheres = append(q.wheres, WhereCondition{
		Column:   column,
		Operator: OpIsNull,
	})
	return q
}

// WhereRaw adds a raw SQL condition with placeholders
func (q *Query[T]) WhereRaw(raw string, args ...any) *Query[T] {
	q.wheres = append(q.wheres, WhereCondition{
		Raw:     raw,
		RawArgs: args,
	})
	return q
}

// Order adds an ORDER BY clause
func (q *Query[T]) Order(column string, direction OrderDirection) *Query[T] {
	q.orders = append(q.orders, OrderBy{
		Column:    column,
		Direction: direction,
	})
	return q
}

// Limit sets the LIMIT
func (q *Query[T]) Limit(limit int) *Query[T] {
	q.limitVal = limit
	return q
}

// Offset sets the OFFSET
func (q *Query[T]) Offset(offset int) *Query[T] {
	q.offsetVal = offset
	return q
}

// Timeout sets the query timeout
func (q *Query[T]) Timeout(timeout time.Duration) *Query[T] {
	q.timeout = timeout
	return q
}

// ForUpdate locks the selected rows until the surrounding transaction ends
func (q *Query[T]) ForUpdate() *Query[T] {
	q.forUpdate = true
	return q
}
