package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable means the entity store could not be reached at
	// all. Read handlers may substitute demo data on it; write paths
	// surface it to the caller.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Input errors
var (
	ErrValidation = errors.New("validation failed")
)

// Catalog business-rule errors
var (
	ErrSelfFork      = errors.New("cannot add from your own cart")
	ErrAlreadyForked = errors.New("already added")
)

// Payment precondition errors
var (
	ErrOnboardingIncomplete   = errors.New("retailer onboarding not complete")
	ErrProviderAccountMissing = errors.New("payment provider account not created")
)

func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
