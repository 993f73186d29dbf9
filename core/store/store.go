package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNoDefiniteResult is returned when neither an insert nor a matching
// existing row could be produced. Higher layers treat it as a store
// failure and roll back the surrounding import transaction.
var ErrNoDefiniteResult = errors.New("insert-or-find produced no definite result")

// Option configures a FindOrCreate call.
type Option func(*options)

type options struct {
	returning []string
}

// WithReturning restricts the columns fetched when an existing row is
// found. The read-only catalog lookups use it to avoid loading wide
// detail columns; ingestion callers normally want the full row.
func WithReturning(columns ...string) Option {
	return func(o *options) {
		o.returning = columns
	}
}

// FindOrCreate atomically resolves a row by its natural key: it returns
// the existing row whose key columns match, or creates the candidate.
//
// The candidate must be fully populated; key names the subset of columns
// forming the natural/conflict key, with the values the row must match.
// On return the candidate holds the resulting row (including its primary
// key) and the flag reports whether this call created new state. That
// flag is the sole signal callers use to decide whether to cascade
// further writes.
//
// The statement runs on the handle it is given, so inside a transaction
// the check-then-act is serialized against writers of the same key; a
// unique constraint on the key columns backstops the race, surfacing as
// gorm.ErrDuplicatedKey and resolved by a re-fetch.
func FindOrCreate[T any](tx *gorm.DB, candidate *T, key map[string]any, opts ...Option) (bool, error) {
	if len(key) == 0 {
		return false, fmt.Errorf("%w: no conflict key declared", ErrNoDefiniteResult)
	}
	for col, val := range key {
		if val == nil {
			return false, fmt.Errorf("%w: conflict key column %s has no value", ErrNoDefiniteResult, col)
		}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	found, err := fetch(tx, candidate, key, o)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}

	if err := tx.Create(candidate).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, fmt.Errorf("insert-or-find create failed: %w", err)
		}

		// Lost a race with a concurrent writer of the same key; the row
		// now exists, so fetch it.
		found, ferr := fetch(tx, candidate, key, o)
		if ferr != nil {
			return false, ferr
		}
		if !found {
			return false, fmt.Errorf("%w: duplicate key reported but no row matches %v", ErrNoDefiniteResult, key)
		}
		return false, nil
	}

	return true, nil
}

func fetch[T any](tx *gorm.DB, out *T, key map[string]any, o options) (bool, error) {
	q := tx.Where(key)
	if len(o.returning) > 0 {
		q = q.Select(o.returning)
	}

	res := q.Limit(1).Find(out)
	if res.Error != nil {
		return false, fmt.Errorf("insert-or-find lookup failed: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
