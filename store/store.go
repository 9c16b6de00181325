// Package store holds the entity services. Each store is a thin
// pass-through to the relational backend: every method is a single
// parameterized statement (or one joined read) against the shared *gorm.DB,
// which abstracts over the PostgreSQL pool and the single SQLite handle.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound reports a lookup, update, or delete that matched no row.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
