// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Store pairs a connection pool with its queries and runs units of work.
type Store struct {
	db      *sql.DB
	queries *Queries
}

// NewStore wraps db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, queries: New(db)}
}

// DB returns the underlying pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Queries returns queries that run outside any transaction.
func (s *Store) Queries() *Queries {
	return s.queries
}

// InTx runs fn inside a transaction. The transaction commits only if fn
// returns nil; every other exit, including a panic, rolls it back.
func (s *Store) InTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(s.queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
