// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the publishing workflow: validated mutations of
// posts, services and contact messages, publication state, pagination and
// admin authentication.
package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/olegiv/company-site/internal/store"
)

// TxRunner gives services access to the repository. Every mutation runs
// inside InTx; reads may use Queries directly.
type TxRunner interface {
	InTx(ctx context.Context, fn func(q *store.Queries) error) error
	Queries() *store.Queries
}

// now is the clock used for created_at columns.
var now = func() time.Time { return time.Now().UTC() }

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
