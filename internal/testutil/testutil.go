// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/olegiv/company-site/internal/auth"
	"github.com/olegiv/company-site/internal/store"
)

// TestDB creates a temporary migrated SQLite database closed at test end.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "site-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db, store.DriverSQLite); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

// TestStore wraps TestDB in a store.Store.
func TestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewStore(TestDB(t))
}

// CreateUser inserts an admin with a real argon2id hash of password.
func CreateUser(t *testing.T, db *sql.DB, email, password string) store.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	u, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		Name:         "Test Admin",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return u
}

// CreatePost inserts a post created at the given time.
func CreatePost(t *testing.T, db *sql.DB, slug string, published bool, createdAt time.Time) store.Post {
	t.Helper()

	p, err := store.New(db).CreatePost(context.Background(), store.CreatePostParams{
		Title:     "Post " + slug,
		Slug:      slug,
		Body:      "Body of " + slug,
		Published: published,
		CreatedAt: createdAt.UTC(),
	})
	if err != nil {
		t.Fatalf("CreatePost(%s): %v", slug, err)
	}
	return p
}
