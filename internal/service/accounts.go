// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/olegiv/company-site/internal/auth"
	"github.com/olegiv/company-site/internal/store"
)

// AuthService verifies admin credentials.
type AuthService struct {
	repo TxRunner
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo TxRunner) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate returns the user matching c. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials after the same hashing work.
func (s *AuthService) Authenticate(ctx context.Context, c Credentials) (store.User, error) {
	email := NormalizeEmail(c.Email)
	q := s.repo.Queries()

	user, err := q.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		auth.CheckDummy(c.Password)
		return store.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return store.User{}, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := auth.CheckPassword(c.Password, user.PasswordHash)
	if err != nil {
		slog.Error("stored password hash is unreadable", "user_id", user.ID, "error", err)
		return store.User{}, ErrInvalidCredentials
	}
	if !ok {
		return store.User{}, ErrInvalidCredentials
	}

	err = s.repo.InTx(ctx, func(q *store.Queries) error {
		if err := q.UpdateUserLastLogin(ctx, user.ID, now()); err != nil {
			return fmt.Errorf("recording login: %w", err)
		}
		if !auth.NeedsRehash(user.PasswordHash) {
			return nil
		}
		hash, err := auth.HashPassword(c.Password)
		if err != nil {
			return fmt.Errorf("rehashing password: %w", err)
		}
		return q.UpdateUserPassword(ctx, user.ID, hash)
	})
	if err != nil {
		return store.User{}, err
	}

	return user, nil
}

// User returns the user with the given id.
func (s *AuthService) User(ctx context.Context, id int64) (store.User, error) {
	u, err := s.repo.Queries().GetUserByID(ctx, id)
	return u, notFound(err)
}
