// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/company-site/internal/auth"
)

// Default admin credentials
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Admin"
)

var seedServices = []CreateServiceParams{
	{
		Name:        "Web Development",
		Description: "Custom websites and web apps built with modern stacks.",
		Price:       sql.NullInt64{Int64: 75000, Valid: true},
	},
	{
		Name:        "DevOps Setup",
		Description: "CI/CD pipelines, containerization, and cloud deployments.",
		Price:       sql.NullInt64{Int64: 95000, Valid: true},
	},
	{
		Name:        "Consulting",
		Description: "Architecture reviews, performance audits, and tech strategy.",
		Price:       sql.NullInt64{Int64: 50000, Valid: true},
	},
}

var seedPosts = []CreatePostParams{
	{
		Title:     "Welcome to Our Company",
		Slug:      "welcome-to-our-company",
		Body:      "We're excited to launch our new website. Stay tuned for updates!",
		Published: true,
	},
	{
		Title:     "How We Work",
		Slug:      "how-we-work",
		Body:      "We follow agile practices, focus on quality, and deliver on time.",
		Published: true,
	},
}

// Seed creates the default admin and sample content. Each part is skipped
// when its table already has rows.
func Seed(ctx context.Context, db *sql.DB) error {
	return NewStore(db).InTx(ctx, func(q *Queries) error {
		if err := seedAdmin(ctx, q); err != nil {
			return err
		}
		if err := seedCatalog(ctx, q); err != nil {
			return err
		}
		return seedBlog(ctx, q)
	})
}

func seedAdmin(ctx context.Context, q *Queries) error {
	_, err := q.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        DefaultAdminEmail,
		Name:         DefaultAdminName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user", "id", user.ID, "email", user.Email)
	return nil
}

func seedCatalog(ctx context.Context, q *Queries) error {
	n, err := q.CountServices(ctx)
	if err != nil {
		return fmt.Errorf("counting services: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, s := range seedServices {
		s.CreatedAt = time.Now().UTC()
		if _, err := q.CreateService(ctx, s); err != nil {
			return fmt.Errorf("creating service %q: %w", s.Name, err)
		}
	}
	slog.Info("seeded services", "count", len(seedServices))
	return nil
}

func seedBlog(ctx context.Context, q *Queries) error {
	n, err := q.CountPosts(ctx)
	if err != nil {
		return fmt.Errorf("counting posts: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range seedPosts {
		p.CreatedAt = time.Now().UTC()
		if _, err := q.CreatePost(ctx, p); err != nil {
			return fmt.Errorf("creating post %q: %w", p.Slug, err)
		}
	}
	slog.Info("seeded posts", "count", len(seedPosts))
	return nil
}
