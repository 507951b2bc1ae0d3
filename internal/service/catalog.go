// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/company-site/internal/store"
	"github.com/olegiv/company-site/internal/util"
)

// CatalogService manages the service catalog.
type CatalogService struct {
	repo TxRunner
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo TxRunner) *CatalogService {
	return &CatalogService{repo: repo}
}

// Create adds a catalog entry.
func (s *CatalogService) Create(ctx context.Context, in ServiceInput) (store.Service, error) {
	var svc store.Service
	err := s.repo.InTx(ctx, func(q *store.Queries) error {
		var err error
		svc, err = q.CreateService(ctx, store.CreateServiceParams{
			Name:        in.Name,
			Description: in.Description,
			Price:       util.NullInt64FromPtr(in.Price),
			CreatedAt:   now(),
		})
		if err != nil {
			return fmt.Errorf("creating service: %w", err)
		}
		return nil
	})
	if err != nil {
		return store.Service{}, err
	}

	slog.Info("service created", "service_id", svc.ID, "name", svc.Name)
	return svc, nil
}

// Update overwrites a catalog entry.
func (s *CatalogService) Update(ctx context.Context, id int64, in ServiceInput) (store.Service, error) {
	var svc store.Service
	err := s.repo.InTx(ctx, func(q *store.Queries) error {
		var err error
		svc, err = q.UpdateService(ctx, store.UpdateServiceParams{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Price:       util.NullInt64FromPtr(in.Price),
		})
		return notFound(err)
	})
	if err != nil {
		return store.Service{}, err
	}
	return svc, nil
}

// Delete removes a catalog entry.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	err := s.repo.InTx(ctx, func(q *store.Queries) error {
		return notFound(q.DeleteService(ctx, id))
	})
	if err != nil {
		return err
	}
	slog.Info("service deleted", "service_id", id)
	return nil
}

// Get returns a catalog entry by id.
func (s *CatalogService) Get(ctx context.Context, id int64) (store.Service, error) {
	svc, err := s.repo.Queries().GetServiceByID(ctx, id)
	return svc, notFound(err)
}

// List returns the full catalog, newest first.
func (s *CatalogService) List(ctx context.Context) ([]store.Service, error) {
	return s.repo.Queries().ListServices(ctx)
}

// Latest returns at most n entries, newest first.
func (s *CatalogService) Latest(ctx context.Context, n int) ([]store.Service, error) {
	return s.repo.Queries().ListRecentServices(ctx, int64(n))
}
