// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"

	"github.com/olegiv/company-site/internal/store"
)

// EventListLimit caps the admin event log view.
const EventListLimit = 100

// EventService reads the persisted event log.
type EventService struct {
	repo TxRunner
}

// NewEventService creates a new EventService.
func NewEventService(repo TxRunner) *EventService {
	return &EventService{repo: repo}
}

// Recent returns the newest events.
func (s *EventService) Recent(ctx context.Context) ([]store.Event, error) {
	return s.repo.Queries().ListEvents(ctx, EventListLimit)
}
