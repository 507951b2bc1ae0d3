// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/company-site/internal/store"
)

// InboxService accepts and lists contact messages. Messages are immutable.
type InboxService struct {
	repo TxRunner
}

// NewInboxService creates a new InboxService.
func NewInboxService(repo TxRunner) *InboxService {
	return &InboxService{repo: repo}
}

// Submit stores a contact message. Identical submissions are stored
// separately; there is no deduplication.
func (s *InboxService) Submit(ctx context.Context, in ContactInput) (store.ContactMessage, error) {
	var msg store.ContactMessage
	err := s.repo.InTx(ctx, func(q *store.Queries) error {
		var err error
		msg, err = q.CreateContactMessage(ctx, store.CreateContactMessageParams{
			Name:      in.Name,
			Email:     in.Email,
			Subject:   in.Subject,
			Message:   in.Message,
			CreatedAt: now(),
		})
		if err != nil {
			return fmt.Errorf("creating contact message: %w", err)
		}
		return nil
	})
	if err != nil {
		return store.ContactMessage{}, err
	}

	slog.Info("contact message received", "message_id", msg.ID)
	return msg, nil
}

// List returns every message, newest first.
func (s *InboxService) List(ctx context.Context) ([]store.ContactMessage, error) {
	return s.repo.Queries().ListContactMessages(ctx)
}
