// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
)

// DashboardStats holds admin overview counts. Posts includes drafts.
type DashboardStats struct {
	Posts    int64
	Services int64
	Messages int64
}

// DashboardService computes the admin overview.
type DashboardService struct {
	repo TxRunner
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo TxRunner) *DashboardService {
	return &DashboardService{repo: repo}
}

// Stats counts posts, services and messages.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	q := s.repo.Queries()
	var stats DashboardStats

	counters := []struct {
		name string
		dst  *int64
		fn   func(context.Context) (int64, error)
	}{
		{"posts", &stats.Posts, q.CountPosts},
		{"services", &stats.Services, q.CountServices},
		{"messages", &stats.Messages, q.CountContactMessages},
	}
	for _, c := range counters {
		n, err := c.fn(ctx)
		if err != nil {
			return DashboardStats{}, fmt.Errorf("counting %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return stats, nil
}
