// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/company-site/internal/render"
	"github.com/olegiv/company-site/internal/service"
)

// AdminHandler serves the dashboard and the read-only admin views.
type AdminHandler struct {
	renderer  *render.Renderer
	dashboard *service.DashboardService
	inbox     *service.InboxService
	events    *service.EventService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(renderer *render.Renderer, dashboard *service.DashboardService, inbox *service.InboxService, events *service.EventService) *AdminHandler {
	return &AdminHandler{
		renderer:  renderer,
		dashboard: dashboard,
		inbox:     inbox,
		events:    events,
	}
}

// Dashboard shows post, service and message counts.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load dashboard stats", "error", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateAdminDashboard, render.TemplateData{
		Title:         "Dashboard",
		Data:          stats,
		Authenticated: true,
	})
}

// Messages lists contact submissions, newest first.
func (h *AdminHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.inbox.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list messages", "error", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateAdminMessages, render.TemplateData{
		Title:         "Messages",
		Data:          messages,
		Authenticated: true,
	})
}

// Events lists the most recent warnings and errors.
func (h *AdminHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.Recent(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateAdminEvents, render.TemplateData{
		Title:         "Event log",
		Data:          events,
		Authenticated: true,
	})
}
