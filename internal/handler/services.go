// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/company-site/internal/middleware"
	"github.com/olegiv/company-site/internal/render"
	"github.com/olegiv/company-site/internal/service"
)

// ServicesHandler handles the service catalog admin pages.
type ServicesHandler struct {
	renderer *render.Renderer
	catalog  *service.CatalogService
}

// NewServicesHandler creates a new ServicesHandler.
func NewServicesHandler(renderer *render.Renderer, catalog *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{renderer: renderer, catalog: catalog}
}

// List shows every service, newest first.
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list services", "error", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateAdminServices, render.TemplateData{
		Title:         "Services",
		Data:          services,
		Authenticated: true,
	})
}

// NewForm shows an empty service editor.
func (h *ServicesHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "New service", redirectAdminServices+RouteSuffixNew, service.ServiceForm{}, nil)
}

// Create validates and stores a new service.
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	action := redirectAdminServices + RouteSuffixNew
	if !parseFormOrRedirect(w, r, h.renderer, action) {
		return
	}

	form := serviceFormFromRequest(r)
	in, err := form.Validate()
	if err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "New service", action, form, service.FieldErrors(err))
		return
	}

	_, err = h.catalog.Create(r.Context(), in)
	if err != nil {
		logAndInternalError(w, "failed to create service", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminServices, msgServiceCreated)
}

// EditForm shows the editor for an existing service.
func (h *ServicesHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		adminNotFound(w, r, h.renderer, msgServiceNotFound, redirectAdminServices)
		return
	}

	svc, err := h.catalog.Get(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		adminNotFound(w, r, h.renderer, msgServiceNotFound, redirectAdminServices)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to get service", "service_id", id, "error", err)
		return
	}

	h.renderForm(w, r, http.StatusOK, "Edit service", fmt.Sprintf(redirectAdminServicesIDEdit, id), serviceFormFromService(svc), nil)
}

// Update validates and saves changes to a service.
func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		adminNotFound(w, r, h.renderer, msgServiceNotFound, redirectAdminServices)
		return
	}

	action := fmt.Sprintf(redirectAdminServicesIDEdit, id)
	if !parseFormOrRedirect(w, r, h.renderer, action) {
		return
	}

	form := serviceFormFromRequest(r)
	in, err := form.Validate()
	if err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit service", action, form, service.FieldErrors(err))
		return
	}

	_, err = h.catalog.Update(r.Context(), id, in)
	if errors.Is(err, service.ErrNotFound) {
		adminNotFound(w, r, h.renderer, msgServiceNotFound, redirectAdminServices)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to update service", "service_id", id, "error", err)
		return
	}

	slog.Info("service updated", "service_id", id, "user_id", middleware.GetUserID(r))
	flashSuccess(w, r, h.renderer, redirectAdminServices, msgServiceUpdated)
}

// Delete removes a service.
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		adminNotFound(w, r, h.renderer, msgServiceNotFound, redirectAdminServices)
		return
	}

	err := h.catalog.Delete(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		adminNotFound(w, r, h.renderer, msgServiceNotFound, redirectAdminServices)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to delete service", "service_id", id, "error", err)
		return
	}

	flashInfo(w, r, h.renderer, redirectAdminServices, msgServiceDeleted)
}

func (h *ServicesHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title, action string, form service.ServiceForm, errs map[string]string) {
	renderPage(w, r, h.renderer, status, templateServiceForm, render.TemplateData{
		Title:         title,
		Data:          formMeta{Action: action},
		Form:          form,
		Errors:        errs,
		Authenticated: true,
	})
}
