// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/company-site/internal/render"
	"github.com/olegiv/company-site/internal/store"
	"github.com/olegiv/company-site/internal/testutil"
	"github.com/olegiv/company-site/web"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{30 * time.Second, "30 seconds"},
		{1 * time.Minute, "1 minute"},
		{5 * time.Minute, "5 minutes"},
		{90 * time.Second, "1 minute"},
		{1 * time.Hour, "1 hour"},
		{90 * time.Minute, "1 hour"},
		{24 * time.Hour, "24 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.duration); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func requestWithID(method, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	r := httptest.NewRequest(method, "/", nil)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := parseIDParam(requestWithID(http.MethodGet, tt.raw))
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("parseIDParam(%q) = (%d, %v), want (%d, %v)", tt.raw, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set(HeaderContentType, "application/x-www-form-urlencoded")
	return r
}

func TestPostFormFromRequest(t *testing.T) {
	f := postFormFromRequest(formRequest(url.Values{
		"title":     {" Title "},
		"slug":      {"My-Slug"},
		"body":      {"text"},
		"published": {"y"},
	}))

	if f.Title != " Title " {
		t.Errorf("Title = %q, trimming happens in validation", f.Title)
	}
	if f.Slug != "My-Slug" {
		t.Errorf("Slug = %q", f.Slug)
	}
	if !f.Published {
		t.Error("Published = false, want true")
	}

	if f = postFormFromRequest(formRequest(url.Values{"title": {"x"}})); f.Published {
		t.Error("Published = true without the checkbox")
	}
}

func TestCheckboxChecked(t *testing.T) {
	for _, v := range []string{"y", "on", "true", "1"} {
		if !checkboxChecked(formRequest(url.Values{"c": {v}}), "c") {
			t.Errorf("checkboxChecked(%q) = false", v)
		}
	}
	for _, v := range []string{"", "n", "off", "yes please"} {
		if checkboxChecked(formRequest(url.Values{"c": {v}}), "c") {
			t.Errorf("checkboxChecked(%q) = true", v)
		}
	}
}

func TestServiceFormFromService(t *testing.T) {
	f := serviceFormFromService(store.Service{Name: "A", Description: "B", Price: sql.NullInt64{Int64: 1200, Valid: true}})
	if f.Price != "1200" {
		t.Errorf("Price = %q, want 1200", f.Price)
	}

	if f = serviceFormFromService(store.Service{Name: "A"}); f.Price != "" {
		t.Errorf("Price = %q, want empty for price on request", f.Price)
	}
}

func TestTemplatesAreParsed(t *testing.T) {
	renderer, err := render.New(render.Config{TemplatesFS: web.Templates})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	for _, name := range Templates {
		if !renderer.Has(name) {
			t.Errorf("template %s was not parsed", name)
		}
	}
}

func TestAdminNotFoundForMissingIDs(t *testing.T) {
	renderer, err := render.New(render.Config{TemplatesFS: web.Templates, SiteName: "Acme"})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	posts := NewPostsHandler(renderer, nil)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
	}{
		{"edit form", posts.EditForm, http.MethodGet},
		{"update", posts.Update, http.MethodPost},
		{"delete", posts.Delete, http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, requestWithID(tt.method, "not-a-number"))

			if w.Code != http.StatusNotFound {
				t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
			}
			if body := w.Body.String(); !strings.Contains(body, msgPostNotFound) || !strings.Contains(body, redirectAdminPosts) {
				t.Errorf("body should carry the message and a link back to the list:\n%s", body)
			}
		})
	}
}

func TestHealthReadiness(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewHealthHandler(db)

	w := httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest(http.MethodGet, RouteHealthReady, nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"ready"}` {
		t.Errorf("body = %s", got)
	}

	_ = db.Close()

	w = httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest(http.MethodGet, RouteHealthReady, nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"not_ready"}` {
		t.Errorf("body = %s", got)
	}
}

func TestHealthLiveness(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthHandler(nil).Liveness(w, httptest.NewRequest(http.MethodGet, RouteHealthLive, nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get(HeaderContentType); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q", got)
	}
}
