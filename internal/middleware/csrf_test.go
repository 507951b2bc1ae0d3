// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testCSRFKey = []byte("12345678901234567890123456789012")

func TestDefaultCSRFConfig(t *testing.T) {
	dev := DefaultCSRFConfig(testCSRFKey, true)
	if len(dev.TrustedOrigins) != 2 {
		t.Fatalf("dev TrustedOrigins = %v", dev.TrustedOrigins)
	}
	for _, origin := range dev.TrustedOrigins {
		if strings.HasPrefix(origin, "http") {
			t.Errorf("TrustedOrigin should be host:port, not a URL: %s", origin)
		}
	}

	prod := DefaultCSRFConfig(testCSRFKey, false)
	if len(prod.TrustedOrigins) != 0 {
		t.Errorf("production TrustedOrigins = %v, want none", prod.TrustedOrigins)
	}
}

func TestCSRFRejectsCrossSitePost(t *testing.T) {
	h := CSRF(DefaultCSRFConfig(testCSRFKey, false))(okHandler())

	req := httptest.NewRequest(http.MethodPost, "http://example.com/contact", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestCSRFAllowsSameOriginPost(t *testing.T) {
	h := CSRF(DefaultCSRFConfig(testCSRFKey, false))(okHandler())

	req := httptest.NewRequest(http.MethodPost, "http://example.com/contact", nil)
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestCSRFAllowsSafeMethods(t *testing.T) {
	h := CSRF(DefaultCSRFConfig(testCSRFKey, false))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "http://example.com/blog", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
