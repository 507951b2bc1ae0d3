// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the admin session manager.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/company-site/internal/store"
)

// New creates a session manager that keeps sessions in the application
// database, using the scs store matching driver.
func New(db *sql.DB, driver store.Driver, isDev bool) *scs.SessionManager {
	sm := scs.New()

	switch driver {
	case store.DriverMySQL:
		sm.Store = mysqlstore.New(db)
	default:
		sm.Store = sqlite3store.New(db)
	}

	sm.Lifetime = 24 * time.Hour
	sm.IdleTimeout = 2 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = !isDev

	// The __Host- prefix requires Secure, so only use it in production.
	if !isDev {
		sm.Cookie.Name = "__Host-session"
	}

	return sm
}
