// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/company-site/internal/middleware"
	"github.com/olegiv/company-site/internal/render"
	"github.com/olegiv/company-site/internal/service"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	auth            *service.AuthService
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler. lp may be nil.
func NewAuthHandler(auth *service.AuthService, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		auth:            auth,
		renderer:        renderer,
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Authenticated admins go to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if isAuthenticated(h.sessionManager, r) {
		http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, http.StatusOK, service.LoginForm{}, nil)
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	form := service.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	creds, err := form.Validate()
	if err != nil {
		h.renderLogin(w, r, http.StatusUnprocessableEntity, form, service.FieldErrors(err))
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(creds.Email); locked {
			slog.Warn("login attempt on locked account", "email", creds.Email)
			flashError(w, r, h.renderer, redirectLogin, fmt.Sprintf(msgAccountLocked, formatDuration(remaining)))
			return
		}
	}

	user, err := h.auth.Authenticate(r.Context(), creds)
	if errors.Is(err, service.ErrInvalidCredentials) {
		slog.Warn("login failed", "email", creds.Email)
		if h.loginProtection != nil {
			if locked, d := h.loginProtection.RecordFailedAttempt(creds.Email); locked {
				flashError(w, r, h.renderer, redirectLogin, fmt.Sprintf(msgAccountLocked, formatDuration(d)))
				return
			}
		}
		flashError(w, r, h.renderer, redirectLogin, msgInvalidCredentials)
		return
	}
	if err != nil {
		logAndInternalError(w, "login failed", "error", err)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(creds.Email)
	}

	// New token on privilege change prevents session fixation.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	slog.Info("admin logged in", "user_id", user.ID)
	flashSuccess(w, r, h.renderer, redirectAdmin, msgWelcomeBack)
}

// Logout clears the session unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("failed to destroy session", "error", err)
	}
	if userID != 0 {
		slog.Info("admin logged out", "user_id", userID)
	}

	flashInfo(w, r, h.renderer, redirectLogin, msgLoggedOut)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, form service.LoginForm, errs map[string]string) {
	form.Password = ""
	renderPage(w, r, h.renderer, status, templateLogin, render.TemplateData{
		Title:  "Admin login",
		Form:   form,
		Errors: errs,
	})
}

// formatDuration renders a lockout duration for humans.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
