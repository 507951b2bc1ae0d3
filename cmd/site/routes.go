// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/company-site/internal/config"
	"github.com/olegiv/company-site/internal/handler"
	"github.com/olegiv/company-site/internal/middleware"
	"github.com/olegiv/company-site/internal/render"
	"github.com/olegiv/company-site/internal/service"
	"github.com/olegiv/company-site/internal/session"
	"github.com/olegiv/company-site/internal/store"
	"github.com/olegiv/company-site/web"
)

// Contact form throttle: one message per 10 seconds per IP after a burst of 3.
const (
	contactRateLimit = 0.1
	contactBurst     = 3
)

// application wires configuration, storage and HTTP handlers together.
type application struct {
	cfg             *config.Config
	db              *sql.DB
	sessionManager  *scs.SessionManager
	renderer        *render.Renderer
	loginProtection *middleware.LoginProtection
	contactLimiter  *middleware.IPRateLimiter

	posts     *service.PostService
	catalog   *service.CatalogService
	inbox     *service.InboxService
	dashboard *service.DashboardService
	events    *service.EventService
	auth      *service.AuthService
}

func newApplication(cfg *config.Config, db *sql.DB, driver store.Driver) (*application, error) {
	sm := session.New(db, driver, cfg.IsDevelopment())

	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates,
		SessionManager: sm,
		SiteName:       cfg.SiteName,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}
	for _, name := range handler.Templates {
		if !renderer.Has(name) {
			return nil, fmt.Errorf("template %s is missing", name)
		}
	}

	repo := store.NewStore(db)

	return &application{
		cfg:             cfg,
		db:              db,
		sessionManager:  sm,
		renderer:        renderer,
		loginProtection: middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig()),
		contactLimiter:  middleware.NewIPRateLimiter(contactRateLimit, contactBurst),
		posts:           service.NewPostService(repo),
		catalog:         service.NewCatalogService(repo),
		inbox:           service.NewInboxService(repo),
		dashboard:       service.NewDashboardService(repo),
		events:          service.NewEventService(repo),
		auth:            service.NewAuthService(repo),
	}, nil
}

func (app *application) close() {
	app.loginProtection.Close()
}

// crudHandlers defines the standard admin editor handler methods.
type crudHandlers struct {
	List     http.HandlerFunc
	NewForm  http.HandlerFunc
	Create   http.HandlerFunc
	EditForm http.HandlerFunc
	Update   http.HandlerFunc
	Delete   http.HandlerFunc
}

// registerCRUD registers the editor routes for a resource.
// Routes: GET /, GET|POST /new, GET|POST /{id}/edit, POST /{id}/delete
func registerCRUD(r chi.Router, base, baseID string, h crudHandlers) {
	r.Get(base, h.List)
	r.Get(base+handler.RouteSuffixNew, h.NewForm)
	r.Post(base+handler.RouteSuffixNew, h.Create)
	r.Get(baseID+handler.RouteSuffixEdit, h.EditForm)
	r.Post(baseID+handler.RouteSuffixEdit, h.Update)
	r.Post(baseID+handler.RouteSuffixDelete, h.Delete)
}

func (app *application) routes() http.Handler {
	frontendHandler := handler.NewFrontendHandler(app.renderer, app.sessionManager, app.posts, app.catalog, app.inbox)
	authHandler := handler.NewAuthHandler(app.auth, app.renderer, app.sessionManager, app.loginProtection)
	adminHandler := handler.NewAdminHandler(app.renderer, app.dashboard, app.inbox, app.events)
	postsHandler := handler.NewPostsHandler(app.renderer, app.posts)
	servicesHandler := handler.NewServicesHandler(app.renderer, app.catalog)
	healthHandler := handler.NewHealthHandler(app.db)
	seoHandler := handler.NewSEOHandler(app.posts, app.cfg.SiteURL, !app.cfg.IsDevelopment())

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(app.cfg.IsDevelopment())))

	// Probes and crawler files skip sessions and CSRF.
	r.Get(handler.RouteHealthLive, healthHandler.Liveness)
	r.Get(handler.RouteHealthReady, healthHandler.Readiness)
	r.Get(handler.RouteSitemap, seoHandler.Sitemap)
	r.Get(handler.RouteRobots, seoHandler.Robots)

	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Group(func(r chi.Router) {
		r.Use(app.sessionManager.LoadAndSave)
		r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(app.cfg.SecretKey), app.cfg.IsDevelopment())))

		r.Get(handler.RouteRoot, frontendHandler.Home)
		r.Get(handler.RouteAbout, frontendHandler.About)
		r.Get(handler.RouteServices, frontendHandler.Services)
		r.Get(handler.RouteBlog, frontendHandler.Blog)
		r.Get(handler.RouteBlog+handler.RouteParamSlug, frontendHandler.Post)
		r.Get(handler.RouteContact, frontendHandler.ContactForm)
		r.With(app.contactLimiter.Middleware()).Post(handler.RouteContact, frontendHandler.Contact)

		r.Route(handler.RouteAdmin, func(r chi.Router) {
			r.Get(handler.RouteLogin, authHandler.LoginForm)
			r.With(app.loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
			r.Get(handler.RouteLogout, authHandler.Logout)
			r.Post(handler.RouteLogout, authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(app.sessionManager))
				r.Use(middleware.LoadUser(app.sessionManager, app.db))

				r.Get(handler.RouteRoot, adminHandler.Dashboard)

				registerCRUD(r, handler.RoutePosts, handler.RoutePostsID, crudHandlers{
					List: postsHandler.List, NewForm: postsHandler.NewForm, Create: postsHandler.Create,
					EditForm: postsHandler.EditForm, Update: postsHandler.Update, Delete: postsHandler.Delete,
				})
				registerCRUD(r, handler.RouteServices, handler.RouteServicesID, crudHandlers{
					List: servicesHandler.List, NewForm: servicesHandler.NewForm, Create: servicesHandler.Create,
					EditForm: servicesHandler.EditForm, Update: servicesHandler.Update, Delete: servicesHandler.Delete,
				})

				r.Get(handler.RouteMessages, adminHandler.Messages)
				r.Get(handler.RouteEvents, adminHandler.Events)
			})
		})

		r.NotFound(frontendHandler.NotFound)
	})

	slog.Info("routes registered", "env", app.cfg.Env)
	return r
}
