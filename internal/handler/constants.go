// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Template names rendered by the handlers.
const (
	templateHome           = "pages/home"
	templateAbout          = "pages/about"
	templateServices       = "pages/services"
	templateBlog           = "pages/blog"
	templatePost           = "pages/post"
	templateContact        = "pages/contact"
	templateNotFound       = "pages/not_found"
	templateLogin          = "auth/login"
	templateAdminDashboard = "admin/dashboard"
	templatePosts          = "admin/posts"
	templatePostForm       = "admin/post_form"
	templateAdminServices  = "admin/services"
	templateServiceForm    = "admin/service_form"
	templateAdminMessages  = "admin/messages"
	templateAdminEvents    = "admin/events"
	templateAdminNotFound  = "admin/not_found"
)

// Templates lists every template the handlers render. Startup checks that
// each one was parsed.
var Templates = []string{
	templateHome, templateAbout, templateServices, templateBlog, templatePost,
	templateContact, templateNotFound, templateLogin,
	templateAdminDashboard, templatePosts, templatePostForm, templateAdminServices,
	templateServiceForm, templateAdminMessages, templateAdminEvents, templateAdminNotFound,
}

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteSuffixEdit is the suffix for edit routes.
	RouteSuffixEdit = "/edit"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"

	// RouteAbout is the about page route.
	RouteAbout = "/about"
	// RouteServices is the public and admin services route.
	RouteServices = "/services"
	// RouteBlog is the blog route.
	RouteBlog = "/blog"
	// RouteContact is the contact form route.
	RouteContact = "/contact"

	// RouteAdmin is the admin mount point.
	RouteAdmin = "/admin"
	// RouteLogin is the login route below /admin.
	RouteLogin = "/login"
	// RouteLogout is the logout route below /admin.
	RouteLogout = "/logout"
	// RoutePosts is the posts admin route.
	RoutePosts = "/posts"
	// RouteMessages is the messages admin route.
	RouteMessages = "/messages"
	// RouteEvents is the event log admin route.
	RouteEvents = "/events"

	// RouteSitemap serves sitemap.xml.
	RouteSitemap = "/sitemap.xml"
	// RouteRobots serves robots.txt.
	RouteRobots = "/robots.txt"
	// RouteHealthLive is the liveness probe.
	RouteHealthLive = "/health/live"
	// RouteHealthReady is the readiness probe.
	RouteHealthReady = "/health/ready"

	// RoutePostsID is the posts ID route pattern.
	RoutePostsID = RoutePosts + RouteParamID
	// RouteServicesID is the services ID route pattern.
	RouteServicesID = RouteServices + RouteParamID
)

const (
	redirectAdmin         = RouteAdmin
	redirectAdminPosts    = redirectAdmin + RoutePosts
	redirectAdminServices = redirectAdmin + RouteServices
	redirectLogin         = redirectAdmin + RouteLogin
	redirectContact       = RouteContact

	redirectAdminPostsIDEdit    = redirectAdminPosts + "/%d" + RouteSuffixEdit
	redirectAdminServicesIDEdit = redirectAdminServices + "/%d" + RouteSuffixEdit
)

// Flash messages shown after admin and public actions.
const (
	msgWelcomeBack        = "Welcome back!"
	msgInvalidCredentials = "Invalid credentials"
	msgAccountLocked      = "Too many failed attempts. Try again in %s."
	msgLoggedOut          = "Logged out."
	msgInvalidForm        = "Invalid form data."
	msgSlugConflict       = "Slug already exists. Choose another."
	msgPostCreated        = "Post created."
	msgPostUpdated        = "Post updated."
	msgPostDeleted        = "Post deleted."
	msgPostNotFound       = "Post not found."
	msgServiceCreated     = "Service created."
	msgServiceUpdated     = "Service updated."
	msgServiceDeleted     = "Service deleted."
	msgServiceNotFound    = "Service not found."
	msgContactThanks      = "Thanks! We'll get back to you soon."
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"
