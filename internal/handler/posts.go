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

// PostsHandler handles the blog post admin pages.
type PostsHandler struct {
	renderer *render.Renderer
	posts    *service.PostService
}

// NewPostsHandler creates a new PostsHandler.
func NewPostsHandler(renderer *render.Renderer, posts *service.PostService) *PostsHandler {
	return &PostsHandler{renderer: renderer, posts: posts}
}

// List shows every post, drafts included, newest first.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templatePosts, render.TemplateData{
		Title:         "Posts",
		Data:          posts,
		Authenticated: true,
	})
}

// NewForm shows an empty post editor.
func (h *PostsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "New post", redirectAdminPosts+RouteSuffixNew, service.PostForm{}, nil, "")
}

// Create validates and stores a new post.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	action := redirectAdminPosts + RouteSuffixNew
	if !parseFormOrRedirect(w, r, h.renderer, action) {
		return
	}

	form := postFormFromRequest(r)
	in, err := form.Validate()
	if err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "New post", action, form, service.FieldErrors(err), "")
		return
	}

	_, err = h.posts.Create(r.Context(), in)
	if errors.Is(err, service.ErrConflict) {
		h.renderForm(w, r, http.StatusConflict, "New post", action, form, nil, msgSlugConflict)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to create post", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminPosts, msgPostCreated)
}

// EditForm shows the editor for an existing post.
func (h *PostsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		adminNotFound(w, r, h.renderer, msgPostNotFound, redirectAdminPosts)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		adminNotFound(w, r, h.renderer, msgPostNotFound, redirectAdminPosts)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to get post", "post_id", id, "error", err)
		return
	}

	h.renderForm(w, r, http.StatusOK, "Edit post", fmt.Sprintf(redirectAdminPostsIDEdit, id), postFormFromPost(post), nil, "")
}

// Update validates and saves changes to a post.
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		adminNotFound(w, r, h.renderer, msgPostNotFound, redirectAdminPosts)
		return
	}

	action := fmt.Sprintf(redirectAdminPostsIDEdit, id)
	if !parseFormOrRedirect(w, r, h.renderer, action) {
		return
	}

	form := postFormFromRequest(r)
	in, err := form.Validate()
	if err != nil {
		h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit post", action, form, service.FieldErrors(err), "")
		return
	}

	_, err = h.posts.Update(r.Context(), id, in)
	switch {
	case errors.Is(err, service.ErrNotFound):
		adminNotFound(w, r, h.renderer, msgPostNotFound, redirectAdminPosts)
		return
	case errors.Is(err, service.ErrConflict):
		h.renderForm(w, r, http.StatusConflict, "Edit post", action, form, nil, msgSlugConflict)
		return
	case err != nil:
		logAndInternalError(w, "failed to update post", "post_id", id, "error", err)
		return
	}

	slog.Info("post updated", "post_id", id, "user_id", middleware.GetUserID(r))
	flashSuccess(w, r, h.renderer, redirectAdminPosts, msgPostUpdated)
}

// Delete removes a post.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		adminNotFound(w, r, h.renderer, msgPostNotFound, redirectAdminPosts)
		return
	}

	err := h.posts.Delete(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		adminNotFound(w, r, h.renderer, msgPostNotFound, redirectAdminPosts)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to delete post", "post_id", id, "error", err)
		return
	}

	flashInfo(w, r, h.renderer, redirectAdminPosts, msgPostDeleted)
}

// renderForm shows the post editor. A non-empty warning is shown as a
// warning flash on this response.
func (h *PostsHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title, action string, form service.PostForm, errs map[string]string, warning string) {
	data := render.TemplateData{
		Title:         title,
		Data:          formMeta{Action: action},
		Form:          form,
		Errors:        errs,
		Authenticated: true,
	}
	if warning != "" {
		data.Flash = warning
		data.FlashType = render.FlashWarning
	}
	renderPage(w, r, h.renderer, status, templatePostForm, data)
}
