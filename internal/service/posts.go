// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/company-site/internal/store"
)

// PostState is the publication state of a post.
type PostState string

// Post states. A draft is never visible on public routes.
const (
	StateDraft     PostState = "draft"
	StatePublished PostState = "published"
)

func stateFromFlag(published bool) PostState {
	if published {
		return StatePublished
	}
	return StateDraft
}

// StateOf returns the state of a stored post.
func StateOf(p store.Post) PostState {
	return stateFromFlag(p.Published)
}

// PostService manages blog posts.
type PostService struct {
	repo TxRunner
}

// NewPostService creates a new PostService.
func NewPostService(repo TxRunner) *PostService {
	return &PostService{repo: repo}
}

// Create stores a new post. A slug already used by any post yields
// ErrConflict and nothing is written.
func (s *PostService) Create(ctx context.Context, in PostInput) (store.Post, error) {
	var post store.Post
	err := s.repo.InTx(ctx, func(q *store.Queries) error {
		taken, err := q.SlugExists(ctx, in.Slug)
		if err != nil {
			return fmt.Errorf("checking slug: %w", err)
		}
		if taken {
			return ErrConflict
		}

		post, err = q.CreatePost(ctx, store.CreatePostParams{
			Title:     in.Title,
			Slug:      in.Slug,
			Body:      in.Body,
			Published: in.Published,
			CreatedAt: now(),
		})
		if store.IsUniqueViolation(err) {
			return ErrConflict
		}
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		return nil
	})
	if err != nil {
		return store.Post{}, err
	}

	slog.Info("post created", "post_id", post.ID, "slug", post.Slug, "state", StateOf(post))
	return post, nil
}

// Update overwrites a post and applies the requested state transition.
// The slug may stay the same; a slug held by another post yields ErrConflict.
func (s *PostService) Update(ctx context.Context, id int64, in PostInput) (store.Post, error) {
	var before, after store.Post
	err := s.repo.InTx(ctx, func(q *store.Queries) error {
		var err error
		before, err = q.GetPostByID(ctx, id)
		if err != nil {
			return notFound(err)
		}

		taken, err := q.SlugExistsExcluding(ctx, in.Slug, id)
		if err != nil {
			return fmt.Errorf("checking slug: %w", err)
		}
		if taken {
			return ErrConflict
		}

		after, err = q.UpdatePost(ctx, store.UpdatePostParams{
			ID:        id,
			Title:     in.Title,
			Slug:      in.Slug,
			Body:      in.Body,
			Published: in.Published,
		})
		if store.IsUniqueViolation(err) {
			return ErrConflict
		}
		if err != nil {
			return fmt.Errorf("updating post: %w", notFound(err))
		}
		return nil
	})
	if err != nil {
		return store.Post{}, err
	}

	if from, to := StateOf(before), StateOf(after); from != to {
		slog.Info("post state changed", "post_id", id, "from", from, "to", to)
	}
	return after, nil
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	err := s.repo.InTx(ctx, func(q *store.Queries) error {
		return notFound(q.DeletePost(ctx, id))
	})
	if err != nil {
		return err
	}
	slog.Info("post deleted", "post_id", id)
	return nil
}

// Get returns any post by id, drafts included.
func (s *PostService) Get(ctx context.Context, id int64) (store.Post, error) {
	p, err := s.repo.Queries().GetPostByID(ctx, id)
	return p, notFound(err)
}

// List returns every post, newest first, drafts included.
func (s *PostService) List(ctx context.Context) ([]store.Post, error) {
	return s.repo.Queries().ListPosts(ctx)
}

// Published returns the published post with an exact slug match.
// Drafts and unknown slugs both yield ErrNotFound.
func (s *PostService) Published(ctx context.Context, slug string) (store.Post, error) {
	p, err := s.repo.Queries().GetPublishedPostBySlug(ctx, slug)
	return p, notFound(err)
}

// PublishedPage returns one page of published posts, newest first.
// number must be 1 or more; see ParsePage.
func (s *PostService) PublishedPage(ctx context.Context, number int) (Page[store.Post], error) {
	if number < 1 {
		number = 1
	}
	q := s.repo.Queries()

	total, err := q.CountPublishedPosts(ctx)
	if err != nil {
		return Page[store.Post]{}, fmt.Errorf("counting posts: %w", err)
	}
	off, ok := offset(number, BlogPageSize)
	if !ok || off >= total {
		return newPage([]store.Post{}, number, BlogPageSize, total), nil
	}
	items, err := q.ListPublishedPosts(ctx, BlogPageSize, off)
	if err != nil {
		return Page[store.Post]{}, fmt.Errorf("listing posts: %w", err)
	}
	return newPage(items, number, BlogPageSize, total), nil
}

// Latest returns at most n published posts, newest first.
func (s *PostService) Latest(ctx context.Context, n int) ([]store.Post, error) {
	return s.repo.Queries().ListPublishedPosts(ctx, int64(n), 0)
}

// AllPublished returns every published post, newest first.
func (s *PostService) AllPublished(ctx context.Context) ([]store.Post, error) {
	return s.repo.Queries().ListAllPublishedPosts(ctx)
}
