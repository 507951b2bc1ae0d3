// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const postColumns = `id, title, slug, body, published, created_at`

func scanPost(s rowScanner) (Post, error) {
	var p Post
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.Published, &p.CreatedAt)
	return p, err
}

func (q *Queries) listPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CreatePostParams holds the columns of a new post.
type CreatePostParams struct {
	Title     string
	Slug      string
	Body      string
	Published bool
	CreatedAt time.Time
}

// CreatePost inserts a post and returns it.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO posts (title, slug, body, published, created_at) VALUES (?, ?, ?, ?, ?)`,
		arg.Title, arg.Slug, arg.Body, arg.Published, arg.CreatedAt,
	)
	if err != nil {
		return Post{}, err
	}
	id, err := insertedID(res)
	if err != nil {
		return Post{}, err
	}
	return q.GetPostByID(ctx, id)
}

// UpdatePostParams holds the editable columns of a post.
type UpdatePostParams struct {
	ID        int64
	Title     string
	Slug      string
	Body      string
	Published bool
}

// UpdatePost overwrites a post's editable columns and returns the result.
func (q *Queries) UpdatePost(ctx context.Context, arg UpdatePostParams) (Post, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, slug = ?, body = ?, published = ? WHERE id = ?`,
		arg.Title, arg.Slug, arg.Body, arg.Published, arg.ID,
	)
	if err != nil {
		return Post{}, err
	}
	if err := affectedOne(res); err != nil {
		return Post{}, err
	}
	return q.GetPostByID(ctx, arg.ID)
}

// DeletePost removes a post. Returns sql.ErrNoRows if it does not exist.
func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOne(res)
}

// GetPostByID returns a post regardless of its published state.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

// GetPublishedPostBySlug returns a published post with an exact slug match.
func (q *Queries) GetPublishedPostBySlug(ctx context.Context, slug string) (Post, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = ? AND published = ?`, slug, true)
	return scanPost(row)
}

// SlugExists reports whether any post uses slug.
func (q *Queries) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE slug = ?`, slug).Scan(&n)
	return n > 0, err
}

// SlugExistsExcluding reports whether a post other than id uses slug.
func (q *Queries) SlugExistsExcluding(ctx context.Context, slug string, id int64) (bool, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE slug = ? AND id <> ?`, slug, id).Scan(&n)
	return n > 0, err
}

// ListPosts returns every post, newest first.
func (q *Queries) ListPosts(ctx context.Context) ([]Post, error) {
	return q.listPosts(ctx,
		`SELECT `+postColumns+` FROM posts ORDER BY created_at DESC, id DESC`)
}

// ListPublishedPosts returns one window of published posts, newest first.
func (q *Queries) ListPublishedPosts(ctx context.Context, limit, offset int64) ([]Post, error) {
	return q.listPosts(ctx,
		`SELECT `+postColumns+` FROM posts WHERE published = ?
		 ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		true, limit, offset)
}

// ListAllPublishedPosts returns every published post, newest first.
func (q *Queries) ListAllPublishedPosts(ctx context.Context) ([]Post, error) {
	return q.listPosts(ctx,
		`SELECT `+postColumns+` FROM posts WHERE published = ?
		 ORDER BY created_at DESC, id DESC`,
		true)
}

// CountPosts returns the number of posts including drafts.
func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

// CountPublishedPosts returns the number of published posts.
func (q *Queries) CountPublishedPosts(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE published = ?`, true).Scan(&n)
	return n, err
}
