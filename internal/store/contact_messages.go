// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const contactMessageColumns = `id, name, email, subject, message, created_at`

// CreateContactMessageParams holds the columns of a new contact message.
type CreateContactMessageParams struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// CreateContactMessage appends a message to the inbox.
func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (ContactMessage, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		arg.Name, arg.Email, arg.Subject, arg.Message, arg.CreatedAt,
	)
	if err != nil {
		return ContactMessage{}, err
	}
	id, err := insertedID(res)
	if err != nil {
		return ContactMessage{}, err
	}
	return q.GetContactMessageByID(ctx, id)
}

// GetContactMessageByID returns a single message or sql.ErrNoRows.
func (q *Queries) GetContactMessageByID(ctx context.Context, id int64) (ContactMessage, error) {
	var m ContactMessage
	err := q.db.QueryRowContext(ctx,
		`SELECT `+contactMessageColumns+` FROM contact_messages WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
	return m, err
}

// ListContactMessages returns every message, newest first.
func (q *Queries) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+contactMessageColumns+` FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CountContactMessages returns the number of messages.
func (q *Queries) CountContactMessages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
