// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const serviceColumns = `id, name, description, price, created_at`

func scanService(s rowScanner) (Service, error) {
	var v Service
	err := s.Scan(&v.ID, &v.Name, &v.Description, &v.Price, &v.CreatedAt)
	return v, err
}

func (q *Queries) listServices(ctx context.Context, query string, args ...any) ([]Service, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Service
	for rows.Next() {
		v, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateServiceParams holds the columns of a new service.
type CreateServiceParams struct {
	Name        string
	Description string
	Price       sql.NullInt64
	CreatedAt   time.Time
}

// CreateService inserts a service and returns it.
func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (Service, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO services (name, description, price, created_at) VALUES (?, ?, ?, ?)`,
		arg.Name, arg.Description, arg.Price, arg.CreatedAt,
	)
	if err != nil {
		return Service{}, err
	}
	id, err := insertedID(res)
	if err != nil {
		return Service{}, err
	}
	return q.GetServiceByID(ctx, id)
}

// UpdateServiceParams holds the editable columns of a service.
type UpdateServiceParams struct {
	ID          int64
	Name        string
	Description string
	Price       sql.NullInt64
}

// UpdateService overwrites a service's editable columns and returns the result.
func (q *Queries) UpdateService(ctx context.Context, arg UpdateServiceParams) (Service, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE services SET name = ?, description = ?, price = ? WHERE id = ?`,
		arg.Name, arg.Description, arg.Price, arg.ID,
	)
	if err != nil {
		return Service{}, err
	}
	if err := affectedOne(res); err != nil {
		return Service{}, err
	}
	return q.GetServiceByID(ctx, arg.ID)
}

// DeleteService removes a service. Returns sql.ErrNoRows if it does not exist.
func (q *Queries) DeleteService(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return affectedOne(res)
}

// GetServiceByID returns the service with the given id or sql.ErrNoRows.
func (q *Queries) GetServiceByID(ctx context.Context, id int64) (Service, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)
	return scanService(row)
}

// ListServices returns every service, newest first.
func (q *Queries) ListServices(ctx context.Context) ([]Service, error) {
	return q.listServices(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC, id DESC`)
}

// ListRecentServices returns at most limit services, newest first.
func (q *Queries) ListRecentServices(ctx context.Context, limit int64) ([]Service, error) {
	return q.listServices(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

// CountServices returns the number of services.
func (q *Queries) CountServices(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}
