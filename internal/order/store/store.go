package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/order"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectOrderColumns = `
	id, customer_id, product_id, quantity, total, date, shipping_date,
	status, notes, created_at, updated_at, deleted_at
`

func scanOrder(s scanner) (*order.Order, error) {
	var o order.Order

	var statusStr string

	var notes sql.NullString

	if err := s.Scan(
		&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.Total,
		&o.Date, &o.ShippingDate, &statusStr, &notes,
		&o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	); err != nil {
		return nil, err
	}

	o.Status = order.Status(statusStr)
	o.Notes = notes.String

	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO orders (customer_id, product_id, quantity, total, date, shipping_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		o.CustomerID,
		o.ProductID,
		o.Quantity,
		o.Total,
		o.Date,
		o.ShippingDate,
		o.Status,
		sql.NullString{String: o.Notes, Valid: o.Notes != ""},
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + `
		FROM orders
		WHERE id = $1 AND deleted_at IS NULL`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + `
		FROM orders
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// UpdateOrder rewrites the editable fields. Date and total are frozen at
// creation and deliberately excluded here.
func (s *Store) UpdateOrder(ctx context.Context, o *order.Order) error {
	query := `
		UPDATE orders
		SET customer_id = $1, product_id = $2, quantity = $3,
		    shipping_date = $4, status = $5, notes = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		o.CustomerID,
		o.ProductID,
		o.Quantity,
		o.ShippingDate,
		o.Status,
		sql.NullString{String: o.Notes, Valid: o.Notes != ""},
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE orders
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	return nil
}
