package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/expense"
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

const selectExpenseColumns = `
	id, date, description, product_id, category, quantity, unit_price, total,
	payment_method, created_at, updated_at, deleted_at
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var categoryStr, paymentStr string

	if err := s.Scan(
		&e.ID, &e.Date, &e.Description, &e.ProductID,
		&categoryStr, &e.Quantity, &e.UnitPrice, &e.Total, &paymentStr,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	); err != nil {
		return nil, err
	}

	e.Category = expense.Category(categoryStr)
	e.PaymentMethod = expense.PaymentMethod(paymentStr)

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (date, description, product_id, category, quantity, unit_price, total, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Date,
		e.Description,
		e.ProductID,
		e.Category,
		e.Quantity,
		e.UnitPrice,
		e.Total,
		e.PaymentMethod,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE deleted_at IS NULL
		ORDER BY date ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET date = $1, description = $2, product_id = $3, category = $4,
		    quantity = $5, unit_price = $6, total = $7, payment_method = $8,
		    updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		e.Date,
		e.Description,
		e.ProductID,
		e.Category,
		e.Quantity,
		e.UnitPrice,
		e.Total,
		e.PaymentMethod,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE expenses
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}
