package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectProductColumns = `
	id, name, price, material_cost, other_cost, category, stock, image,
	created_at, updated_at, deleted_at
`

func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	var category, image sql.NullString

	var stock sql.NullInt64

	if err := s.Scan(
		&p.ID, &p.Name, &p.Price, &p.MaterialCost, &p.OtherCost,
		&category, &stock, &image,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.Category = category.String
	p.Image = image.String

	if stock.Valid {
		v := int(stock.Int64)
		p.Stock = &v
	}

	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (name, price, material_cost, other_cost, category, stock, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	var stock sql.NullInt64
	if p.Stock != nil {
		stock = sql.NullInt64{Int64: int64(*p.Stock), Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query,
		p.Name,
		p.Price,
		p.MaterialCost,
		p.OtherCost,
		nullString(p.Category),
		stock,
		nullString(p.Image),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $1, price = $2, material_cost = $3, other_cost = $4,
		    category = $5, stock = $6, image = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`

	var stock sql.NullInt64
	if p.Stock != nil {
		stock = sql.NullInt64{Int64: int64(*p.Stock), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Price,
		p.MaterialCost,
		p.OtherCost,
		nullString(p.Category),
		stock,
		nullString(p.Image),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
