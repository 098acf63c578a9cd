package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("product not found")

// Product is a catalog item with its selling price and per-unit costs.
// MaterialCost and OtherCost are multiplied by order quantity when a
// profit/loss line is derived.
type Product struct {
	ID           uuid.UUID
	Name         string
	Price        float64
	MaterialCost float64
	OtherCost    float64
	Category     string
	Stock        *int // nil means stock is not tracked
	Image        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
