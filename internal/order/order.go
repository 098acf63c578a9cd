package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

// Status is the lifecycle state of an order. Values are the Indonesian
// labels the clients display and the CSV round trip preserves.
type Status string

const (
	StatusWaiting   Status = "Menunggu"
	StatusShipped   Status = "Dikirim"
	StatusDone      Status = "Selesai"
	StatusCancelled Status = "Dibatalkan"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusShipped, StatusDone, StatusCancelled:
		return true
	}

	return false
}

// Order records a sale of one product to one customer. Total is frozen at
// creation time (unit price x quantity); later price changes on the product
// never rewrite it. Date is the creation date and is immutable.
type Order struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
	Total        float64
	Date         time.Time
	ShippingDate *time.Time
	Status       Status
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
