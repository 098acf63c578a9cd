package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("expense not found")

// Category labels match the fixed set offered by the expense form.
type Category string

const (
	CategoryRawMaterial Category = "Bahan Baku"
	CategoryMarketing   Category = "Pemasaran"
	CategoryOperational Category = "Operasional"
	CategoryShipping    Category = "Pengiriman"
	CategorySoftware    Category = "Software"
	CategoryOther       Category = "Lainnya"
)

// PaymentMethod labels match the fixed set offered by the expense form.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Tunai"
	PaymentTransfer PaymentMethod = "Transfer"
	PaymentGopay    PaymentMethod = "GOPAY"
	PaymentOvo      PaymentMethod = "OVO"
	PaymentDana     PaymentMethod = "DANA"
	PaymentOther    PaymentMethod = "Lainnya"
)

// Expense is a logged business cost, optionally tied to a product.
// Total is always quantity x unit price; the service recomputes it on
// every write so the two can never drift.
type Expense struct {
	ID            uuid.UUID
	Date          time.Time
	Description   string
	ProductID     *uuid.UUID
	Category      Category
	Quantity      int
	UnitPrice     float64
	Total         float64
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}
