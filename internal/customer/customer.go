package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("customer not found")

// Customer is a directory entry. Contact is free-form: a phone/WA number
// or an email address.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Contact   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
