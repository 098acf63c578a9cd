package csvio

import (
	"fmt"
	"strings"
)

// FormatError reports a CSV whose header row is missing required columns.
// The import as a whole is rejected; individual bad data rows are not
// (those are skipped, see the parse functions).
type FormatError struct {
	Missing []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// RefKind says which lookup failed during order import.
type RefKind string

const (
	RefProduct  RefKind = "product"
	RefCustomer RefKind = "customer"
)

// ReferenceNotFoundError reports an order row naming a product or customer
// that does not exist. It aborts the whole parse: a partial order import
// with dangling references is worse than no import.
type ReferenceNotFoundError struct {
	Kind RefKind
	Name string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
