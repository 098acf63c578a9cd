package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/encoding"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

// readTable decodes the input to UTF-8, then reads every row. Rows may
// have ragged lengths; missing trailing cells read back as empty.
func readTable(r io.Reader) ([][]string, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

type colIndex map[string]int

func indexColumns(header []string) colIndex {
	cols := make(colIndex, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// lookup returns -1 for absent columns so cellValue can treat them as
// uniformly empty.
func (c colIndex) lookup(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return -1
}

func (c colIndex) require(names []string) error {
	var missing []string
	for _, name := range names {
		if _, ok := c[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &FormatError{Missing: missing}
	}
	return nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// numberOrZero is the import-side reading of a numeric cell: absent or
// malformed values count as zero.
func numberOrZero(s string) float64 {
	if v := ParseOptionalNumber(s); v != nil {
		return *v
	}
	return 0
}

// ParseProducts reads a product CSV into creation parameters. Rows with
// an empty name are skipped; a header missing required columns rejects
// the whole file.
func ParseProducts(r io.Reader) ([]product.CreateParams, error) {
	rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &FormatError{Missing: productRequired}
	}
	cols := indexColumns(rows[0])
	if err := cols.require(productRequired); err != nil {
		return nil, err
	}

	params := make([]product.CreateParams, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := cellValue(row, cols.lookup(colProductName))
		if name == "" {
			continue
		}

		p := product.CreateParams{
			Name:         name,
			Price:        numberOrZero(cellValue(row, cols.lookup(colProductPrice))),
			MaterialCost: numberOrZero(cellValue(row, cols.lookup(colProductMaterial))),
			OtherCost:    numberOrZero(cellValue(row, cols.lookup(colProductOther))),
			Category:     cellValue(row, cols.lookup(colProductCategory)),
			Image:        cellValue(row, cols.lookup(colProductImage)),
		}
		if v := ParseOptionalNumber(cellValue(row, cols.lookup(colProductStock))); v != nil {
			p.Stock = new(int(*v))
		}
		params = append(params, p)
	}
	return params, nil
}

// ParseCustomers reads a customer CSV into creation parameters.
func ParseCustomers(r io.Reader) ([]customer.CreateParams, error) {
	rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &FormatError{Missing: customerRequired}
	}
	cols := indexColumns(rows[0])
	if err := cols.require(customerRequired); err != nil {
		return nil, err
	}

	params := make([]customer.CreateParams, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := cellValue(row, cols.lookup(colCustomerName))
		if name == "" {
			continue
		}
		params = append(params, customer.CreateParams{
			Name:    name,
			Contact: cellValue(row, cols.lookup(colCustomerContact)),
		})
	}
	return params, nil
}

// ParseOrders reads an order CSV, resolving product and customer names
// against the given records. Rows missing a date, product or customer
// are skipped; a name that resolves to nothing fails the whole parse
// with a ReferenceNotFoundError, since importing around it would leave
// dangling orders.
func ParseOrders(r io.Reader, products []*product.Product, customers []*customer.Customer) ([]order.CreateParams, error) {
	rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &FormatError{Missing: orderRequired}
	}
	cols := indexColumns(rows[0])
	if err := cols.require(orderRequired); err != nil {
		return nil, err
	}

	productIDs := make(map[string]uuid.UUID, len(products))
	for _, p := range products {
		productIDs[p.Name] = p.ID
	}
	customerIDs := make(map[string]uuid.UUID, len(customers))
	for _, c := range customers {
		customerIDs[c.Name] = c.ID
	}

	params := make([]order.CreateParams, 0, len(rows)-1)
	for _, row := range rows[1:] {
		dateStr := cellValue(row, cols.lookup(colOrderDate))
		productName := cellValue(row, cols.lookup(colOrderProduct))
		customerName := cellValue(row, cols.lookup(colOrderCustomer))
		if dateStr == "" || productName == "" || customerName == "" {
			continue
		}
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			continue
		}

		productID, ok := productIDs[productName]
		if !ok {
			return nil, &ReferenceNotFoundError{Kind: RefProduct, Name: productName}
		}
		customerID, ok := customerIDs[customerName]
		if !ok {
			return nil, &ReferenceNotFoundError{Kind: RefCustomer, Name: customerName}
		}

		status := order.Status(cellValue(row, cols.lookup(colOrderStatus)))
		if !status.Valid() {
			status = order.StatusWaiting
		}

		params = append(params, order.CreateParams{
			Date:       date,
			ProductID:  productID,
			CustomerID: customerID,
			Quantity:   int(numberOrZero(cellValue(row, cols.lookup(colOrderQty)))),
			Total:      numberOrZero(cellValue(row, cols.lookup(colOrderTotal))),
			Status:     status,
			Notes:      cellValue(row, cols.lookup(colOrderNotes)),
		})
	}
	return params, nil
}
