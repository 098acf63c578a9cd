package csvio

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
	"github.com/managher/managher/internal/profitloss"
)

// cell is one value in an exported row. Text cells are always quoted,
// numeric cells are written bare.
type cell struct {
	value   string
	numeric bool
}

func text(s string) cell {
	return cell{value: s}
}

func number(f float64) cell {
	return cell{value: formatNumber(f), numeric: true}
}

func count(n int) cell {
	return cell{value: strconv.Itoa(n), numeric: true}
}

// optionalCount renders a nil int as an empty numeric cell so the
// distinction between "zero" and "not tracked" survives a round trip.
func optionalCount(n *int) cell {
	if n == nil {
		return cell{numeric: true}
	}
	return count(*n)
}

// encode writes the header line and rows as a single CSV document with
// a BOM prefix and \n line endings. Text cells get their inner quotes
// doubled; numeric cells are emitted verbatim.
func encode(headers []string, rows [][]cell) string {
	var sb strings.Builder
	sb.WriteString(bom)
	sb.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		sb.WriteByte('\n')
		for i, c := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			if c.numeric {
				sb.WriteString(c.value)
				continue
			}
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(c.value, `"`, `""`))
			sb.WriteByte('"')
		}
	}
	return sb.String()
}

// ExportProducts renders the catalog in the import-compatible column set.
func ExportProducts(products []*product.Product) string {
	rows := make([][]cell, 0, len(products))
	for _, p := range products {
		rows = append(rows, []cell{
			text(p.Name),
			number(p.Price),
			number(p.MaterialCost),
			number(p.OtherCost),
			text(p.Category),
			optionalCount(p.Stock),
			text(p.Image),
		})
	}
	return encode(productColumns, rows)
}

// ExportCustomers renders the customer directory.
func ExportCustomers(customers []*customer.Customer) string {
	rows := make([][]cell, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []cell{text(c.Name), text(c.Contact)})
	}
	return encode(customerColumns, rows)
}

// ExportOrders renders orders with product and customer references
// resolved back to names, which is what the order importer expects.
// References to records deleted since the order was placed render as
// a placeholder dash.
func ExportOrders(orders []*order.Order, products []*product.Product, customers []*customer.Customer) string {
	productNames := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	customerNames := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}

	rows := make([][]cell, 0, len(orders))
	for _, o := range orders {
		productName, ok := productNames[o.ProductID]
		if !ok {
			productName = placeholder
		}
		customerName, ok := customerNames[o.CustomerID]
		if !ok {
			customerName = placeholder
		}
		rows = append(rows, []cell{
			text(o.Date.Format(time.DateOnly)),
			text(productName),
			text(customerName),
			count(o.Quantity),
			number(o.Total),
			text(string(o.Status)),
			text(o.Notes),
		})
	}
	return encode(orderColumns, rows)
}

// ExportProfitLoss renders a computed profit report, one line per
// completed order.
func ExportProfitLoss(lines []profitloss.Line) string {
	rows := make([][]cell, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []cell{
			text(l.Date),
			text(l.ProductName),
			count(l.Quantity),
			number(l.Revenue),
			number(l.MaterialCost),
			number(l.OtherCost),
			number(l.Profit),
		})
	}
	return encode(reportColumns, rows)
}
