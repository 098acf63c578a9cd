// Package profitloss derives profit and loss figures from completed orders
// joined against the product catalog. Everything here is a pure function
// over the caller's slices; nothing reads storage or holds state between
// calls.
package profitloss

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

// Line is one profit/loss record, derived from one completed order.
// Date is the order's creation date formatted as YYYY-MM-DD; keeping it as
// a string makes every date comparison in this package a plain
// lexicographic one, which is timezone-proof for day-granularity data.
type Line struct {
	OrderID      uuid.UUID `json:"orderId"`
	Date         string    `json:"date"`
	ProductName  string    `json:"productName"`
	Quantity     int       `json:"quantity"`
	Revenue      float64   `json:"revenue"`
	MaterialCost float64   `json:"materialCost"`
	OtherCost    float64   `json:"otherCost"`
	Profit       float64   `json:"profit"`
}

// ComputeLines joins orders against products and emits one line per order
// in Selesai status. Orders in any other status never contribute. An order
// whose product no longer exists is dropped: the row would have no name
// and no cost basis, so it is excluded rather than reported as zero.
func ComputeLines(orders []*order.Order, products []*product.Product) []Line {
	byID := make(map[uuid.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]Line, 0, len(orders))

	for _, o := range orders {
		if o.Status != order.StatusDone {
			continue
		}

		p, ok := byID[o.ProductID]
		if !ok {
			continue
		}

		qty := float64(o.Quantity)
		revenue := o.Total
		materialCost := p.MaterialCost * qty
		otherCost := p.OtherCost * qty

		lines = append(lines, Line{
			OrderID:      o.ID,
			Date:         o.Date.Format(time.DateOnly),
			ProductName:  p.Name,
			Quantity:     o.Quantity,
			Revenue:      revenue,
			MaterialCost: materialCost,
			OtherCost:    otherCost,
			Profit:       revenue - materialCost - otherCost,
		})
	}

	return lines
}

// Filter narrows a line set. Search matches the product name
// case-insensitively; an empty search matches everything. DateStart and
// DateEnd are inclusive YYYY-MM-DD bounds, compared as strings.
type Filter struct {
	Search    string
	DateStart string
	DateEnd   string
}

func FilterLines(lines []Line, f Filter) []Line {
	search := strings.ToLower(f.Search)

	result := make([]Line, 0, len(lines))

	for _, l := range lines {
		if search != "" && !strings.Contains(strings.ToLower(l.ProductName), search) {
			continue
		}

		if f.DateStart != "" && l.Date < f.DateStart {
			continue
		}

		if f.DateEnd != "" && l.Date > f.DateEnd {
			continue
		}

		result = append(result, l)
	}

	return result
}

// SortKey selects the ordering of a line set. All orderings are descending:
// the biggest revenue, the biggest profit, or the most recent date first.
type SortKey string

const (
	SortByDate    SortKey = "date"
	SortByRevenue SortKey = "revenue"
	SortByProfit  SortKey = "profit"
)

// SortLines returns a sorted copy. The sort is stable, so lines that
// compare equal keep their computed order. An unknown key falls back to
// date ordering.
func SortLines(lines []Line, key SortKey) []Line {
	sorted := make([]Line, len(lines))
	copy(sorted, lines)

	switch key {
	case SortByRevenue:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Revenue > sorted[j].Revenue
		})
	case SortByProfit:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Profit > sorted[j].Profit
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date > sorted[j].Date
		})
	}

	return sorted
}

// Summary holds the plain sums over a line set.
type Summary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalMaterial float64 `json:"totalMaterial"`
	TotalOther    float64 `json:"totalOther"`
	TotalProfit   float64 `json:"totalProfit"`
}

// IsProfit reports whether the period closed at or above break-even.
// Zero counts as profit.
func (s Summary) IsProfit() bool {
	return s.TotalProfit >= 0
}

func Summarize(lines []Line) Summary {
	var s Summary
	for _, l := range lines {
		s.TotalRevenue += l.Revenue
		s.TotalMaterial += l.MaterialCost
		s.TotalOther += l.OtherCost
		s.TotalProfit += l.Profit
	}

	return s
}

// ProductProfit is the summed profit of one product across a line set.
type ProductProfit struct {
	ProductName string  `json:"productName"`
	Profit      float64 `json:"profit"`
}

// GroupByProduct sums profit per product. Products appear in the order
// their first line was encountered, which keeps ranking ties stable.
func GroupByProduct(lines []Line) []ProductProfit {
	idx := make(map[string]int, len(lines))

	var groups []ProductProfit

	for _, l := range lines {
		i, ok := idx[l.ProductName]
		if !ok {
			idx[l.ProductName] = len(groups)
			groups = append(groups, ProductProfit{ProductName: l.ProductName, Profit: l.Profit})

			continue
		}

		groups[i].Profit += l.Profit
	}

	return groups
}

// DailyProfit is the summed profit of one calendar day.
type DailyProfit struct {
	Date   string  `json:"date"`
	Profit float64 `json:"profit"`
}

// GroupByDay sums profit per calendar day, dates ascending, for
// time-series consumers.
func GroupByDay(lines []Line) []DailyProfit {
	byDate := make(map[string]float64, len(lines))
	for _, l := range lines {
		byDate[l.Date] += l.Profit
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}

	sort.Strings(dates)

	days := make([]DailyProfit, 0, len(dates))
	for _, d := range dates {
		days = append(days, DailyProfit{Date: d, Profit: byDate[d]})
	}

	return days
}
