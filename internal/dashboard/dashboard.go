// Package dashboard computes the headline metrics shown on the landing
// screen. Like profitloss, it is pure: callers hand in the current
// collections and get numbers back.
package dashboard

import (
	"github.com/google/uuid"

	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

// Products with stock at or below this threshold are flagged.
const lowStockThreshold = 5

type Metrics struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCost      float64 `json:"totalCost"`
	NetProfit      float64 `json:"netProfit"`
	CompletedCount int     `json:"completedCount"`
	WaitingCount   int     `json:"waitingCount"`

	LowStock []LowStockProduct `json:"lowStock"`
}

// IsProfit reports whether the business is at or above break-even.
func (m Metrics) IsProfit() bool {
	return m.NetProfit >= 0
}

type LowStockProduct struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Stock int       `json:"stock"`
}

// Compute derives the dashboard metrics. Revenue and cost count Selesai
// orders only. An order whose product is gone still counts its revenue
// here but contributes no cost, matching the detailed profit/loss view
// only when no orders are orphaned; the P/L report drops such orders
// entirely.
func Compute(products []*product.Product, customerCount int, orders []*order.Order) Metrics {
	m := Metrics{
		TotalProducts:  len(products),
		TotalCustomers: customerCount,
		TotalOrders:    len(orders),
	}

	byID := make(map[uuid.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, o := range orders {
		switch o.Status {
		case order.StatusWaiting:
			m.WaitingCount++
		case order.StatusDone:
			m.CompletedCount++
		}

		if o.Status != order.StatusDone {
			continue
		}

		m.TotalRevenue += o.Total

		if p, ok := byID[o.ProductID]; ok {
			unitCost := p.MaterialCost + p.OtherCost
			m.TotalCost += unitCost * float64(o.Quantity)
		}
	}

	m.NetProfit = m.TotalRevenue - m.TotalCost

	for _, p := range products {
		if p.Stock == nil {
			continue
		}

		if *p.Stock >= 0 && *p.Stock <= lowStockThreshold {
			m.LowStock = append(m.LowStock, LowStockProduct{ID: p.ID, Name: p.Name, Stock: *p.Stock})
		}
	}

	return m
}
