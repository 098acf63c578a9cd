package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

func intp(v int) *int { return &v }

func TestCompute(t *testing.T) {
	brownies := &product.Product{ID: uuid.New(), Name: "Brownies", MaterialCost: 12000, OtherCost: 3000, Stock: intp(3)}
	nastar := &product.Product{ID: uuid.New(), Name: "Nastar", MaterialCost: 5000, OtherCost: 0, Stock: intp(20)}
	untracked := &product.Product{ID: uuid.New(), Name: "Keripik"}
	products := []*product.Product{brownies, nastar, untracked}

	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	orders := []*order.Order{
		{ProductID: brownies.ID, Date: date, Quantity: 2, Total: 50000, Status: order.StatusDone},
		{ProductID: nastar.ID, Date: date, Quantity: 1, Total: 15000, Status: order.StatusWaiting},
		{ProductID: nastar.ID, Date: date, Quantity: 1, Total: 15000, Status: order.StatusShipped},
		{ProductID: nastar.ID, Date: date, Quantity: 1, Total: 15000, Status: order.StatusCancelled},
		// Completed order for a product that was since deleted: revenue
		// counts, cost cannot.
		{ProductID: uuid.New(), Date: date, Quantity: 1, Total: 10000, Status: order.StatusDone},
	}

	m := Compute(products, 7, orders)

	assert.Equal(t, 3, m.TotalProducts)
	assert.Equal(t, 7, m.TotalCustomers)
	assert.Equal(t, 5, m.TotalOrders)
	assert.Equal(t, 2, m.CompletedCount)
	assert.Equal(t, 1, m.WaitingCount)
	assert.Equal(t, float64(60000), m.TotalRevenue)
	assert.Equal(t, float64(30000), m.TotalCost)
	assert.Equal(t, float64(30000), m.NetProfit)
	assert.True(t, m.IsProfit())

	require.Len(t, m.LowStock, 1)
	assert.Equal(t, LowStockProduct{ID: brownies.ID, Name: "Brownies", Stock: 3}, m.LowStock[0])
}

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil, 0, nil)

	assert.Zero(t, m.TotalRevenue)
	assert.Zero(t, m.NetProfit)
	assert.True(t, m.IsProfit())
	assert.Empty(t, m.LowStock)
}

func TestComputeZeroStockIsLow(t *testing.T) {
	p := &product.Product{ID: uuid.New(), Name: "Brownies", Stock: intp(0)}

	m := Compute([]*product.Product{p}, 0, nil)
	require.Len(t, m.LowStock, 1)
	assert.Equal(t, 0, m.LowStock[0].Stock)
}
