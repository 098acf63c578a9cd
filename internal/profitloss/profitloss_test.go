package profitloss

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeLines(t *testing.T) {
	brownies := &product.Product{ID: uuid.New(), Name: "Brownies", Price: 25000, MaterialCost: 12000, OtherCost: 3000}
	products := []*product.Product{brownies}

	orders := []*order.Order{
		{ID: uuid.New(), ProductID: brownies.ID, Date: day(2024, 1, 5), Quantity: 2, Total: 50000, Status: order.StatusDone},
		{ID: uuid.New(), ProductID: brownies.ID, Date: day(2024, 1, 6), Quantity: 1, Total: 25000, Status: order.StatusWaiting},
		{ID: uuid.New(), ProductID: brownies.ID, Date: day(2024, 1, 6), Quantity: 1, Total: 25000, Status: order.StatusCancelled},
		// Product deleted after the order completed.
		{ID: uuid.New(), ProductID: uuid.New(), Date: day(2024, 1, 7), Quantity: 1, Total: 25000, Status: order.StatusDone},
	}

	lines := ComputeLines(orders, products)
	require.Len(t, lines, 1)

	l := lines[0]
	assert.Equal(t, orders[0].ID, l.OrderID)
	assert.Equal(t, "2024-01-05", l.Date)
	assert.Equal(t, "Brownies", l.ProductName)
	assert.Equal(t, 2, l.Quantity)
	assert.Equal(t, float64(50000), l.Revenue)
	assert.Equal(t, float64(24000), l.MaterialCost)
	assert.Equal(t, float64(6000), l.OtherCost)
	assert.Equal(t, float64(20000), l.Profit)
}

func TestComputeLinesRevenueIsOrderTotal(t *testing.T) {
	// The order total is frozen at creation; a later price change on the
	// product must not alter reported revenue.
	p := &product.Product{ID: uuid.New(), Name: "Brownies", Price: 99000, MaterialCost: 1000, OtherCost: 0}
	o := &order.Order{ID: uuid.New(), ProductID: p.ID, Date: day(2024, 1, 5), Quantity: 1, Total: 25000, Status: order.StatusDone}

	lines := ComputeLines([]*order.Order{o}, []*product.Product{p})
	require.Len(t, lines, 1)
	assert.Equal(t, float64(25000), lines[0].Revenue)
}

func TestComputeLinesEmpty(t *testing.T) {
	lines := ComputeLines(nil, nil)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestFilterLines(t *testing.T) {
	lines := []Line{
		{ProductName: "Brownies Coklat", Date: "2024-01-04"},
		{ProductName: "Nastar", Date: "2024-01-05"},
		{ProductName: "brownies keju", Date: "2024-01-06"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "no filter keeps everything",
			filter: Filter{},
			want:   []string{"Brownies Coklat", "Nastar", "brownies keju"},
		},
		{
			name:   "search is case insensitive",
			filter: Filter{Search: "BROWNIES"},
			want:   []string{"Brownies Coklat", "brownies keju"},
		},
		{
			name:   "date bounds are inclusive",
			filter: Filter{DateStart: "2024-01-05", DateEnd: "2024-01-05"},
			want:   []string{"Nastar"},
		},
		{
			name:   "start bound only",
			filter: Filter{DateStart: "2024-01-05"},
			want:   []string{"Nastar", "brownies keju"},
		},
		{
			name:   "end bound only",
			filter: Filter{DateEnd: "2024-01-05"},
			want:   []string{"Brownies Coklat", "Nastar"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FilterLines(lines, test.filter)

			names := make([]string, 0, len(got))
			for _, l := range got {
				names = append(names, l.ProductName)
			}
			assert.Equal(t, test.want, names)
		})
	}
}

func TestSortLines(t *testing.T) {
	lines := []Line{
		{ProductName: "a", Date: "2024-01-04", Revenue: 10000, Profit: 5000},
		{ProductName: "b", Date: "2024-01-06", Revenue: 30000, Profit: 1000},
		{ProductName: "c", Date: "2024-01-05", Revenue: 20000, Profit: 9000},
	}

	byDate := SortLines(lines, SortByDate)
	assert.Equal(t, []string{"b", "c", "a"}, names(byDate))

	byRevenue := SortLines(lines, SortByRevenue)
	assert.Equal(t, []string{"b", "c", "a"}, names(byRevenue))

	byProfit := SortLines(lines, SortByProfit)
	assert.Equal(t, []string{"c", "a", "b"}, names(byProfit))

	// Unknown keys fall back to date ordering, and the input is never
	// mutated.
	assert.Equal(t, names(byDate), names(SortLines(lines, SortKey("banana"))))
	assert.Equal(t, []string{"a", "b", "c"}, names(lines))
}

func TestSortLinesStable(t *testing.T) {
	lines := []Line{
		{ProductName: "first", Date: "2024-01-05"},
		{ProductName: "second", Date: "2024-01-05"},
	}

	sorted := SortLines(lines, SortByDate)
	assert.Equal(t, []string{"first", "second"}, names(sorted))
}

func names(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.ProductName)
	}
	return out
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Line{
		{Revenue: 50000, MaterialCost: 24000, OtherCost: 6000, Profit: 20000},
		{Revenue: 10000, MaterialCost: 9000, OtherCost: 2000, Profit: -1000},
	})

	assert.Equal(t, float64(60000), s.TotalRevenue)
	assert.Equal(t, float64(33000), s.TotalMaterial)
	assert.Equal(t, float64(8000), s.TotalOther)
	assert.Equal(t, float64(19000), s.TotalProfit)
	assert.True(t, s.IsProfit())
}

func TestSummaryIsProfit(t *testing.T) {
	assert.True(t, Summary{TotalProfit: 0}.IsProfit())
	assert.True(t, Summary{TotalProfit: 1}.IsProfit())
	assert.False(t, Summary{TotalProfit: -1}.IsProfit())
}

func TestGroupByProduct(t *testing.T) {
	groups := GroupByProduct([]Line{
		{ProductName: "Brownies", Profit: 20000},
		{ProductName: "Nastar", Profit: 4000},
		{ProductName: "Brownies", Profit: 5000},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, ProductProfit{ProductName: "Brownies", Profit: 25000}, groups[0])
	assert.Equal(t, ProductProfit{ProductName: "Nastar", Profit: 4000}, groups[1])
}

func TestGroupByDay(t *testing.T) {
	days := GroupByDay([]Line{
		{Date: "2024-01-06", Profit: 5000},
		{Date: "2024-01-04", Profit: 20000},
		{Date: "2024-01-06", Profit: 1000},
	})

	require.Len(t, days, 2)
	assert.Equal(t, DailyProfit{Date: "2024-01-04", Profit: 20000}, days[0])
	assert.Equal(t, DailyProfit{Date: "2024-01-06", Profit: 6000}, days[1])
}
