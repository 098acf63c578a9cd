package csvio

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
	"github.com/managher/managher/internal/profitloss"
)

func TestExportProducts(t *testing.T) {
	stock := 12
	out := ExportProducts([]*product.Product{
		{
			Name:         `Ana, "Toko Manis"`,
			Price:        25000,
			MaterialCost: 12000.5,
			OtherCost:    0,
			Category:     "Kue",
			Stock:        &stock,
			Image:        "",
		},
		{
			Name:  "Brownies",
			Price: 30000,
		},
	})

	require.True(t, strings.HasPrefix(out, "\ufeff"))

	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain,Kategori,Stok,URL Gambar", lines[0])
	assert.Equal(t, `"Ana, ""Toko Manis""",25000,12000.5,0,"Kue",12,""`, lines[1])
	assert.Equal(t, `"Brownies",30000,0,0,"",,""`, lines[2])
}

func TestExportCustomers(t *testing.T) {
	out := ExportCustomers([]*customer.Customer{
		{Name: "Budi", Contact: "0812-3456"},
	})

	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Nama,Nomor Telepon / WA", lines[0])
	assert.Equal(t, `"Budi","0812-3456"`, lines[1])
}

func TestExportOrders(t *testing.T) {
	productID := uuid.New()
	customerID := uuid.New()
	products := []*product.Product{{ID: productID, Name: "Brownies"}}
	customers := []*customer.Customer{{ID: customerID, Name: "Budi"}}

	orders := []*order.Order{
		{
			Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			ProductID:  productID,
			CustomerID: customerID,
			Quantity:   2,
			Total:      50000,
			Status:     order.StatusDone,
			Notes:      "ambil sore",
		},
		{
			// References deleted records.
			Date:       time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			ProductID:  uuid.New(),
			CustomerID: uuid.New(),
			Quantity:   1,
			Total:      10000,
			Status:     order.StatusWaiting,
		},
	}

	out := ExportOrders(orders, products, customers)
	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Tanggal Order,Produk,Pelanggan,Qty,Total,Status,Catatan", lines[0])
	assert.Equal(t, `"2024-01-05","Brownies","Budi",2,50000,"Selesai","ambil sore"`, lines[1])
	assert.Equal(t, `"2024-01-06","—","—",1,10000,"Menunggu",""`, lines[2])
}

func TestExportProfitLoss(t *testing.T) {
	out := ExportProfitLoss([]profitloss.Line{
		{
			Date:         "2024-01-05",
			ProductName:  "Brownies",
			Quantity:     2,
			Revenue:      50000,
			MaterialCost: 24000,
			OtherCost:    6000,
			Profit:       20000,
		},
	})

	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Tanggal,Produk,Qty,Pendapatan,Biaya Bahan,Biaya Lain,Laba", lines[0])
	assert.Equal(t, `"2024-01-05","Brownies",2,50000,24000,6000,20000`, lines[1])
}

func TestFormatNumber(t *testing.T) {
	// Sums of non-representable floats must not leak representation
	// noise into the file.
	assert.Equal(t, "0.3", formatNumber(0.1+0.2))
	assert.Equal(t, "25000", formatNumber(25000))
}
