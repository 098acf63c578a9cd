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
)

func TestParseProducts(t *testing.T) {
	in := "\ufeff" + `Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain,Kategori,Stok,URL Gambar
"Brownies",25000,12000,3000,"Kue",10,"https://example.com/b.jpg"
"Ana, ""Toko Manis""",15000,7000,,"",,""
`

	params, err := ParseProducts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "Brownies", params[0].Name)
	assert.Equal(t, float64(25000), params[0].Price)
	assert.Equal(t, float64(12000), params[0].MaterialCost)
	assert.Equal(t, float64(3000), params[0].OtherCost)
	assert.Equal(t, "Kue", params[0].Category)
	require.NotNil(t, params[0].Stock)
	assert.Equal(t, 10, *params[0].Stock)

	assert.Equal(t, `Ana, "Toko Manis"`, params[1].Name)
	assert.Equal(t, float64(0), params[1].OtherCost)
	assert.Nil(t, params[1].Stock)
}

func TestParseProductsRoundTrip(t *testing.T) {
	stock := 7
	original := []*product.Product{
		{Name: `Ana, "Toko Manis"`, Price: 15000, MaterialCost: 7000, OtherCost: 500, Category: "Kue", Stock: &stock},
		{Name: "Brownies", Price: 25000, MaterialCost: 12000, OtherCost: 3000},
	}

	params, err := ParseProducts(strings.NewReader(ExportProducts(original)))
	require.NoError(t, err)
	require.Len(t, params, 2)
	for i, p := range original {
		assert.Equal(t, p.Name, params[i].Name)
		assert.Equal(t, p.Price, params[i].Price)
		assert.Equal(t, p.MaterialCost, params[i].MaterialCost)
		assert.Equal(t, p.OtherCost, params[i].OtherCost)
		assert.Equal(t, p.Category, params[i].Category)
		assert.Equal(t, p.Stock, params[i].Stock)
	}
}

func TestParseProductsMissingColumns(t *testing.T) {
	in := "Nama,Harga Jual\n\"Brownies\",25000\n"

	_, err := ParseProducts(strings.NewReader(in))
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, []string{"Biaya Bahan", "Biaya Lain-lain"}, formatErr.Missing)
	assert.Contains(t, err.Error(), "Biaya Bahan")
}

func TestParseProductsSkipsRowsWithoutName(t *testing.T) {
	in := `Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain
"",25000,12000,3000
"Brownies",25000,12000,3000
`

	params, err := ParseProducts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Brownies", params[0].Name)
}

func TestParseProductsHeaderOnly(t *testing.T) {
	params, err := ParseProducts(strings.NewReader("Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain\n"))
	require.NoError(t, err)
	assert.Empty(t, params)
	assert.NotNil(t, params)
}

func TestParseCustomers(t *testing.T) {
	in := "Nama,Nomor Telepon / WA\n\"Budi\",\"0812-3456\"\n\"Sari\",\n"

	params, err := ParseCustomers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, customer.CreateParams{Name: "Budi", Contact: "0812-3456"}, params[0])
	assert.Equal(t, customer.CreateParams{Name: "Sari"}, params[1])
}

func TestParseOrders(t *testing.T) {
	productID := uuid.New()
	customerID := uuid.New()
	products := []*product.Product{{ID: productID, Name: "Brownies"}}
	customers := []*customer.Customer{{ID: customerID, Name: "Budi"}}

	in := `Tanggal Order,Produk,Pelanggan,Qty,Total,Status,Catatan
"2024-01-05","Brownies","Budi",2,50000,"Selesai","ambil sore"
"2024-01-06","Brownies","Budi",1,,"",""
,"Brownies","Budi",1,10000,"Menunggu",""
"bukan tanggal","Brownies","Budi",1,10000,"Menunggu",""
`

	params, err := ParseOrders(strings.NewReader(in), products, customers)
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), params[0].Date)
	assert.Equal(t, productID, params[0].ProductID)
	assert.Equal(t, customerID, params[0].CustomerID)
	assert.Equal(t, 2, params[0].Quantity)
	assert.Equal(t, float64(50000), params[0].Total)
	assert.Equal(t, order.StatusDone, params[0].Status)
	assert.Equal(t, "ambil sore", params[0].Notes)

	// Missing total reads as zero, missing status falls back to waiting.
	assert.Equal(t, float64(0), params[1].Total)
	assert.Equal(t, order.StatusWaiting, params[1].Status)
}

func TestParseOrdersUnknownReference(t *testing.T) {
	products := []*product.Product{{ID: uuid.New(), Name: "Brownies"}}
	customers := []*customer.Customer{{ID: uuid.New(), Name: "Budi"}}

	in := `Tanggal Order,Produk,Pelanggan,Qty,Total,Status
"2024-01-05","Brownies","Budi",2,50000,"Selesai"
"2024-01-06","Tidak Ada","Budi",1,10000,"Menunggu"
`

	params, err := ParseOrders(strings.NewReader(in), products, customers)
	var refErr *ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, RefProduct, refErr.Kind)
	assert.Equal(t, "Tidak Ada", refErr.Name)
	assert.Nil(t, params)
}

func TestParseOrdersUnknownCustomer(t *testing.T) {
	products := []*product.Product{{ID: uuid.New(), Name: "Brownies"}}

	in := "Tanggal Order,Produk,Pelanggan,Qty,Total,Status\n\"2024-01-05\",\"Brownies\",\"Siapa\",1,10000,\"Menunggu\"\n"

	_, err := ParseOrders(strings.NewReader(in), products, nil)
	var refErr *ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, RefCustomer, refErr.Kind)
	assert.Equal(t, "Siapa", refErr.Name)
}

func TestParseOrdersMissingColumns(t *testing.T) {
	in := "Tanggal Order,Produk\n\"2024-01-05\",\"Brownies\"\n"

	_, err := ParseOrders(strings.NewReader(in), nil, nil)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, []string{"Pelanggan", "Qty", "Total", "Status"}, formatErr.Missing)
}

func TestParseUnquotedInput(t *testing.T) {
	// Files written by hand or by other tools may not quote anything.
	in := "Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain\nBrownies,25000,12000,3000\n"

	params, err := ParseProducts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Brownies", params[0].Name)
	assert.Equal(t, float64(25000), params[0].Price)
}
