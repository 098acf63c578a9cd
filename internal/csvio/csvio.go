// Package csvio encodes and decodes the CSV interchange format used for
// product, customer and order import/export and for the profit report.
//
// The wire format is deliberately strict: a UTF-8 BOM prefix, \n line
// endings, every textual field double-quoted with "" doubling, and
// numeric fields written bare. Parsing is forgiving about what it
// receives (any encoding internal/encoding can detect, quoted or
// unquoted cells, extra columns) but output is always canonical.
package csvio

const (
	// bom prefixes every exported file so spreadsheet tools pick up
	// the encoding.
	bom = "\ufeff"

	// placeholder stands in for a product or customer that was deleted
	// after the order referencing it was created.
	placeholder = "—"
)

// Download filenames for the four exportable data sets.
const (
	FilenameProducts   = "produk-managher.csv"
	FilenameCustomers  = "pelanggan-managher.csv"
	FilenameOrders     = "order-managher.csv"
	FilenameProfitLoss = "laporan-laba-rugi.csv"
)

// Column headers, shared between export and import.
const (
	colProductName     = "Nama"
	colProductPrice    = "Harga Jual"
	colProductMaterial = "Biaya Bahan"
	colProductOther    = "Biaya Lain-lain"
	colProductCategory = "Kategori"
	colProductStock    = "Stok"
	colProductImage    = "URL Gambar"

	colCustomerName    = "Nama"
	colCustomerContact = "Nomor Telepon / WA"

	colOrderDate     = "Tanggal Order"
	colOrderProduct  = "Produk"
	colOrderCustomer = "Pelanggan"
	colOrderQty      = "Qty"
	colOrderTotal    = "Total"
	colOrderStatus   = "Status"
	colOrderNotes    = "Catatan"

	colReportDate     = "Tanggal"
	colReportProduct  = "Produk"
	colReportQty      = "Qty"
	colReportRevenue  = "Pendapatan"
	colReportMaterial = "Biaya Bahan"
	colReportOther    = "Biaya Lain"
	colReportProfit   = "Laba"
)

var (
	productColumns  = []string{colProductName, colProductPrice, colProductMaterial, colProductOther, colProductCategory, colProductStock, colProductImage}
	productRequired = []string{colProductName, colProductPrice, colProductMaterial, colProductOther}

	customerColumns  = []string{colCustomerName, colCustomerContact}
	customerRequired = []string{colCustomerName}

	orderColumns  = []string{colOrderDate, colOrderProduct, colOrderCustomer, colOrderQty, colOrderTotal, colOrderStatus, colOrderNotes}
	orderRequired = []string{colOrderDate, colOrderProduct, colOrderCustomer, colOrderQty, colOrderTotal, colOrderStatus}

	reportColumns = []string{colReportDate, colReportProduct, colReportQty, colReportRevenue, colReportMaterial, colReportOther, colReportProfit}
)
