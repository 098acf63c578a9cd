package export

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/managher/managher/internal/csvio"
	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
	"github.com/managher/managher/internal/profitloss"
)

// Handler streams CSV downloads. The body already carries a BOM, so the
// charset in the Content-Type is informational for clients that ignore it.
type Handler struct {
	productSvc  *product.Service
	customerSvc *customer.Service
	orderSvc    *order.Service
}

func NewHandler(productSvc *product.Service, customerSvc *customer.Service, orderSvc *order.Service) *Handler {
	return &Handler{
		productSvc:  productSvc,
		customerSvc: customerSvc,
		orderSvc:    orderSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/products", h.products)
	r.Get("/customers", h.customers)
	r.Get("/orders", h.orders)
	r.Get("/profit-loss", h.profitLoss)
}

func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("failed to write csv response", "error", err)
	}
}

func (h *Handler) products(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeCSV(w, csvio.FilenameProducts, csvio.ExportProducts(products))
}

func (h *Handler) customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeCSV(w, csvio.FilenameCustomers, csvio.ExportCustomers(customers))
}

func (h *Handler) orders(w http.ResponseWriter, r *http.Request) {
	orders, products, customers, err := h.load(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeCSV(w, csvio.FilenameOrders, csvio.ExportOrders(orders, products, customers))
}

func (h *Handler) profitLoss(w http.ResponseWriter, r *http.Request) {
	orders, products, _, err := h.load(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	lines := profitloss.ComputeLines(orders, products)

	writeCSV(w, csvio.FilenameProfitLoss, csvio.ExportProfitLoss(lines))
}

func (h *Handler) load(r *http.Request) ([]*order.Order, []*product.Product, []*customer.Customer, error) {
	orders, err := h.orderSvc.List(r.Context(), order.ListFilter{})
	if err != nil {
		return nil, nil, nil, err
	}

	products, err := h.productSvc.List(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}

	customers, err := h.customerSvc.List(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}

	return orders, products, customers, nil
}
