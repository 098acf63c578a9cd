package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/dashboard"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
	"github.com/managher/managher/internal/profitloss"
)

// Handler serves the read-only report endpoints. All three reports are
// computed on the fly from the full data set; at this scale that is
// cheaper than keeping aggregates in sync.
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
	r.Get("/profit-loss", h.profitLoss)
	r.Get("/sales", h.sales)
	r.Get("/dashboard", h.dashboard)
}

type profitLossResponse struct {
	Lines     []profitloss.Line          `json:"lines"`
	Summary   profitloss.Summary         `json:"summary"`
	IsProfit  bool                       `json:"isProfit"`
	ByProduct []profitloss.ProductProfit `json:"byProduct"`
	ByDay     []profitloss.DailyProfit   `json:"byDay"`
}

func (h *Handler) profitLoss(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.List(r.Context(), order.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	products, err := h.productSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()

	lines := profitloss.ComputeLines(orders, products)
	lines = profitloss.FilterLines(lines, profitloss.Filter{
		Search:    q.Get("search"),
		DateStart: q.Get("date_start"),
		DateEnd:   q.Get("date_end"),
	})
	lines = profitloss.SortLines(lines, profitloss.SortKey(q.Get("sort")))

	summary := profitloss.Summarize(lines)

	resp := profitLossResponse{
		Lines:     lines,
		Summary:   summary,
		IsProfit:  summary.IsProfit(),
		ByProduct: profitloss.GroupByProduct(lines),
		ByDay:     profitloss.GroupByDay(lines),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saleRow struct {
	OrderID      uuid.UUID    `json:"orderId"`
	Date         string       `json:"date"`
	ProductName  string       `json:"productName"`
	CustomerName string       `json:"customerName"`
	Quantity     int          `json:"quantity"`
	Total        float64      `json:"total"`
	Status       order.Status `json:"status"`
	Notes        string       `json:"notes,omitempty"`
}

type salesResponse struct {
	Rows       []saleRow `json:"rows"`
	GrandTotal float64   `json:"grandTotal"`
}

// sales lists every order with its references resolved to names, plus
// the grand total across all statuses. Unlike profit-loss, nothing is
// filtered out here; this is the raw sales ledger.
func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.List(r.Context(), order.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	products, err := h.productSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	customers, err := h.customerSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	productNames := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}

	customerNames := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}

	resp := salesResponse{Rows: make([]saleRow, 0, len(orders))}

	for _, o := range orders {
		productName, ok := productNames[o.ProductID]
		if !ok {
			productName = "—"
		}

		customerName, ok := customerNames[o.CustomerID]
		if !ok {
			customerName = "—"
		}

		resp.Rows = append(resp.Rows, saleRow{
			OrderID:      o.ID,
			Date:         o.Date.Format(time.DateOnly),
			ProductName:  productName,
			CustomerName: customerName,
			Quantity:     o.Quantity,
			Total:        o.Total,
			Status:       o.Status,
			Notes:        o.Notes,
		})
		resp.GrandTotal += o.Total
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	customers, err := h.customerSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	orders, err := h.orderSvc.List(r.Context(), order.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	metrics := dashboard.Compute(products, len(customers), orders)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(metrics); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
