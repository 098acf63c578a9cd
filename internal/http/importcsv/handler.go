package importcsv

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/managher/managher/internal/csvio"
	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

const maxUploadSize = 10 << 20

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

// Routes exposes a preview endpoint per entity, which parses the upload
// without writing anything, and a confirm endpoint, which applies rows
// the client previously previewed.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/products", h.previewProducts)
	r.Post("/products/confirm", h.confirmProducts)
	r.Post("/customers", h.previewCustomers)
	r.Post("/customers/confirm", h.confirmCustomers)
	r.Post("/orders", h.previewOrders)
	r.Post("/orders/confirm", h.confirmOrders)
}

type productRowDTO struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	MaterialCost float64 `json:"materialCost"`
	OtherCost    float64 `json:"otherCost"`
	Category     string  `json:"category,omitempty"`
	Stock        *int    `json:"stock,omitempty"`
	Image        string  `json:"image,omitempty"`
}

type customerRowDTO struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

type orderRowDTO struct {
	Date         string    `json:"date"`
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName,omitempty"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName,omitempty"`
	Quantity     int       `json:"quantity"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
}

type previewResponse[T any] struct {
	Rows    []T    `json:"rows"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// noRowsMessage is surfaced when a file parses cleanly but yields
// nothing importable. It is not an error.
const noRowsMessage = "file contains no importable rows"

// importResult reports how far a confirm got. Confirm applies rows one
// at a time with no rollback, so a failure partway through leaves the
// earlier rows created; Created says how many, Error why it stopped.
type importResult struct {
	Created int    `json:"created"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}

	return file, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writePreview[T any](w http.ResponseWriter, rows []T) {
	resp := previewResponse[T]{Rows: rows, Count: len(rows)}
	if len(rows) == 0 {
		resp.Message = noRowsMessage
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) previewProducts(w http.ResponseWriter, r *http.Request) {
	file, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	params, err := csvio.ParseProducts(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := make([]productRowDTO, 0, len(params))
	for _, p := range params {
		rows = append(rows, productRowDTO{
			Name:         p.Name,
			Price:        p.Price,
			MaterialCost: p.MaterialCost,
			OtherCost:    p.OtherCost,
			Category:     p.Category,
			Stock:        p.Stock,
			Image:        p.Image,
		})
	}

	writePreview(w, rows)
}

func (h *Handler) confirmProducts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows []productRowDTO `json:"rows"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var result importResult

	for _, row := range req.Rows {
		_, err := h.productSvc.Create(r.Context(), product.CreateParams{
			Name:         row.Name,
			Price:        row.Price,
			MaterialCost: row.MaterialCost,
			OtherCost:    row.OtherCost,
			Category:     row.Category,
			Stock:        row.Stock,
			Image:        row.Image,
		})
		if err != nil {
			result.Error = err.Error()

			break
		}

		result.Created++
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) previewCustomers(w http.ResponseWriter, r *http.Request) {
	file, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	params, err := csvio.ParseCustomers(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := make([]customerRowDTO, 0, len(params))
	for _, c := range params {
		rows = append(rows, customerRowDTO{Name: c.Name, Contact: c.Contact})
	}

	writePreview(w, rows)
}

func (h *Handler) confirmCustomers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows []customerRowDTO `json:"rows"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var result importResult

	for _, row := range req.Rows {
		_, err := h.customerSvc.Create(r.Context(), customer.CreateParams{
			Name:    row.Name,
			Contact: row.Contact,
		})
		if err != nil {
			result.Error = err.Error()

			break
		}

		result.Created++
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) previewOrders(w http.ResponseWriter, r *http.Request) {
	file, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

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

	params, err := csvio.ParseOrders(file, products, customers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
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

	rows := make([]orderRowDTO, 0, len(params))
	for _, o := range params {
		rows = append(rows, orderRowDTO{
			Date:         o.Date.Format(time.DateOnly),
			ProductID:    o.ProductID,
			ProductName:  productNames[o.ProductID],
			CustomerID:   o.CustomerID,
			CustomerName: customerNames[o.CustomerID],
			Quantity:     o.Quantity,
			Total:        o.Total,
			Status:       string(o.Status),
			Notes:        o.Notes,
		})
	}

	writePreview(w, rows)
}

func (h *Handler) confirmOrders(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows []orderRowDTO `json:"rows"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var result importResult

	for _, row := range req.Rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			result.Error = "invalid date: " + row.Date

			break
		}

		_, err = h.orderSvc.Create(r.Context(), order.CreateParams{
			Date:       date,
			ProductID:  row.ProductID,
			CustomerID: row.CustomerID,
			Quantity:   row.Quantity,
			Total:      row.Total,
			Status:     order.Status(row.Status),
			Notes:      row.Notes,
		})
		if err != nil {
			result.Error = err.Error()

			break
		}

		result.Created++
	}

	writeJSON(w, http.StatusOK, result)
}
