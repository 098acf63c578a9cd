package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/managher/managher/internal/expense"
)

type Handler struct {
	svc      *expense.Service
	validate *validator.Validate
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type expenseResponse struct {
	ID            uuid.UUID             `json:"id"`
	Date          string                `json:"date"`
	Description   string                `json:"description"`
	ProductID     *uuid.UUID            `json:"productId,omitempty"`
	Category      expense.Category      `json:"category"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     float64               `json:"unitPrice"`
	Total         float64               `json:"total"`
	PaymentMethod expense.PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     *time.Time            `json:"updatedAt,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:            e.ID,
		Date:          e.Date.Format(time.DateOnly),
		Description:   e.Description,
		ProductID:     e.ProductID,
		Category:      e.Category,
		Quantity:      e.Quantity,
		UnitPrice:     e.UnitPrice,
		Total:         e.Total,
		PaymentMethod: e.PaymentMethod,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type createExpenseRequest struct {
	Date          string     `json:"date" validate:"required,datetime=2006-01-02"`
	Description   string     `json:"description" validate:"required"`
	ProductID     *uuid.UUID `json:"productId,omitempty"`
	Category      string     `json:"category" validate:"required"`
	Quantity      int        `json:"quantity" validate:"gte=0"`
	UnitPrice     float64    `json:"unitPrice" validate:"gte=0"`
	PaymentMethod string     `json:"paymentMethod" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	e, err := h.svc.Create(r.Context(), expense.CreateParams{
		Date:          date,
		Description:   req.Description,
		ProductID:     req.ProductID,
		Category:      expense.Category(req.Category),
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		PaymentMethod: expense.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateExpenseRequest struct {
	Date          *string    `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,min=1"`
	ProductID     *uuid.UUID `json:"productId,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Quantity      *int       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	UnitPrice     *float64   `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Date != nil {
		date, _ := time.Parse(time.DateOnly, *req.Date)
		e.Date = date
	}

	if req.Description != nil {
		e.Description = *req.Description
	}

	if req.ProductID != nil {
		e.ProductID = req.ProductID
	}

	if req.Category != nil {
		e.Category = expense.Category(*req.Category)
	}

	if req.Quantity != nil {
		e.Quantity = *req.Quantity
	}

	if req.UnitPrice != nil {
		e.UnitPrice = *req.UnitPrice
	}

	if req.PaymentMethod != nil {
		e.PaymentMethod = expense.PaymentMethod(*req.PaymentMethod)
	}

	if err := h.svc.Update(r.Context(), e); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
