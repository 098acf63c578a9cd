package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/order"
)

type orderResponse struct {
	ID           uuid.UUID    `json:"id"`
	ProductID    uuid.UUID    `json:"productId"`
	CustomerID   uuid.UUID    `json:"customerId"`
	Quantity     int          `json:"quantity"`
	Total        float64      `json:"total"`
	Date         string       `json:"date"`
	ShippingDate string       `json:"shippingDate,omitempty"`
	Status       order.Status `json:"status"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
}

func toResponse(o *order.Order) orderResponse {
	resp := orderResponse{
		ID:         o.ID,
		ProductID:  o.ProductID,
		CustomerID: o.CustomerID,
		Quantity:   o.Quantity,
		Total:      o.Total,
		Date:       o.Date.Format(time.DateOnly),
		Status:     o.Status,
		Notes:      o.Notes,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}

	if o.ShippingDate != nil {
		resp.ShippingDate = o.ShippingDate.Format(time.DateOnly)
	}

	return resp
}

func toResponseList(orders []*order.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	return resp
}
