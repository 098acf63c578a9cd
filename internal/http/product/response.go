package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/product"
)

type productResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	MaterialCost float64    `json:"materialCost"`
	OtherCost    float64    `json:"otherCost"`
	Category     string     `json:"category,omitempty"`
	Stock        *int       `json:"stock,omitempty"`
	Image        string     `json:"image,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		MaterialCost: p.MaterialCost,
		OtherCost:    p.OtherCost,
		Category:     p.Category,
		Stock:        p.Stock,
		Image:        p.Image,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toResponseList(products []*product.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	return resp
}
