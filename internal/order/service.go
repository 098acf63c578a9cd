package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=order
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error)
	UpdateOrder(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CustomerID   uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
	Total        float64
	Date         time.Time
	ShippingDate *time.Time
	Status       Status
	Notes        string
}

type ListFilter struct {
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	o := &Order{
		CustomerID:   params.CustomerID,
		ProductID:    params.ProductID,
		Quantity:     params.Quantity,
		Total:        params.Total,
		Date:         params.Date,
		ShippingDate: params.ShippingDate,
		Status:       params.Status,
		Notes:        params.Notes,
	}
	if o.Status == "" {
		o.Status = StatusWaiting
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

func (s *Service) Update(ctx context.Context, o *Order) error {
	return s.repo.UpdateOrder(ctx, o)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOrder(ctx, id)
}
