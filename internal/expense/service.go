package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date          time.Time
	Description   string
	ProductID     *uuid.UUID
	Category      Category
	Quantity      int
	UnitPrice     float64
	PaymentMethod PaymentMethod
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	e := &Expense{
		Date:          params.Date,
		Description:   params.Description,
		ProductID:     params.ProductID,
		Category:      params.Category,
		Quantity:      params.Quantity,
		UnitPrice:     params.UnitPrice,
		PaymentMethod: params.PaymentMethod,
	}
	if e.Quantity < 1 {
		e.Quantity = 1
	}

	e.Total = float64(e.Quantity) * e.UnitPrice

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx)
}

func (s *Service) Update(ctx context.Context, e *Expense) error {
	if e.Quantity < 1 {
		e.Quantity = 1
	}

	e.Total = float64(e.Quantity) * e.UnitPrice

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// TotalSpent sums the total of every expense on record.
func TotalSpent(expenses []*Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Total
	}

	return sum
}
