package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/managher/managher/internal/expense"
)

func TestService_CreateComputesTotal(t *testing.T) {
	type testCase struct {
		name         string
		params       expense.CreateParams
		wantQuantity int
		wantTotal    float64
	}

	tests := []testCase{
		{
			name: "TotalIsQuantityTimesUnitPrice",
			params: expense.CreateParams{
				Description:   "Tepung terigu",
				Category:      expense.CategoryRawMaterial,
				Quantity:      3,
				UnitPrice:     12000,
				PaymentMethod: expense.PaymentCash,
				Date:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			wantQuantity: 3,
			wantTotal:    36000,
		},
		{
			name: "QuantityClampedToOne",
			params: expense.CreateParams{
				Description:   "Iklan",
				Category:      expense.CategoryMarketing,
				Quantity:      0,
				UnitPrice:     50000,
				PaymentMethod: expense.PaymentTransfer,
			},
			wantQuantity: 1,
			wantTotal:    50000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			repo.EXPECT().
				CreateExpense(gomock.Any(), gomock.Any()).
				Return(nil)

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuantity, got.Quantity)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestService_UpdateRecomputesTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateExpense(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := expense.NewService(repo)

	// A stale total must not survive an update.
	e := &expense.Expense{Quantity: 2, UnitPrice: 15000, Total: 1}
	require.NoError(t, svc.Update(context.Background(), e))
	assert.Equal(t, float64(30000), e.Total)
}

func TestTotalSpent(t *testing.T) {
	total := expense.TotalSpent([]*expense.Expense{
		{Total: 36000},
		{Total: 50000},
	})

	assert.Equal(t, float64(86000), total)
}
