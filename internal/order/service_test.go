package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/managher/managher/internal/order"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params order.CreateParams
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(m *order.MockRepository)
		wantStatus order.Status
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: order.CreateParams{
					ProductID:  uuid.New(),
					CustomerID: uuid.New(),
					Quantity:   2,
					Total:      50000,
					Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
					Status:     order.StatusDone,
				},
			},
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *order.Order) error {
						o.ID = uuid.New()
						o.CreatedAt = time.Now()
						return nil
					})
			},
			wantStatus: order.StatusDone,
		},
		{
			name: "DefaultsToWaiting",
			args: args{
				params: order.CreateParams{
					ProductID:  uuid.New(),
					CustomerID: uuid.New(),
					Quantity:   1,
					Total:      10000,
					Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: order.StatusWaiting,
		},
		{
			name: "RepoError",
			args: args{
				params: order.CreateParams{Quantity: 1},
			},
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := order.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := order.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_List(t *testing.T) {
	status := order.StatusDone
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		filter    order.ListFilter
		setupMock func(m *order.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "PassesFilterThrough",
			filter: order.ListFilter{Status: &status, StartDate: &start},
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					ListOrders(gomock.Any(), order.ListFilter{Status: &status, StartDate: &start}).
					Return([]*order.Order{{ID: uuid.New()}}, nil)
			},
			wantLen: 1,
		},
		{
			name:   "RepoError",
			filter: order.ListFilter{},
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					ListOrders(gomock.Any(), order.ListFilter{}).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := order.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := order.NewService(repo)
			got, err := svc.List(context.Background(), tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := order.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), id, order.StatusShipped).
		Return(nil)

	svc := order.NewService(repo)
	assert.NoError(t, svc.UpdateStatus(context.Background(), id, order.StatusShipped))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []order.Status{order.StatusWaiting, order.StatusShipped, order.StatusDone, order.StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, order.Status("").Valid())
	assert.False(t, order.Status("Done").Valid())
}
