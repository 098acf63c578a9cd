package export_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/http/export"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

func TestExportProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := product.NewMockRepository(ctrl)
	productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*product.Product{{ID: uuid.New(), Name: "Brownies", Price: 25000}}, nil)

	h := export.NewHandler(
		product.NewService(productRepo),
		customer.NewService(customer.NewMockRepository(ctrl)),
		order.NewService(order.NewMockRepository(ctrl)),
	)

	r := chi.NewRouter()
	h.Routes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="produk-managher.csv"`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "\ufeff"))
	assert.Contains(t, body, "Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain")
	assert.Contains(t, body, `"Brownies",25000`)
}
