package importcsv_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
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
	"github.com/managher/managher/internal/http/importcsv"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

func newRouter(productRepo product.Repository, customerRepo customer.Repository, orderRepo order.Repository) http.Handler {
	h := importcsv.NewHandler(
		product.NewService(productRepo),
		customer.NewService(customerRepo),
		order.NewService(orderRepo),
	)

	r := chi.NewRouter()
	h.Routes(r)

	return r
}

func uploadRequest(t *testing.T, path, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "upload.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestPreviewProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(product.NewMockRepository(ctrl), customer.NewMockRepository(ctrl), order.NewMockRepository(ctrl))

	csv := "Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain\n\"Brownies\",25000,12000,3000\n"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/products", csv))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Rows []struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"rows"`
		Count   int    `json:"count"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Brownies", resp.Rows[0].Name)
	assert.Equal(t, float64(25000), resp.Rows[0].Price)
	assert.Empty(t, resp.Message)
}

func TestPreviewProductsNoRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(product.NewMockRepository(ctrl), customer.NewMockRepository(ctrl), order.NewMockRepository(ctrl))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/products", "Nama,Harga Jual,Biaya Bahan,Biaya Lain-lain\n"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int    `json:"count"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Zero(t, resp.Count)
	assert.NotEmpty(t, resp.Message)
}

func TestPreviewProductsBadHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(product.NewMockRepository(ctrl), customer.NewMockRepository(ctrl), order.NewMockRepository(ctrl))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/products", "Nama,Harga Jual\n\"Brownies\",25000\n"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Biaya Bahan")
}

func TestPreviewOrdersUnknownReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := product.NewMockRepository(ctrl)
	productRepo.EXPECT().
		ListProducts(gomock.Any()).
		Return([]*product.Product{{ID: uuid.New(), Name: "Brownies"}}, nil)

	customerRepo := customer.NewMockRepository(ctrl)
	customerRepo.EXPECT().
		ListCustomers(gomock.Any()).
		Return([]*customer.Customer{{ID: uuid.New(), Name: "Budi"}}, nil)

	router := newRouter(productRepo, customerRepo, order.NewMockRepository(ctrl))

	csv := "Tanggal Order,Produk,Pelanggan,Qty,Total,Status\n\"2024-01-05\",\"Tidak Ada\",\"Budi\",1,10000,\"Menunggu\"\n"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/orders", csv))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tidak Ada")
}

func TestConfirmProductsPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The first create succeeds and must stand; the second fails and
	// stops the loop. No rollback.
	productRepo := product.NewMockRepository(ctrl)
	gomock.InOrder(
		productRepo.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *product.Product) error {
				assert.Equal(t, "Brownies", p.Name)
				return nil
			}),
		productRepo.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			Return(errors.New("db error")),
	)

	router := newRouter(productRepo, customer.NewMockRepository(ctrl), order.NewMockRepository(ctrl))

	body := `{"rows":[
		{"name":"Brownies","price":25000,"materialCost":12000,"otherCost":3000},
		{"name":"Nastar","price":30000,"materialCost":15000,"otherCost":2000},
		{"name":"Keripik","price":10000,"materialCost":4000,"otherCost":1000}
	]}`

	req := httptest.NewRequest(http.MethodPost, "/products/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Created int    `json:"created"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, "db error", result.Error)
}

func TestConfirmCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := customer.NewMockRepository(ctrl)
	customerRepo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	router := newRouter(product.NewMockRepository(ctrl), customerRepo, order.NewMockRepository(ctrl))

	body := `{"rows":[{"name":"Budi","contact":"0812"},{"name":"Sari"}]}`

	req := httptest.NewRequest(http.MethodPost, "/customers/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Created int    `json:"created"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Error)
}
