package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/managher/managher/internal/http/customer"
	"github.com/managher/managher/internal/http/expense"
	"github.com/managher/managher/internal/http/export"
	"github.com/managher/managher/internal/http/importcsv"
	"github.com/managher/managher/internal/http/order"
	"github.com/managher/managher/internal/http/product"
	"github.com/managher/managher/internal/http/report"
)

func New(
	productsV1 *product.Handler,
	customersV1 *customer.Handler,
	ordersV1 *order.Handler,
	expensesV1 *expense.Handler,
	reportsV1 *report.Handler,
	exportV1 *export.Handler,
	importV1 *importcsv.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			productsV1.Routes(r)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			customersV1.Routes(r)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ordersV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/export", exportV1.Routes)

		// Import takes multipart uploads on preview and JSON on
		// confirm, so no content-type gate here.
		r.Route("/import", importV1.Routes)
	})

	return router
}
