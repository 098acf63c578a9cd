package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/managher/managher/internal/config"
	"github.com/managher/managher/internal/customer"
	customerStore "github.com/managher/managher/internal/customer/store"
	"github.com/managher/managher/internal/database"
	"github.com/managher/managher/internal/expense"
	expenseStore "github.com/managher/managher/internal/expense/store"
	managherHttp "github.com/managher/managher/internal/http"
	customerHandler "github.com/managher/managher/internal/http/customer"
	expenseHandler "github.com/managher/managher/internal/http/expense"
	exportHandler "github.com/managher/managher/internal/http/export"
	importHandler "github.com/managher/managher/internal/http/importcsv"
	orderHandler "github.com/managher/managher/internal/http/order"
	productHandler "github.com/managher/managher/internal/http/product"
	reportHandler "github.com/managher/managher/internal/http/report"
	"github.com/managher/managher/internal/order"
	orderStore "github.com/managher/managher/internal/order/store"
	"github.com/managher/managher/internal/product"
	productStore "github.com/managher/managher/internal/product/store"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		productService  = product.NewService(productStore.New(db))
		customerService = customer.NewService(customerStore.New(db))
		orderService    = order.NewService(orderStore.New(db))
		expenseService  = expense.NewService(expenseStore.New(db))
	)

	var (
		productH  = productHandler.NewHandler(productService)
		customerH = customerHandler.NewHandler(customerService)
		orderH    = orderHandler.NewHandler(orderService)
		expenseH  = expenseHandler.NewHandler(expenseService)
		reportH   = reportHandler.NewHandler(productService, customerService, orderService)
		exportH   = exportHandler.NewHandler(productService, customerService, orderService)
		importH   = importHandler.NewHandler(productService, customerService, orderService)
	)

	router := managherHttp.New(productH, customerH, orderH, expenseH, reportH, exportH, importH, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
