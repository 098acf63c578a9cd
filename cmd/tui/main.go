package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/managher/managher/cmd/tui/internal/view"
	"github.com/managher/managher/internal/config"
	"github.com/managher/managher/internal/customer"
	customerStore "github.com/managher/managher/internal/customer/store"
	"github.com/managher/managher/internal/database"
	"github.com/managher/managher/internal/expense"
	expenseStore "github.com/managher/managher/internal/expense/store"
	"github.com/managher/managher/internal/order"
	orderStore "github.com/managher/managher/internal/order/store"
	"github.com/managher/managher/internal/product"
	productStore "github.com/managher/managher/internal/product/store"
)

type model struct {
	productService  *product.Service
	customerService *customer.Service
	orderService    *order.Service
	expenseService  *expense.Service

	currentView View

	dashboardView view.DashboardModel
	reportView    view.ReportModel
	ordersView    view.OrdersModel
	importView    view.ImportModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewReport    View = 2
	ViewOrders    View = 3
	ViewImport    View = 4
	ViewExport    View = 5
)

func initialModel() model {
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

	productSvc := product.NewService(productStore.New(db))
	customerSvc := customer.NewService(customerStore.New(db))
	orderSvc := order.NewService(orderStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db))

	return model{
		productService:  productSvc,
		customerService: customerSvc,
		orderService:    orderSvc,
		expenseService:  expenseSvc,
		currentView:     ViewMenu,
		dashboardView:   view.NewDashboardModel(productSvc, customerSvc, orderSvc, expenseSvc),
		reportView:      view.NewReportModel(productSvc, orderSvc),
		ordersView:      view.NewOrdersModel(orderSvc, productSvc, customerSvc),
		importView:      view.NewImportModel(productSvc, customerSvc, orderSvc),
		exportView:      view.NewExportModel(productSvc, customerSvc, orderSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.productService, m.customerService, m.orderService, m.expenseService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewReport
				m.reportView = view.NewReportModel(m.productService, m.orderService)

				return m, m.reportView.Init()
			case "3":
				m.currentView = ViewOrders
				m.ordersView = view.NewOrdersModel(m.orderService, m.productService, m.customerService)

				return m, m.ordersView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.productService, m.customerService, m.orderService)

				return m, m.importView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.productService, m.customerService, m.orderService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewOrders:
		var newModel tea.Model
		newModel, cmd = m.ordersView.Update(msg)
		m.ordersView = newModel.(view.OrdersModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"ManagHer TUI\n\n" +
				"1. Dashboard\n" +
				"2. Laporan Laba Rugi\n" +
				"3. Order\n" +
				"4. Import CSV\n" +
				"5. Export CSV\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewOrders:
		return m.ordersView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
