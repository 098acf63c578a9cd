package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/dashboard"
	"github.com/managher/managher/internal/expense"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

type DashboardModel struct {
	CommonModel
	productSvc  *product.Service
	customerSvc *customer.Service
	orderSvc    *order.Service
	expenseSvc  *expense.Service

	metrics  dashboard.Metrics
	expenses float64
	loading  bool
	err      error
}

func NewDashboardModel(productSvc *product.Service, customerSvc *customer.Service, orderSvc *order.Service, expenseSvc *expense.Service) DashboardModel {
	return DashboardModel{
		productSvc:  productSvc,
		customerSvc: customerSvc,
		orderSvc:    orderSvc,
		expenseSvc:  expenseSvc,
		loading:     true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.metrics = msg.metrics
		m.expenses = msg.expenses

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	profitLabel := "Untung"
	profitColor := lipgloss.Color("46")
	if !m.metrics.IsProfit() {
		profitLabel = "Rugi"
		profitColor = lipgloss.Color("196")
	}

	summary := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Produk:     %d", m.metrics.TotalProducts),
		fmt.Sprintf("Pelanggan:  %d", m.metrics.TotalCustomers),
		fmt.Sprintf("Order:      %d  (selesai %d, menunggu %d)", m.metrics.TotalOrders, m.metrics.CompletedCount, m.metrics.WaitingCount),
		"",
		fmt.Sprintf("Pendapatan:  %s", FormatRupiah(m.metrics.TotalRevenue)),
		fmt.Sprintf("Biaya:       %s", FormatRupiah(m.metrics.TotalCost)),
		fmt.Sprintf("Pengeluaran: %s", FormatRupiah(m.expenses)),
		lipgloss.NewStyle().Foreground(profitColor).Render(
			fmt.Sprintf("%s:      %s", profitLabel, FormatRupiah(m.metrics.NetProfit)),
		),
	)

	content := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(summary)

	if len(m.metrics.LowStock) > 0 {
		lines := "Stok menipis:\n"
		for _, p := range m.metrics.LowStock {
			lines += fmt.Sprintf("  %s (%d)\n", p.Name, p.Stock)
		}

		warn := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Render(lines)

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, warn)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type dashboardLoadedMsg struct {
	metrics  dashboard.Metrics
	expenses float64
	err      error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		products, err := m.productSvc.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		customers, err := m.customerSvc.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		orders, err := m.orderSvc.List(ctx, order.ListFilter{})
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		expenses, err := m.expenseSvc.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			metrics:  dashboard.Compute(products, len(customers), orders),
			expenses: expense.TotalSpent(expenses),
		}
	}
}
