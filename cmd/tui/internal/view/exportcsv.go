package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/managher/managher/internal/csvio"
	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
	"github.com/managher/managher/internal/profitloss"
)

type exportEntity int

const (
	exportEntityProducts exportEntity = iota
	exportEntityCustomers
	exportEntityOrders
	exportEntityProfitLoss
)

func (e exportEntity) String() string {
	switch e {
	case exportEntityProducts:
		return "Produk"
	case exportEntityCustomers:
		return "Pelanggan"
	case exportEntityOrders:
		return "Order"
	case exportEntityProfitLoss:
		return "Laporan Laba Rugi"
	}

	return "Unknown"
}

func (e exportEntity) filename() string {
	switch e {
	case exportEntityProducts:
		return csvio.FilenameProducts
	case exportEntityCustomers:
		return csvio.FilenameCustomers
	case exportEntityOrders:
		return csvio.FilenameOrders
	case exportEntityProfitLoss:
		return csvio.FilenameProfitLoss
	}

	return "export.csv"
}

type exportState int

const (
	exportStateEntitySelect exportState = iota
	exportStatePath
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	CommonModel
	productSvc  *product.Service
	customerSvc *customer.Service
	orderSvc    *order.Service

	state        exportState
	entityCursor exportEntity
	form         *huh.Form
	path         string

	status string
	err    error
}

func NewExportModel(productSvc *product.Service, customerSvc *customer.Service, orderSvc *order.Service) ExportModel {
	return ExportModel{
		productSvc:  productSvc,
		customerSvc: customerSvc,
		orderSvc:    orderSvc,
		path:        "./exports",
	}
}

func (m ExportModel) Title() string { return "Export CSV" }

func (m ExportModel) ShortHelp() string {
	if m.state == exportStateResult {
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			switch m.state {
			case exportStatePath:
				m.state = exportStateEntitySelect
				m.form = nil

				return m, nil
			default:
				return m, Back
			}
		}

		if m.state == exportStateEntitySelect {
			return m.updateEntitySelect(msg)
		}

	case exportDoneMsg:
		m.state = exportStateResult
		m.err = msg.err
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Tersimpan di %s", msg.path)
		}

		return m, nil
	}

	if m.state != exportStatePath || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting

	return m, m.runExportCmd()
}

func (m ExportModel) updateEntitySelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.entityCursor > exportEntityProducts {
			m.entityCursor--
		}
	case "down", "j":
		if m.entityCursor < exportEntityProfitLoss {
			m.entityCursor++
		}
	case "enter":
		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Key("path").
					Title("Folder tujuan").
					Description("Dibuat kalau belum ada").
					Placeholder("./exports").
					Value(&m.path),
			),
		).WithWidth(50).WithShowHelp(false)
		m.state = exportStatePath

		return m, m.form.Init()
	}

	return m, nil
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateEntitySelect:
		s := "Export data apa?\n\n"
		for e := exportEntityProducts; e <= exportEntityProfitLoss; e++ {
			cursor := " "
			if m.entityCursor == e {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, e.String())
		}
		s += "\n(Enter untuk pilih, Esc kembali)"

		return lipgloss.NewStyle().Padding(1).Render(s)

	case exportStatePath:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render("Menulis file...")

	case exportStateResult:
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
		if m.err != nil {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		}

		return lipgloss.NewStyle().Padding(1).Render(style.Render(m.status))
	}

	return ""
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m ExportModel) runExportCmd() tea.Cmd {
	entity := m.entityCursor
	dir := m.path

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var body string

		switch entity {
		case exportEntityProducts:
			products, err := m.productSvc.List(ctx)
			if err != nil {
				return exportDoneMsg{err: err}
			}

			body = csvio.ExportProducts(products)

		case exportEntityCustomers:
			customers, err := m.customerSvc.List(ctx)
			if err != nil {
				return exportDoneMsg{err: err}
			}

			body = csvio.ExportCustomers(customers)

		case exportEntityOrders:
			orders, products, customers, err := m.loadAll(ctx)
			if err != nil {
				return exportDoneMsg{err: err}
			}

			body = csvio.ExportOrders(orders, products, customers)

		case exportEntityProfitLoss:
			orders, products, _, err := m.loadAll(ctx)
			if err != nil {
				return exportDoneMsg{err: err}
			}

			body = csvio.ExportProfitLoss(profitloss.ComputeLines(orders, products))
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: err}
		}

		path := filepath.Join(dir, entity.filename())
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path}
	}
}

func (m ExportModel) loadAll(ctx context.Context) ([]*order.Order, []*product.Product, []*customer.Customer, error) {
	orders, err := m.orderSvc.List(ctx, order.ListFilter{})
	if err != nil {
		return nil, nil, nil, err
	}

	products, err := m.productSvc.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	customers, err := m.customerSvc.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	return orders, products, customers, nil
}
