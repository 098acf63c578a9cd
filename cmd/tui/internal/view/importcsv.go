package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/managher/managher/internal/csvio"
	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

type importEntity int

const (
	importEntityProducts importEntity = iota
	importEntityCustomers
	importEntityOrders
)

func (e importEntity) String() string {
	switch e {
	case importEntityProducts:
		return "Produk"
	case importEntityCustomers:
		return "Pelanggan"
	case importEntityOrders:
		return "Order"
	}

	return "Unknown"
}

type importState int

const (
	importStateEntitySelect importState = iota
	importStateFilePick
	importStatePreview
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	productSvc  *product.Service
	customerSvc *customer.Service
	orderSvc    *order.Service

	state        importState
	entityCursor importEntity
	filePicker   filepicker.Model

	productRows  []product.CreateParams
	customerRows []customer.CreateParams
	orderRows    []order.CreateParams
	previewLines []string

	status string
	err    error
}

func NewImportModel(productSvc *product.Service, customerSvc *customer.Service, orderSvc *order.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{".csv"}
	fp.SetHeight(15)

	return ImportModel{
		productSvc:  productSvc,
		customerSvc: customerSvc,
		orderSvc:    orderSvc,
		filePicker:  fp,
	}
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStatePreview:
		return "Enter: import | Esc: cancel"
	case importStateResult:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		switch m.state {
		case importStateEntitySelect:
			return m.updateEntitySelect(msg)
		case importStatePreview:
			if msg.Type == tea.KeyEnter {
				m.state = importStateImporting
				return m, m.confirmCmd()
			}

			return m, nil
		case importStateResult:
			return m, nil
		}

	case previewReadyMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.productRows = msg.products
		m.customerRows = msg.customers
		m.orderRows = msg.orders
		m.previewLines = msg.lines

		if len(m.previewLines) == 0 {
			m.state = importStateResult
			m.status = "File tidak berisi baris data yang bisa diimport."

			return m, nil
		}

		m.state = importStatePreview

		return m, nil

	case importDoneMsg:
		m.state = importStateResult
		m.err = msg.err
		if msg.err != nil {
			m.status = fmt.Sprintf("Berhasil import %d baris, lalu gagal: %v", msg.created, msg.err)
		} else {
			m.status = fmt.Sprintf("Berhasil import %d baris.", msg.created)
		}

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if ok, path := m.filePicker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, m.previewCmd(path))
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateEntitySelect, importStateResult:
		return m, Back
	case importStateFilePick:
		m.state = importStateEntitySelect
		return m, nil
	case importStatePreview:
		m.state = importStateFilePick
		return m, nil
	}

	return m, nil
}

func (m ImportModel) updateEntitySelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.entityCursor > importEntityProducts {
			m.entityCursor--
		}
	case "down", "j":
		if m.entityCursor < importEntityOrders {
			m.entityCursor++
		}
	case "enter":
		m.state = importStateFilePick
		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateEntitySelect:
		s := "Import data apa?\n\n"
		for e := importEntityProducts; e <= importEntityOrders; e++ {
			cursor := " "
			if m.entityCursor == e {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, e.String())
		}
		s += "\n(Enter untuk pilih, Esc kembali)"

		return lipgloss.NewStyle().Padding(1).Render(s)

	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Pilih file CSV %s:\n\n%s", m.entityCursor.String(), m.filePicker.View()),
		)

	case importStatePreview:
		limit := len(m.previewLines)
		if limit > 15 {
			limit = 15
		}

		s := fmt.Sprintf("Preview %s (%d baris):\n\n", m.entityCursor.String(), len(m.previewLines))
		for _, line := range m.previewLines[:limit] {
			s += "  " + line + "\n"
		}

		if limit < len(m.previewLines) {
			s += fmt.Sprintf("  ... dan %d baris lagi\n", len(m.previewLines)-limit)
		}

		s += "\n(Enter untuk import, Esc batal)"

		return lipgloss.NewStyle().Padding(1).Render(s)

	case importStateImporting:
		return lipgloss.NewStyle().Padding(1).Render("Mengimport...")

	case importStateResult:
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
		if m.err != nil {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		}

		return lipgloss.NewStyle().Padding(1).Render(style.Render(m.status))
	}

	return ""
}

type previewReadyMsg struct {
	products  []product.CreateParams
	customers []customer.CreateParams
	orders    []order.CreateParams
	lines     []string
	err       error
}

func (m ImportModel) previewCmd(path string) tea.Cmd {
	entity := m.entityCursor

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return previewReadyMsg{err: err}
		}
		defer f.Close()

		switch entity {
		case importEntityProducts:
			rows, err := csvio.ParseProducts(f)
			if err != nil {
				return previewReadyMsg{err: err}
			}

			lines := make([]string, 0, len(rows))
			for _, r := range rows {
				lines = append(lines, fmt.Sprintf("%s  %s", r.Name, FormatRupiah(r.Price)))
			}

			return previewReadyMsg{products: rows, lines: lines}

		case importEntityCustomers:
			rows, err := csvio.ParseCustomers(f)
			if err != nil {
				return previewReadyMsg{err: err}
			}

			lines := make([]string, 0, len(rows))
			for _, r := range rows {
				lines = append(lines, fmt.Sprintf("%s  %s", r.Name, r.Contact))
			}

			return previewReadyMsg{customers: rows, lines: lines}

		case importEntityOrders:
			ctx, cancel := DbCtx()
			defer cancel()

			products, err := m.productSvc.List(ctx)
			if err != nil {
				return previewReadyMsg{err: err}
			}

			customers, err := m.customerSvc.List(ctx)
			if err != nil {
				return previewReadyMsg{err: err}
			}

			rows, err := csvio.ParseOrders(f, products, customers)
			if err != nil {
				return previewReadyMsg{err: err}
			}

			lines := make([]string, 0, len(rows))
			for _, r := range rows {
				lines = append(lines, fmt.Sprintf("%s  qty %d  %s  %s", FormatDate(r.Date), r.Quantity, FormatRupiah(r.Total), r.Status))
			}

			return previewReadyMsg{orders: rows, lines: lines}
		}

		return previewReadyMsg{err: fmt.Errorf("unknown entity")}
	}
}

type importDoneMsg struct {
	created int
	err     error
}

// confirmCmd applies the previewed rows one at a time. There is no
// rollback: a failure partway through keeps what was already created
// and reports both the count and the error.
func (m ImportModel) confirmCmd() tea.Cmd {
	entity := m.entityCursor
	productRows := m.productRows
	customerRows := m.customerRows
	orderRows := m.orderRows

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var created int

		switch entity {
		case importEntityProducts:
			for _, r := range productRows {
				if _, err := m.productSvc.Create(ctx, r); err != nil {
					return importDoneMsg{created: created, err: err}
				}

				created++
			}
		case importEntityCustomers:
			for _, r := range customerRows {
				if _, err := m.customerSvc.Create(ctx, r); err != nil {
					return importDoneMsg{created: created, err: err}
				}

				created++
			}
		case importEntityOrders:
			for _, r := range orderRows {
				if _, err := m.orderSvc.Create(ctx, r); err != nil {
					return importDoneMsg{created: created, err: err}
				}

				created++
			}
		}

		return importDoneMsg{created: created}
	}
}
