package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/google/uuid"

	"github.com/managher/managher/internal/customer"
	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
)

type ordersState int

const (
	ordersStateBrowse ordersState = iota
	ordersStateEdit
)

var orderStatuses = []order.Status{
	order.StatusWaiting,
	order.StatusShipped,
	order.StatusDone,
	order.StatusCancelled,
}

type OrdersModel struct {
	CommonModel
	orderSvc    *order.Service
	productSvc  *product.Service
	customerSvc *customer.Service

	state         ordersState
	table         table.Model
	orders        []*order.Order
	productNames  map[uuid.UUID]string
	customerNames map[uuid.UUID]string
	form          *huh.Form

	statusFilterIdx int
	filter          order.ListFilter

	loading bool
	err     error
	status  string

	formStatus string
}

func NewOrdersModel(orderSvc *order.Service, productSvc *product.Service, customerSvc *customer.Service) OrdersModel {
	columns := []table.Column{
		{Title: "Tanggal", Width: 12},
		{Title: "Produk", Width: 24},
		{Title: "Pelanggan", Width: 20},
		{Title: "Qty", Width: 5},
		{Title: "Total", Width: 14},
		{Title: "Status", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return OrdersModel{
		orderSvc:    orderSvc,
		productSvc:  productSvc,
		customerSvc: customerSvc,
		table:       t,
		loading:     true,
	}
}

func (m OrdersModel) Title() string { return "Order" }
func (m OrdersModel) ShortHelp() string {
	if m.state == ordersStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: ubah status | s: filter status | r: refresh"
}

func (m OrdersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m OrdersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.orders = msg.orders
		m.productNames = msg.productNames
		m.customerNames = msg.customerNames
		m.status = ""
		m.refreshTable()

		return m, nil

	case orderSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}

		m.state = ordersStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ordersStateBrowse:
		return m.updateBrowse(msg)
	case ordersStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m OrdersModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.enterEditMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(orderStatuses) + 1)
			m.applyFilter()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *OrdersModel) applyFilter() {
	if m.statusFilterIdx == 0 {
		m.filter.Status = nil
		return
	}

	m.filter.Status = &orderStatuses[m.statusFilterIdx-1]
}

func (m OrdersModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.orders) {
		return m, nil
	}

	m.formStatus = string(m.orders[idx].Status)

	options := make([]huh.Option[string], 0, len(orderStatuses))
	for _, s := range orderStatuses {
		options = append(options, huh.NewOption(string(s), string(s)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("status").
				Title("Status Order").
				Options(options...).
				Value(&m.formStatus),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = ordersStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m OrdersModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ordersStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m OrdersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading orders...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filterLabel := "Semua"
	if m.statusFilterIdx > 0 {
		filterLabel = string(orderStatuses[m.statusFilterIdx-1])
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(filterLabel))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == ordersStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *OrdersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.orders))

	for _, o := range m.orders {
		productName, ok := m.productNames[o.ProductID]
		if !ok {
			productName = "—"
		}

		customerName, ok := m.customerNames[o.CustomerID]
		if !ok {
			customerName = "—"
		}

		rows = append(rows, table.Row{
			FormatDate(o.Date),
			productName,
			customerName,
			fmt.Sprintf("%d", o.Quantity),
			FormatRupiah(o.Total),
			string(o.Status),
		})
	}
	m.table.SetRows(rows)
}

type ordersLoadedMsg struct {
	orders        []*order.Order
	productNames  map[uuid.UUID]string
	customerNames map[uuid.UUID]string
	err           error
}

func (m OrdersModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		orders, err := m.orderSvc.List(ctx, filter)
		if err != nil {
			return ordersLoadedMsg{err: err}
		}

		products, err := m.productSvc.List(ctx)
		if err != nil {
			return ordersLoadedMsg{err: err}
		}

		customers, err := m.customerSvc.List(ctx)
		if err != nil {
			return ordersLoadedMsg{err: err}
		}

		productNames := make(map[uuid.UUID]string, len(products))
		for _, p := range products {
			productNames[p.ID] = p.Name
		}

		customerNames := make(map[uuid.UUID]string, len(customers))
		for _, c := range customers {
			customerNames[c.ID] = c.Name
		}

		return ordersLoadedMsg{
			orders:        orders,
			productNames:  productNames,
			customerNames: customerNames,
		}
	}
}

type orderSavedMsg struct {
	err error
}

func (m OrdersModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.orders) {
		return nil
	}

	id := m.orders[idx].ID
	status := order.Status(m.formStatus)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return orderSavedMsg{err: m.orderSvc.UpdateStatus(ctx, id, status)}
	}
}
