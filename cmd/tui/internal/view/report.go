package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/managher/managher/internal/order"
	"github.com/managher/managher/internal/product"
	"github.com/managher/managher/internal/profitloss"
)

type ReportModel struct {
	CommonModel
	productSvc *product.Service
	orderSvc   *order.Service

	table table.Model
	lines []profitloss.Line

	sortIdx       int
	dateFilterIdx int

	loading bool
	err     error
}

var reportSortKeys = []profitloss.SortKey{profitloss.SortByDate, profitloss.SortByRevenue, profitloss.SortByProfit}

func NewReportModel(productSvc *product.Service, orderSvc *order.Service) ReportModel {
	columns := []table.Column{
		{Title: "Tanggal", Width: 12},
		{Title: "Produk", Width: 28},
		{Title: "Qty", Width: 5},
		{Title: "Pendapatan", Width: 14},
		{Title: "Biaya Bahan", Width: 14},
		{Title: "Biaya Lain", Width: 14},
		{Title: "Laba", Width: 14},
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

	return ReportModel{
		productSvc: productSvc,
		orderSvc:   orderSvc,
		table:      t,
		loading:    true,
	}
}

func (m ReportModel) Title() string { return "Laporan Laba Rugi" }
func (m ReportModel) ShortHelp() string {
	return "Esc: back | s: sort | d: date filter | r: refresh"
}

func (m ReportModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.lines = msg.lines
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.sortIdx = (m.sortIdx + 1) % len(reportSortKeys)
			m.refreshTable()

			return m, nil
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// dateFilter maps the cycling presets onto inclusive YYYY-MM-DD bounds.
func (m ReportModel) dateFilter() profitloss.Filter {
	now := time.Now()

	switch m.dateFilterIdx {
	case 1:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return profitloss.Filter{
			DateStart: start.Format(time.DateOnly),
			DateEnd:   now.Format(time.DateOnly),
		}
	case 2:
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, -1)
		return profitloss.Filter{
			DateStart: start.Format(time.DateOnly),
			DateEnd:   end.Format(time.DateOnly),
		}
	}

	return profitloss.Filter{}
}

func (m *ReportModel) refreshTable() {
	sorted := profitloss.SortLines(m.lines, reportSortKeys[m.sortIdx])

	rows := make([]table.Row, 0, len(sorted))
	for _, l := range sorted {
		rows = append(rows, table.Row{
			l.Date,
			l.ProductName,
			fmt.Sprintf("%d", l.Quantity),
			FormatRupiah(l.Revenue),
			FormatRupiah(l.MaterialCost),
			FormatRupiah(l.OtherCost),
			FormatRupiah(l.Profit),
		})
	}
	m.table.SetRows(rows)
}

func (m ReportModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading report...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	sortLabels := []string{"Tanggal", "Pendapatan", "Laba"}
	dateLabels := []string{"Semua", "Bulan Ini", "Bulan Lalu"}

	header := fmt.Sprintf(
		"Filter: [s] Urut: %s | [d] Periode: %s",
		activeStyle(sortLabels[m.sortIdx]),
		activeStyle(dateLabels[m.dateFilterIdx]),
	)

	summary := profitloss.Summarize(m.lines)

	label := "Untung"
	color := lipgloss.Color("46")
	if !summary.IsProfit() {
		label = "Rugi"
		color = lipgloss.Color("196")
	}

	footer := fmt.Sprintf(
		"Pendapatan %s | Biaya %s | %s",
		FormatRupiah(summary.TotalRevenue),
		FormatRupiah(summary.TotalMaterial+summary.TotalOther),
		lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s %s", label, FormatRupiah(summary.TotalProfit))),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
			lipgloss.NewStyle().PaddingTop(1).Render(footer),
		),
	)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

type reportLoadedMsg struct {
	lines []profitloss.Line
	err   error
}

func (m ReportModel) loadCmd() tea.Cmd {
	filter := m.dateFilter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		orders, err := m.orderSvc.List(ctx, order.ListFilter{})
		if err != nil {
			return reportLoadedMsg{err: err}
		}

		products, err := m.productSvc.List(ctx)
		if err != nil {
			return reportLoadedMsg{err: err}
		}

		lines := profitloss.FilterLines(profitloss.ComputeLines(orders, products), filter)

		return reportLoadedMsg{lines: lines}
	}
}
