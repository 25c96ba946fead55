package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/report"
	"github.com/tallyhq/tally/internal/tui/themes"
)

// DashboardModel renders the financial summary bar chart and the
// paid/unpaid invoice share.
type DashboardModel struct {
	theme   themes.Theme
	summary report.Summary
	paidBar progress.Model
	width   int
	height  int
}

// NewDashboard creates an empty dashboard.
func NewDashboard(theme themes.Theme) DashboardModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	bar.Width = 40

	return DashboardModel{
		theme:   theme,
		paidBar: bar,
	}
}

// SetSummary replaces the displayed summary snapshot.
func (m *DashboardModel) SetSummary(s report.Summary) {
	m.summary = s
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Resize(sizeMsg.Width, sizeMsg.Height)
	}
	return m, nil
}

// Resize updates the component size.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.paidBar.Width = min(max(width-24, 10), 50)
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderSummaryChart(),
		"",
		m.renderInvoiceStatus(),
	)
}

// renderSummaryChart renders a horizontal bar chart of the four headline
// aggregates, each bar annotated with its value.
func (m DashboardModel) renderSummaryChart() string {
	s := m.summary
	bars := []struct {
		label string
		color lipgloss.Color
		value decimal.Decimal
	}{
		{label: "Total Invoiced", color: m.theme.Info, value: s.TotalInvoiced},
		{label: "Total Paid", color: m.theme.Success, value: s.TotalPaid},
		{label: "Total Expenses", color: m.theme.Warning, value: s.TotalExpenses},
		{label: "Net Profit", color: profitColor(m.theme, s.NetProfit), value: s.NetProfit},
	}

	maxAbs := decimal.Zero
	for _, b := range bars {
		if abs := b.value.Abs(); abs.GreaterThan(maxAbs) {
			maxAbs = abs
		}
	}

	chartWidth := min(max(m.width-40, 10), 40)
	lines := []string{m.theme.Subtitle.Render("Financial Summary")}
	for _, b := range bars {
		bar := renderBar(b.value, maxAbs, chartWidth)
		line := fmt.Sprintf("%-15s %s %s",
			b.label,
			lipgloss.NewStyle().Foreground(b.color).Render(bar),
			m.theme.Normal.Render("$"+b.value.StringFixed(2)),
		)
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderInvoiceStatus renders the paid versus unpaid share of invoices.
func (m DashboardModel) renderInvoiceStatus() string {
	s := m.summary
	title := m.theme.Subtitle.Render("Invoice Status")

	total := s.InvoiceCount()
	if total == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No invoice data"),
		)
	}

	paidShare := s.PaidShare()
	counts := fmt.Sprintf("%s %d (%.1f%%)   %s %d (%.1f%%)",
		m.theme.StatusSuccess.Render("Paid:"),
		s.PaidCount,
		paidShare*100,
		m.theme.StatusError.Render("Unpaid:"),
		s.UnpaidCount,
		(1-paidShare)*100,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.paidBar.ViewAs(paidShare),
		counts,
	)
}

// renderBar scales value against maxAbs into a bar of at most width cells.
// Any non-zero value gets at least one cell.
func renderBar(value, maxAbs decimal.Decimal, width int) string {
	if maxAbs.IsZero() || value.IsZero() {
		return strings.Repeat("·", width)
	}
	ratio, _ := value.Abs().Div(maxAbs).Float64()
	cells := int(ratio * float64(width))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return strings.Repeat("█", cells) + strings.Repeat("·", width-cells)
}

func profitColor(theme themes.Theme, profit decimal.Decimal) lipgloss.Color {
	if profit.IsNegative() {
		return theme.Error
	}
	return theme.Success
}
