package components

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/tui/themes"
)

// InvoiceTableModel manages the invoice table view with its search box. It
// holds only the snapshot handed to it by SetInvoices; the application
// re-queries the session and refreshes the snapshot after every mutation.
type InvoiceTableModel struct {
	theme       themes.Theme
	invoices    []model.Invoice
	searchInput textinput.Model
	table       table.Model
	width       int
	height      int
	searching   bool
}

// NewInvoiceTable creates an empty invoice table.
func NewInvoiceTable(theme themes.Theme) InvoiceTableModel {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Customer", Width: 24},
		{Title: "Invoice Date", Width: 12},
		{Title: "Due Date", Width: 12},
		{Title: "Amount", Width: 12},
		{Title: "Status", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles(theme))

	searchInput := textinput.New()
	searchInput.Placeholder = "Search by customer..."
	searchInput.CharLimit = 50
	searchInput.Width = 40

	return InvoiceTableModel{
		theme:       theme,
		table:       t,
		searchInput: searchInput,
	}
}

// SetInvoices replaces the displayed snapshot, clamping the cursor.
func (m *InvoiceTableModel) SetInvoices(invoices []model.Invoice) {
	m.invoices = invoices
	rows := make([]table.Row, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, table.Row{
			strconv.FormatInt(inv.ID, 10),
			inv.Customer,
			inv.InvoiceDate.Format(time.DateOnly),
			inv.DueDate.Format(time.DateOnly),
			inv.Amount.StringFixed(2),
			string(inv.Status),
		})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the invoice under the cursor.
func (m InvoiceTableModel) Selected() (model.Invoice, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.invoices) {
		return model.Invoice{}, false
	}
	return m.invoices[cursor], true
}

// Query returns the current search query.
func (m InvoiceTableModel) Query() string {
	return m.searchInput.Value()
}

// Searching reports whether the search box has focus.
func (m InvoiceTableModel) Searching() bool {
	return m.searching
}

// Update handles messages.
func (m InvoiceTableModel) Update(msg tea.Msg) (InvoiceTableModel, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.searching {
			switch keyMsg.String() {
			case "enter", "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			default:
				before := m.searchInput.Value()
				newInput, cmd := m.searchInput.Update(msg)
				m.searchInput = newInput
				cmds = append(cmds, cmd)
				if after := m.searchInput.Value(); after != before {
					cmds = append(cmds, queryChanged(InvoiceQueryChangedMsg{Query: after}))
				}
				return m, tea.Batch(cmds...)
			}
		}

		if keyMsg.String() == "/" {
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	newTable, cmd := m.table.Update(msg)
	m.table = newTable
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Resize updates the component size.
func (m *InvoiceTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	m.table.SetHeight(max(height-2, 3))
}

// View renders the table with its search line.
func (m InvoiceTableModel) View() string {
	var searchLine string
	switch {
	case m.searching:
		searchLine = m.searchInput.View()
	case m.searchInput.Value() != "":
		searchLine = lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Filter: " + m.searchInput.Value())
	default:
		searchLine = lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Press / to search by customer")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		searchLine,
		m.table.View(),
	)
}

func queryChanged(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func tableStyles(theme themes.Theme) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	return s
}
