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

// ExpenseTableModel manages the expense table view with its search box.
type ExpenseTableModel struct {
	theme       themes.Theme
	expenses    []model.Expense
	searchInput textinput.Model
	table       table.Model
	width       int
	height      int
	searching   bool
}

// NewExpenseTable creates an empty expense table.
func NewExpenseTable(theme themes.Theme) ExpenseTableModel {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Category", Width: 18},
		{Title: "Description", Width: 30},
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles(theme))

	searchInput := textinput.New()
	searchInput.Placeholder = "Search by description..."
	searchInput.CharLimit = 50
	searchInput.Width = 40

	return ExpenseTableModel{
		theme:       theme,
		table:       t,
		searchInput: searchInput,
	}
}

// SetExpenses replaces the displayed snapshot, clamping the cursor.
func (m *ExpenseTableModel) SetExpenses(expenses []model.Expense) {
	m.expenses = expenses
	rows := make([]table.Row, 0, len(expenses))
	for _, exp := range expenses {
		rows = append(rows, table.Row{
			strconv.FormatInt(exp.ID, 10),
			themes.GetCategoryIcon(string(exp.Category)) + " " + string(exp.Category),
			exp.Description,
			exp.Date.Format(time.DateOnly),
			exp.Amount.StringFixed(2),
		})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the expense under the cursor.
func (m ExpenseTableModel) Selected() (model.Expense, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.expenses) {
		return model.Expense{}, false
	}
	return m.expenses[cursor], true
}

// Query returns the current search query.
func (m ExpenseTableModel) Query() string {
	return m.searchInput.Value()
}

// Searching reports whether the search box has focus.
func (m ExpenseTableModel) Searching() bool {
	return m.searching
}

// Update handles messages.
func (m ExpenseTableModel) Update(msg tea.Msg) (ExpenseTableModel, tea.Cmd) {
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
					cmds = append(cmds, queryChanged(ExpenseQueryChangedMsg{Query: after}))
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
func (m *ExpenseTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	m.table.SetHeight(max(height-2, 3))
}

// View renders the table with its search line.
func (m ExpenseTableModel) View() string {
	var searchLine string
	switch {
	case m.searching:
		searchLine = m.searchInput.View()
	case m.searchInput.Value() != "":
		searchLine = lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Filter: " + m.searchInput.Value())
	default:
		searchLine = lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Press / to search by description")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		searchLine,
		m.table.View(),
	)
}
