package components

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/tui/themes"
)

// Expense form focus positions. Position zero is the category selector; the
// remaining positions map to text inputs.
const (
	expenseFieldCategory = iota
	expenseFieldDescription
	expenseFieldDate
	expenseFieldAmount
	expenseFieldCount
)

var expenseFieldLabels = [expenseFieldCount]string{
	"Category",
	"Description",
	"Date",
	"Amount",
}

// ExpenseFormModel is the add/edit expense form. The category is chosen from
// the fixed set with the left/right keys.
type ExpenseFormModel struct {
	theme      themes.Theme
	title      string
	errMsg     string
	categories []model.ExpenseCategory
	inputs     [expenseFieldCount - 1]textinput.Model
	editID     int64
	category   int
	focus      int
}

// NewExpenseForm creates a form for a new expense. The category defaults to
// the first of the fixed set and the date to today.
func NewExpenseForm(theme themes.Theme) ExpenseFormModel {
	m := newExpenseForm(theme)
	m.title = "Add Expense"
	m.inputs[expenseFieldDate-1].SetValue(time.Now().Format(time.DateOnly))
	return m
}

// NewExpenseEditForm creates a form prefilled from an existing expense.
func NewExpenseEditForm(theme themes.Theme, exp model.Expense) ExpenseFormModel {
	m := newExpenseForm(theme)
	m.title = "Edit Expense"
	m.editID = exp.ID
	for i, cat := range m.categories {
		if cat == exp.Category {
			m.category = i
			break
		}
	}
	m.inputs[expenseFieldDescription-1].SetValue(exp.Description)
	m.inputs[expenseFieldDate-1].SetValue(exp.Date.Format(time.DateOnly))
	m.inputs[expenseFieldAmount-1].SetValue(exp.Amount.StringFixed(2))
	return m
}

func newExpenseForm(theme themes.Theme) ExpenseFormModel {
	m := ExpenseFormModel{
		theme:      theme,
		categories: model.Categories(),
	}
	for i := range m.inputs {
		input := textinput.New()
		input.CharLimit = 64
		input.Width = 32
		m.inputs[i] = input
	}
	m.inputs[expenseFieldDescription-1].Placeholder = "What was this for?"
	m.inputs[expenseFieldDate-1].Placeholder = "YYYY-MM-DD"
	m.inputs[expenseFieldAmount-1].Placeholder = "0.00"
	return m
}

// SetError displays a submission error without dismissing the form.
func (m *ExpenseFormModel) SetError(msg string) {
	m.errMsg = msg
}

// Update handles messages.
func (m ExpenseFormModel) Update(msg tea.Msg) (ExpenseFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return FormCancelledMsg{} }

	case "tab", "down":
		return m.moveFocus(1), textinput.Blink

	case "shift+tab", "up":
		return m.moveFocus(-1), textinput.Blink

	case "left", "h":
		if m.focus == expenseFieldCategory {
			m.category = (m.category - 1 + len(m.categories)) % len(m.categories)
			return m, nil
		}

	case "right", "l":
		if m.focus == expenseFieldCategory {
			m.category = (m.category + 1) % len(m.categories)
			return m, nil
		}

	case "enter":
		if m.focus < expenseFieldCount-1 {
			return m.moveFocus(1), textinput.Blink
		}
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m ExpenseFormModel) updateInputs(msg tea.Msg) (ExpenseFormModel, tea.Cmd) {
	if m.focus == expenseFieldCategory {
		return m, nil
	}
	newInput, cmd := m.inputs[m.focus-1].Update(msg)
	m.inputs[m.focus-1] = newInput
	return m, cmd
}

func (m ExpenseFormModel) moveFocus(delta int) ExpenseFormModel {
	if m.focus != expenseFieldCategory {
		m.inputs[m.focus-1].Blur()
	}
	m.focus = (m.focus + delta + expenseFieldCount) % expenseFieldCount
	if m.focus != expenseFieldCategory {
		m.inputs[m.focus-1].Focus()
	}
	return m
}

func (m ExpenseFormModel) submit() (ExpenseFormModel, tea.Cmd) {
	date, err := parseFormDate("date", m.inputs[expenseFieldDate-1].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	amount, err := parseFormAmount("amount", m.inputs[expenseFieldAmount-1].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	draft := model.ExpenseDraft{
		Category:    m.categories[m.category],
		Description: m.inputs[expenseFieldDescription-1].Value(),
		Date:        date,
		Amount:      amount,
	}
	if err := draft.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	id := m.editID
	return m, func() tea.Msg {
		return ExpenseSubmittedMsg{ID: id, Draft: draft}
	}
}

// View renders the form.
func (m ExpenseFormModel) View() string {
	lines := []string{m.theme.Title.Render(m.title), ""}
	labelStyle := lipgloss.NewStyle().Bold(true).Width(14)

	category := m.categories[m.category]
	categoryView := themes.GetCategoryIcon(string(category)) + " " + string(category)
	selector := "‹ " + categoryView + " ›"
	if m.focus == expenseFieldCategory {
		selector = m.theme.Highlighted.Render(selector)
	}
	lines = append(lines, labelStyle.Render(expenseFieldLabels[expenseFieldCategory]+":")+" "+selector)

	for i, input := range m.inputs {
		lines = append(lines, labelStyle.Render(expenseFieldLabels[i+1]+":")+" "+input.View())
	}
	lines = append(lines, "")
	if m.errMsg != "" {
		lines = append(lines, m.theme.StatusError.Render(m.errMsg))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("Enter: save · Tab: next field · ←/→: category · Esc: cancel"))

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
