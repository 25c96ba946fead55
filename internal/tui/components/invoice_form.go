package components

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/tui/themes"
)

const (
	invoiceFieldCustomer = iota
	invoiceFieldInvoiceDate
	invoiceFieldDueDate
	invoiceFieldAmount
	invoiceFieldCount
)

var invoiceFieldLabels = [invoiceFieldCount]string{
	"Customer",
	"Invoice Date",
	"Due Date",
	"Amount",
}

// InvoiceFormModel is the add/edit invoice form. A failed submission keeps
// the entered values and shows the error inline.
type InvoiceFormModel struct {
	theme  themes.Theme
	title  string
	errMsg string
	inputs [invoiceFieldCount]textinput.Model
	editID int64
	focus  int
}

// NewInvoiceForm creates a form for a new invoice. The invoice date defaults
// to today and the due date to today plus dueDays.
func NewInvoiceForm(theme themes.Theme, dueDays int) InvoiceFormModel {
	m := newInvoiceForm(theme)
	m.title = "Add Invoice"
	now := time.Now()
	m.inputs[invoiceFieldInvoiceDate].SetValue(now.Format(time.DateOnly))
	m.inputs[invoiceFieldDueDate].SetValue(now.AddDate(0, 0, dueDays).Format(time.DateOnly))
	return m
}

// NewInvoiceEditForm creates a form prefilled from an existing invoice.
func NewInvoiceEditForm(theme themes.Theme, inv model.Invoice) InvoiceFormModel {
	m := newInvoiceForm(theme)
	m.title = "Edit Invoice"
	m.editID = inv.ID
	m.inputs[invoiceFieldCustomer].SetValue(inv.Customer)
	m.inputs[invoiceFieldInvoiceDate].SetValue(inv.InvoiceDate.Format(time.DateOnly))
	m.inputs[invoiceFieldDueDate].SetValue(inv.DueDate.Format(time.DateOnly))
	m.inputs[invoiceFieldAmount].SetValue(inv.Amount.StringFixed(2))
	return m
}

func newInvoiceForm(theme themes.Theme) InvoiceFormModel {
	m := InvoiceFormModel{theme: theme}
	for i := range m.inputs {
		input := textinput.New()
		input.CharLimit = 64
		input.Width = 32
		m.inputs[i] = input
	}
	m.inputs[invoiceFieldCustomer].Placeholder = "Customer name"
	m.inputs[invoiceFieldInvoiceDate].Placeholder = "YYYY-MM-DD"
	m.inputs[invoiceFieldDueDate].Placeholder = "YYYY-MM-DD"
	m.inputs[invoiceFieldAmount].Placeholder = "0.00"
	m.inputs[0].Focus()
	return m
}

// SetError displays a submission error without dismissing the form.
func (m *InvoiceFormModel) SetError(msg string) {
	m.errMsg = msg
}

// Update handles messages.
func (m InvoiceFormModel) Update(msg tea.Msg) (InvoiceFormModel, tea.Cmd) {
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

	case "enter":
		if m.focus < invoiceFieldCount-1 {
			return m.moveFocus(1), textinput.Blink
		}
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m InvoiceFormModel) updateInputs(msg tea.Msg) (InvoiceFormModel, tea.Cmd) {
	newInput, cmd := m.inputs[m.focus].Update(msg)
	m.inputs[m.focus] = newInput
	return m, cmd
}

func (m InvoiceFormModel) moveFocus(delta int) InvoiceFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + invoiceFieldCount) % invoiceFieldCount
	m.inputs[m.focus].Focus()
	return m
}

func (m InvoiceFormModel) submit() (InvoiceFormModel, tea.Cmd) {
	invoiceDate, err := parseFormDate("invoice date", m.inputs[invoiceFieldInvoiceDate].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	dueDate, err := parseFormDate("due date", m.inputs[invoiceFieldDueDate].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	amount, err := parseFormAmount("amount", m.inputs[invoiceFieldAmount].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	draft := model.InvoiceDraft{
		Customer:    m.inputs[invoiceFieldCustomer].Value(),
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Amount:      amount,
	}
	if err := draft.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	id := m.editID
	return m, func() tea.Msg {
		return InvoiceSubmittedMsg{ID: id, Draft: draft}
	}
}

// View renders the form.
func (m InvoiceFormModel) View() string {
	lines := []string{m.theme.Title.Render(m.title), ""}
	labelStyle := lipgloss.NewStyle().Bold(true).Width(14)
	for i, input := range m.inputs {
		lines = append(lines, labelStyle.Render(invoiceFieldLabels[i]+":")+" "+input.View())
	}
	lines = append(lines, "")
	if m.errMsg != "" {
		lines = append(lines, m.theme.StatusError.Render(m.errMsg))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("Enter: save · Tab: next field · Esc: cancel"))

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
