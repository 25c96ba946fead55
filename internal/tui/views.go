package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the application.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateInvoiceForm:
		content = m.invoiceForm.View()
	case StateExpenseForm:
		content = m.expenseForm.View()
	case StateConfirmDelete:
		content = m.renderConfirm()
	case StateHelp:
		content = m.renderHelp()
	default:
		switch m.view {
		case ViewDashboard:
			content = m.theme.Box.Render(m.dashboard.View())
		case ViewInvoices:
			content = m.invoiceTable.View()
		case ViewExpenses:
			content = m.expenseTable.View()
		case ViewReport:
			content = m.reportPanel.View()
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

// renderHeader renders the application title and tab bar.
func (m Model) renderHeader() string {
	title := m.theme.Title.Render("📒 Tally — Invoicing & Accounting")

	tabs := make([]string, 0, int(viewCount))
	for v := ViewDashboard; v < viewCount; v++ {
		if v == m.view {
			tabs = append(tabs, m.theme.TabActive.Render(v.Title()))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(v.Title()))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
	)
}

// renderFooter renders the status line, or the short help when no status is
// pending.
func (m Model) renderFooter() string {
	if m.status != "" {
		if m.statusError {
			return m.theme.StatusError.Render(m.status)
		}
		return m.theme.StatusSuccess.Render(m.status)
	}
	return m.help.View(m.keymap)
}

// renderConfirm renders the delete confirmation prompt.
func (m Model) renderConfirm() string {
	kind := "invoice"
	if m.confirmView == ViewExpenses {
		kind = "expense"
	}

	question := m.theme.Bold.Render(
		fmt.Sprintf("Delete %s #%d — %s?", kind, m.confirmID, m.confirmLabel),
	)
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("y: delete · any other key: cancel")

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, question, "", hint))
}

// renderHelp renders the full key binding reference.
func (m Model) renderHelp() string {
	helpView := m.help
	helpView.ShowAll = true

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Help"),
		helpView.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press any key to close"),
	))
}
