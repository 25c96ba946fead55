// Package tui implements the interactive terminal application: tabbed
// Dashboard, Invoices, Expenses, and Report views over a session-owned
// record store.
package tui

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tallyhq/tally/internal/export"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/report"
	"github.com/tallyhq/tally/internal/session"
	"github.com/tallyhq/tally/internal/tui/components"
	"github.com/tallyhq/tally/internal/tui/themes"
)

// statusTimeout controls how long status line messages stay visible.
const statusTimeout = 4 * time.Second

// State represents the current interaction state of the TUI.
type State int

// Interaction states.
const (
	StateBrowse State = iota
	StateInvoiceForm
	StateExpenseForm
	StateConfirmDelete
	StateHelp
)

// View represents the active tab.
type View int

// Tabs, in display order.
const (
	ViewDashboard View = iota
	ViewInvoices
	ViewExpenses
	ViewReport
	viewCount
)

// Title returns the tab label.
func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewInvoices:
		return "Invoices"
	case ViewExpenses:
		return "Expenses"
	case ViewReport:
		return "Report"
	default:
		return "Unknown"
	}
}

// Model holds the main TUI state.
type Model struct {
	session      *session.Session
	theme        themes.Theme
	keymap       KeyMap
	help         help.Model
	config       Config
	status       string
	confirmLabel string
	invoiceTable components.InvoiceTableModel
	expenseTable components.ExpenseTableModel
	invoiceForm  components.InvoiceFormModel
	expenseForm  components.ExpenseFormModel
	dashboard    components.DashboardModel
	reportPanel  components.ReportPanelModel
	confirmID    int64
	width        int
	height       int
	state        State
	view         View
	confirmView  View
	statusError  bool
	quitting     bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	m := Model{
		session:      cfg.Session,
		theme:        cfg.Theme,
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		config:       cfg,
		state:        StateBrowse,
		view:         ViewDashboard,
		width:        cfg.Width,
		height:       cfg.Height,
		invoiceTable: components.NewInvoiceTable(cfg.Theme),
		expenseTable: components.NewExpenseTable(cfg.Theme),
		dashboard:    components.NewDashboard(cfg.Theme),
		reportPanel:  components.NewReportPanel(cfg.Theme, cfg.ExportPath),
	}
	m.refreshAll()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case components.InvoiceQueryChangedMsg:
		m.refreshInvoices()
		return m, nil

	case components.ExpenseQueryChangedMsg:
		m.refreshExpenses()
		return m, nil

	case components.InvoiceSubmittedMsg:
		cmd := m.applyInvoiceSubmit(msg)
		return m, cmd

	case components.ExpenseSubmittedMsg:
		cmd := m.applyExpenseSubmit(msg)
		return m, cmd

	case components.FormCancelledMsg:
		m.state = StateBrowse
		return m, nil

	case components.ExportRequestMsg:
		return m, m.exportBooks(msg.Path)

	case exportDoneMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			cmd = m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
		} else {
			cmd = m.setStatus("Exported books to "+msg.path, false)
		}
		return m, cmd

	case statusMsg:
		cmd := m.setStatus(msg.text, msg.isError)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.state {
		case StateConfirmDelete:
			return m.updateConfirm(msg)

		case StateHelp:
			m.state = StateBrowse
			return m, nil

		case StateBrowse:
			if newModel, cmd, handled := m.handleBrowseKeys(msg); handled {
				return newModel, cmd
			}
		}
	}

	return m.routeToActive(msg)
}

// handleBrowseKeys handles application-level keys while browsing. Keys are
// not handled while a search box or prompt has focus so typing never
// triggers actions.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.activeTyping() {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit, true

	case key.Matches(msg, m.keymap.NextTab):
		m.view = (m.view + 1) % viewCount
		return m, nil, true

	case key.Matches(msg, m.keymap.PrevTab):
		m.view = (m.view + viewCount - 1) % viewCount
		return m, nil, true

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil, true

	case key.Matches(msg, m.keymap.Add):
		switch m.view {
		case ViewInvoices:
			m.invoiceForm = components.NewInvoiceForm(m.theme, m.config.DueDays)
			m.state = StateInvoiceForm
			return m, nil, true
		case ViewExpenses:
			m.expenseForm = components.NewExpenseForm(m.theme)
			m.state = StateExpenseForm
			return m, nil, true
		}

	case key.Matches(msg, m.keymap.Edit):
		switch m.view {
		case ViewInvoices:
			if inv, ok := m.invoiceTable.Selected(); ok {
				m.invoiceForm = components.NewInvoiceEditForm(m.theme, inv)
				m.state = StateInvoiceForm
				return m, nil, true
			}
		case ViewExpenses:
			if exp, ok := m.expenseTable.Selected(); ok {
				m.expenseForm = components.NewExpenseEditForm(m.theme, exp)
				m.state = StateExpenseForm
				return m, nil, true
			}
		}

	case key.Matches(msg, m.keymap.Delete):
		switch m.view {
		case ViewInvoices:
			if inv, ok := m.invoiceTable.Selected(); ok {
				m.confirmView = ViewInvoices
				m.confirmID = inv.ID
				m.confirmLabel = inv.Customer
				m.state = StateConfirmDelete
				return m, nil, true
			}
		case ViewExpenses:
			if exp, ok := m.expenseTable.Selected(); ok {
				m.confirmView = ViewExpenses
				m.confirmID = exp.ID
				m.confirmLabel = exp.Description
				m.state = StateConfirmDelete
				return m, nil, true
			}
		}

	case key.Matches(msg, m.keymap.MarkPaid):
		if m.view == ViewInvoices {
			if inv, ok := m.invoiceTable.Selected(); ok {
				if _, err := m.session.MarkInvoicePaid(inv.ID); err != nil {
					cmd := m.setStatus(err.Error(), true)
					return m, cmd, true
				}
				m.refreshAll()
				cmd := m.setStatus(fmt.Sprintf("Invoice #%d marked paid", inv.ID), false)
				return m, cmd, true
			}
		}
	}

	return m, nil, false
}

// updateConfirm handles the delete confirmation prompt.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		var status string
		if m.confirmView == ViewInvoices {
			m.session.RemoveInvoices(m.confirmID)
			status = fmt.Sprintf("Invoice #%d deleted", m.confirmID)
		} else {
			m.session.RemoveExpenses(m.confirmID)
			status = fmt.Sprintf("Expense #%d deleted", m.confirmID)
		}
		m.state = StateBrowse
		m.refreshAll()
		cmd := m.setStatus(status, false)
		return m, cmd

	default:
		m.state = StateBrowse
		return m, nil
	}
}

// routeToActive delegates a message to the component that currently has
// focus.
func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case StateInvoiceForm:
		m.invoiceForm, cmd = m.invoiceForm.Update(msg)

	case StateExpenseForm:
		m.expenseForm, cmd = m.expenseForm.Update(msg)

	case StateBrowse:
		switch m.view {
		case ViewDashboard:
			m.dashboard, cmd = m.dashboard.Update(msg)
		case ViewInvoices:
			m.invoiceTable, cmd = m.invoiceTable.Update(msg)
		case ViewExpenses:
			m.expenseTable, cmd = m.expenseTable.Update(msg)
		case ViewReport:
			m.reportPanel, cmd = m.reportPanel.Update(msg)
		}
	}

	return m, cmd
}

// activeTyping reports whether a text input currently has focus.
func (m Model) activeTyping() bool {
	switch m.view {
	case ViewInvoices:
		return m.invoiceTable.Searching()
	case ViewExpenses:
		return m.expenseTable.Searching()
	case ViewReport:
		return m.reportPanel.Prompting()
	default:
		return false
	}
}

// applyInvoiceSubmit adds or updates an invoice from a form submission. On
// failure the form stays open with the error shown.
func (m *Model) applyInvoiceSubmit(msg components.InvoiceSubmittedMsg) tea.Cmd {
	var (
		inv  model.Invoice
		err  error
		verb string
	)
	if msg.ID == 0 {
		inv, err = m.session.AddInvoice(msg.Draft)
		verb = "added"
	} else {
		inv, err = m.session.UpdateInvoice(msg.ID, msg.Draft)
		verb = "updated"
	}
	if err != nil {
		m.invoiceForm.SetError(err.Error())
		return nil
	}
	m.state = StateBrowse
	m.refreshAll()
	return m.setStatus(fmt.Sprintf("Invoice #%d %s", inv.ID, verb), false)
}

// applyExpenseSubmit adds or updates an expense from a form submission.
func (m *Model) applyExpenseSubmit(msg components.ExpenseSubmittedMsg) tea.Cmd {
	var (
		exp  model.Expense
		err  error
		verb string
	)
	if msg.ID == 0 {
		exp, err = m.session.AddExpense(msg.Draft)
		verb = "added"
	} else {
		exp, err = m.session.UpdateExpense(msg.ID, msg.Draft)
		verb = "updated"
	}
	if err != nil {
		m.expenseForm.SetError(err.Error())
		return nil
	}
	m.state = StateBrowse
	m.refreshAll()
	return m.setStatus(fmt.Sprintf("Expense #%d %s", exp.ID, verb), false)
}

// exportBooks snapshots both collections and writes them in the background.
func (m Model) exportBooks(path string) tea.Cmd {
	books := export.Books{
		Invoices: slices.Collect(m.session.Invoices(nil)),
		Expenses: slices.Collect(m.session.Expenses(nil)),
	}
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: export.WriteFile(path, books)}
	}
}

// setStatus shows a status line message and schedules its expiry.
func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.status = text
	m.statusError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// refreshAll re-queries the session for every view. Tables keep their
// current search filter; the dashboard and report always see the full
// snapshot.
func (m *Model) refreshAll() {
	m.refreshInvoices()
	m.refreshExpenses()
	m.refreshSummary()
}

func (m *Model) refreshInvoices() {
	keep := model.CustomerMatches(m.invoiceTable.Query())
	m.invoiceTable.SetInvoices(slices.Collect(m.session.Invoices(keep)))
}

func (m *Model) refreshExpenses() {
	keep := model.DescriptionMatches(m.expenseTable.Query())
	m.expenseTable.SetExpenses(slices.Collect(m.session.Expenses(keep)))
}

func (m *Model) refreshSummary() {
	summary := report.Summarize(
		slices.Collect(m.session.Invoices(nil)),
		slices.Collect(m.session.Expenses(nil)),
	)
	m.dashboard.SetSummary(summary)
	m.reportPanel.SetSummary(summary)
}

// handleResize propagates the new terminal size to every component.
func (m *Model) handleResize() {
	contentWidth := max(m.width-2, 20)
	contentHeight := max(m.height-6, 8)
	m.invoiceTable.Resize(contentWidth, contentHeight)
	m.expenseTable.Resize(contentWidth, contentHeight)
	m.dashboard.Resize(contentWidth, contentHeight)
	m.reportPanel.Resize(contentWidth, contentHeight)
	m.help.Width = m.width
}
