package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/session"
)

// Run starts the interactive application and blocks until the user quits or
// the context is canceled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Session == nil {
		return fmt.Errorf("session is required")
	}
	if cfg.Demo {
		seedDemoData(cfg.Session)
	}

	slog.Debug("starting ui",
		"invoices", cfg.Session.InvoiceCount(),
		"expenses", cfg.Session.ExpenseCount(),
	)

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

// seedDemoData fills the session with a few sample records so the UI can be
// evaluated without typing anything in.
func seedDemoData(s *session.Session) {
	now := time.Now()
	invoices := []struct {
		customer string
		amount   string
		ageDays  int
		paid     bool
	}{
		{customer: "Acme Corp", amount: "1250.00", ageDays: 40, paid: true},
		{customer: "Beta Industries", amount: "860.50", ageDays: 21, paid: false},
		{customer: "Zebra Design", amount: "430.00", ageDays: 7, paid: false},
	}
	for _, seed := range invoices {
		issued := now.AddDate(0, 0, -seed.ageDays)
		inv, err := s.AddInvoice(model.InvoiceDraft{
			Customer:    seed.customer,
			InvoiceDate: issued,
			DueDate:     issued.AddDate(0, 0, 30),
			Amount:      decimal.RequireFromString(seed.amount),
		})
		if err != nil {
			continue
		}
		if seed.paid {
			_, _ = s.MarkInvoicePaid(inv.ID)
		}
	}

	expenses := []struct {
		category    model.ExpenseCategory
		description string
		amount      string
		ageDays     int
	}{
		{category: model.CategorySoftware, description: "Accounting software subscription", amount: "29.99", ageDays: 30},
		{category: model.CategoryTravel, description: "Client visit train tickets", amount: "112.40", ageDays: 12},
		{category: model.CategoryOfficeSupplies, description: "Printer paper and toner", amount: "64.25", ageDays: 3},
	}
	for _, seed := range expenses {
		_, _ = s.AddExpense(model.ExpenseDraft{
			Category:    seed.category,
			Description: seed.description,
			Date:        now.AddDate(0, 0, -seed.ageDays),
			Amount:      decimal.RequireFromString(seed.amount),
		})
	}
}
