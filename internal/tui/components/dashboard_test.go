package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/report"
	"github.com/tallyhq/tally/internal/tui/themes"
)

func TestDashboard_EmptyState(t *testing.T) {
	m := NewDashboard(themes.Default)
	m.SetSummary(report.Summarize(nil, nil))

	view := m.View()
	assert.Contains(t, view, "Financial Summary")
	assert.Contains(t, view, "No invoice data")
	assert.NotContains(t, view, "Paid:")
}

func TestDashboard_RendersCounts(t *testing.T) {
	invoices := []model.Invoice{
		{ID: 1, Amount: decimal.RequireFromString("100.00"), Status: model.StatusPaid},
		{ID: 2, Amount: decimal.RequireFromString("50.00"), Status: model.StatusUnpaid},
	}
	m := NewDashboard(themes.Default)
	m.Resize(100, 30)
	m.SetSummary(report.Summarize(invoices, nil))

	view := m.View()
	assert.Contains(t, view, "$150.00")
	assert.Contains(t, view, "Paid:")
	assert.Contains(t, view, "Unpaid:")
	assert.Contains(t, view, "(50.0%)")
}

func TestRenderBar(t *testing.T) {
	max := decimal.RequireFromString("100")

	assert.Equal(t, "··········", renderBar(decimal.Zero, max, 10))
	assert.Equal(t, "██████████", renderBar(max, max, 10))

	// A tiny non-zero value still shows one cell.
	small := renderBar(decimal.RequireFromString("0.01"), max, 10)
	assert.Equal(t, "█·········", small)
}
