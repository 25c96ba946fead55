package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyhq/tally/internal/model"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	invoices := []model.Invoice{
		{ID: 1, Customer: "Acme", Amount: amount("100.00"), Status: model.StatusUnpaid},
		{ID: 2, Customer: "Beta", Amount: amount("50.00"), Status: model.StatusPaid},
	}
	expenses := []model.Expense{
		{ID: 1, Category: model.CategoryTravel, Amount: amount("30.00")},
	}

	s := Summarize(invoices, expenses)

	assert.True(t, s.TotalInvoiced.Equal(amount("150.00")), "total invoiced = %s", s.TotalInvoiced)
	assert.True(t, s.TotalPaid.Equal(amount("50.00")), "total paid = %s", s.TotalPaid)
	assert.True(t, s.TotalExpenses.Equal(amount("30.00")), "total expenses = %s", s.TotalExpenses)
	assert.True(t, s.NetProfit.Equal(amount("20.00")), "net profit = %s", s.NetProfit)
	assert.True(t, s.TaxDue.Equal(amount("2.00")), "tax due = %s", s.TaxDue)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.UnpaidCount)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil)

	assert.True(t, s.TotalInvoiced.IsZero())
	assert.True(t, s.TotalPaid.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
	assert.True(t, s.NetProfit.IsZero())
	assert.True(t, s.TaxDue.IsZero())
	assert.Equal(t, 0, s.InvoiceCount())
	assert.Equal(t, 0.0, s.PaidShare())
}

func TestSummarize_NoTaxOnLoss(t *testing.T) {
	invoices := []model.Invoice{
		{ID: 1, Amount: amount("40.00"), Status: model.StatusPaid},
	}
	expenses := []model.Expense{
		{ID: 1, Category: model.CategoryOther, Amount: amount("100.00")},
	}

	s := Summarize(invoices, expenses)

	assert.True(t, s.NetProfit.Equal(amount("-60.00")), "net profit = %s", s.NetProfit)
	assert.True(t, s.TaxDue.IsZero(), "tax must be zero on a loss, got %s", s.TaxDue)
}

func TestSummarize_PaidNeverExceedsInvoiced(t *testing.T) {
	invoices := []model.Invoice{
		{ID: 1, Amount: amount("10.00"), Status: model.StatusPaid},
		{ID: 2, Amount: amount("25.00"), Status: model.StatusPaid},
		{ID: 3, Amount: amount("5.00"), Status: model.StatusUnpaid},
	}

	s := Summarize(invoices, nil)

	assert.True(t, s.TotalPaid.LessThanOrEqual(s.TotalInvoiced))
	assert.InDelta(t, 2.0/3.0, s.PaidShare(), 1e-9)
}

func TestSummary_Rows(t *testing.T) {
	s := Summarize(
		[]model.Invoice{
			{ID: 1, Amount: amount("100.00"), Status: model.StatusUnpaid},
			{ID: 2, Amount: amount("50.00"), Status: model.StatusPaid},
		},
		[]model.Expense{
			{ID: 1, Category: model.CategoryTravel, Amount: amount("30.00")},
		},
	)

	rows := s.Rows()
	require.Len(t, rows, 5)

	want := []Row{
		{Label: "Total Invoiced", Value: "$150.00"},
		{Label: "Total Paid", Value: "$50.00"},
		{Label: "Total Expenses", Value: "$30.00"},
		{Label: "Net Profit", Value: "$20.00"},
		{Label: "Estimated Tax (10%)", Value: "$2.00"},
	}
	assert.Equal(t, want, rows)
}
