// Package report computes the financial summary shown on the dashboard and
// report views. Every value is derived from a full snapshot of the current
// records; nothing is cached or incrementally maintained.
package report

import (
	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/model"
)

// taxRate is the fixed estimated tax rate applied to positive net profit.
var taxRate = decimal.RequireFromString("0.10")

// Summary holds the aggregate values for one snapshot of the books.
type Summary struct {
	TotalInvoiced decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	TaxDue        decimal.Decimal
	PaidCount     int
	UnpaidCount   int
}

// Summarize computes the summary over the given records.
func Summarize(invoices []model.Invoice, expenses []model.Expense) Summary {
	var s Summary
	for _, inv := range invoices {
		s.TotalInvoiced = s.TotalInvoiced.Add(inv.Amount)
		if inv.Paid() {
			s.TotalPaid = s.TotalPaid.Add(inv.Amount)
			s.PaidCount++
		} else {
			s.UnpaidCount++
		}
	}
	for _, exp := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(exp.Amount)
	}
	s.NetProfit = s.TotalPaid.Sub(s.TotalExpenses)
	if s.NetProfit.IsPositive() {
		s.TaxDue = s.NetProfit.Mul(taxRate)
	}
	return s
}

// InvoiceCount returns the total number of invoices in the snapshot.
func (s Summary) InvoiceCount() int {
	return s.PaidCount + s.UnpaidCount
}

// PaidShare returns the fraction of invoices that are paid, in [0, 1].
// An empty snapshot has a share of zero.
func (s Summary) PaidShare() float64 {
	total := s.InvoiceCount()
	if total == 0 {
		return 0
	}
	return float64(s.PaidCount) / float64(total)
}

// Row is one labeled line of the rendered report.
type Row struct {
	Label string
	Value string
}

// Rows returns the report lines in display order, amounts formatted to two
// decimal places with a dollar sign.
func (s Summary) Rows() []Row {
	return []Row{
		{Label: "Total Invoiced", Value: "$" + s.TotalInvoiced.StringFixed(2)},
		{Label: "Total Paid", Value: "$" + s.TotalPaid.StringFixed(2)},
		{Label: "Total Expenses", Value: "$" + s.TotalExpenses.StringFixed(2)},
		{Label: "Net Profit", Value: "$" + s.NetProfit.StringFixed(2)},
		{Label: "Estimated Tax (10%)", Value: "$" + s.TaxDue.StringFixed(2)},
	}
}
