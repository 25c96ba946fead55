// Package components contains the reusable widgets of the TUI.
package components

import "github.com/tallyhq/tally/internal/model"

// InvoiceQueryChangedMsg is sent when the invoice search query changes.
type InvoiceQueryChangedMsg struct {
	Query string
}

// ExpenseQueryChangedMsg is sent when the expense search query changes.
type ExpenseQueryChangedMsg struct {
	Query string
}

// InvoiceSubmittedMsg carries a validated-by-shape invoice form submission.
// ID is zero for a new invoice.
type InvoiceSubmittedMsg struct {
	Draft model.InvoiceDraft
	ID    int64
}

// ExpenseSubmittedMsg carries an expense form submission. ID is zero for a
// new expense.
type ExpenseSubmittedMsg struct {
	Draft model.ExpenseDraft
	ID    int64
}

// FormCancelledMsg is sent when a form is dismissed without submitting.
type FormCancelledMsg struct{}

// ExportRequestMsg asks the application to export the books to a path.
type ExportRequestMsg struct {
	Path string
}
