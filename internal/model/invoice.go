// Package model defines the core record types for invoices and expenses.
package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/common"
)

// InvoiceStatus tracks whether an invoice has been paid.
type InvoiceStatus string

const (
	// StatusUnpaid is the initial status of every invoice.
	StatusUnpaid InvoiceStatus = "Unpaid"
	// StatusPaid is terminal: an invoice never moves back to unpaid.
	StatusPaid InvoiceStatus = "Paid"
)

// Invoice represents a single customer invoice. The ID is assigned by the
// session when the invoice is added and never changes afterwards.
type Invoice struct {
	InvoiceDate time.Time
	DueDate     time.Time
	Customer    string
	Status      InvoiceStatus
	Amount      decimal.Decimal
	ID          int64
}

// InvoiceDraft holds the user-editable fields of an invoice. The same draft
// is used for creation and for edits; status and ID are managed by the
// session and cannot be set through a draft.
type InvoiceDraft struct {
	InvoiceDate time.Time
	DueDate     time.Time
	Customer    string
	Amount      decimal.Decimal
}

// Validate checks the draft and returns a ValidationError naming the first
// offending field.
func (d InvoiceDraft) Validate() error {
	if strings.TrimSpace(d.Customer) == "" {
		return common.NewValidationError("customer", "customer name is required")
	}
	if d.InvoiceDate.IsZero() {
		return common.NewValidationError("invoice date", "invoice date is required")
	}
	if d.DueDate.IsZero() {
		return common.NewValidationError("due date", "due date is required")
	}
	if !d.Amount.IsPositive() {
		return common.NewValidationError("amount", "amount must be greater than zero")
	}
	return nil
}

// apply copies the draft's fields onto an invoice, trimming the customer
// name. Status and ID are left untouched.
func (d InvoiceDraft) apply(inv *Invoice) {
	inv.Customer = strings.TrimSpace(d.Customer)
	inv.InvoiceDate = d.InvoiceDate
	inv.DueDate = d.DueDate
	inv.Amount = d.Amount
}

// NewInvoice builds an unpaid invoice from a validated draft. The caller is
// responsible for assigning the ID.
func NewInvoice(d InvoiceDraft) (Invoice, error) {
	if err := d.Validate(); err != nil {
		return Invoice{}, err
	}
	var inv Invoice
	d.apply(&inv)
	inv.Status = StatusUnpaid
	return inv, nil
}

// Update applies a validated draft to an existing invoice. On validation
// failure the invoice is unchanged.
func (i *Invoice) Update(d InvoiceDraft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.apply(i)
	return nil
}

// MarkPaid transitions the invoice to paid. Marking an already paid invoice
// is a no-op.
func (i *Invoice) MarkPaid() {
	i.Status = StatusPaid
}

// Paid reports whether the invoice has been paid.
func (i Invoice) Paid() bool {
	return i.Status == StatusPaid
}
