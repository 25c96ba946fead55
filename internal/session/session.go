// Package session owns the in-memory record collections for the lifetime of
// the process. The Session is the single owner of all invoices and expenses:
// views never keep their own mutable copies and re-query the session whenever
// they render.
package session

import (
	"fmt"
	"iter"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// Session holds the two record collections in insertion order along with
// their id counters. Ids are monotonically increasing per record type and are
// never reused, even after a record is removed.
//
// All access must happen from a single goroutine; the UI event loop is the
// only writer.
type Session struct {
	invoices      []model.Invoice
	expenses      []model.Expense
	nextInvoiceID int64
	nextExpenseID int64
}

// New creates an empty session. Id counters start at 1.
func New() *Session {
	return &Session{
		nextInvoiceID: 1,
		nextExpenseID: 1,
	}
}

// AddInvoice validates the draft, assigns a fresh id, and appends the new
// unpaid invoice. On validation failure nothing is stored.
func (s *Session) AddInvoice(d model.InvoiceDraft) (model.Invoice, error) {
	inv, err := model.NewInvoice(d)
	if err != nil {
		return model.Invoice{}, err
	}
	inv.ID = s.nextInvoiceID
	s.nextInvoiceID++
	s.invoices = append(s.invoices, inv)
	return inv, nil
}

// UpdateInvoice applies a validated draft to the invoice with the given id.
// The invoice's status and id are untouched; a failed validation leaves the
// record exactly as it was.
func (s *Session) UpdateInvoice(id int64, d model.InvoiceDraft) (model.Invoice, error) {
	idx := s.invoiceIndex(id)
	if idx < 0 {
		return model.Invoice{}, fmt.Errorf("invoice %d: %w", id, common.ErrNotFound)
	}
	if err := s.invoices[idx].Update(d); err != nil {
		return model.Invoice{}, err
	}
	return s.invoices[idx], nil
}

// MarkInvoicePaid transitions the invoice to paid. The transition is one-way
// and idempotent.
func (s *Session) MarkInvoicePaid(id int64) (model.Invoice, error) {
	idx := s.invoiceIndex(id)
	if idx < 0 {
		return model.Invoice{}, fmt.Errorf("invoice %d: %w", id, common.ErrNotFound)
	}
	s.invoices[idx].MarkPaid()
	return s.invoices[idx], nil
}

// RemoveInvoices deletes every invoice whose id is listed and returns the
// number removed. Unmatched ids are ignored.
func (s *Session) RemoveInvoices(ids ...int64) int {
	return removeByID(&s.invoices, ids, func(inv model.Invoice) int64 { return inv.ID })
}

// FindInvoice returns the invoice with the given id.
func (s *Session) FindInvoice(id int64) (model.Invoice, error) {
	idx := s.invoiceIndex(id)
	if idx < 0 {
		return model.Invoice{}, fmt.Errorf("invoice %d: %w", id, common.ErrNotFound)
	}
	return s.invoices[idx], nil
}

// Invoices returns the invoices satisfying keep, in insertion order. A nil
// predicate keeps everything. The sequence is restartable: each range walks
// the current collection from the start.
func (s *Session) Invoices(keep func(model.Invoice) bool) iter.Seq[model.Invoice] {
	return func(yield func(model.Invoice) bool) {
		for _, inv := range s.invoices {
			if keep != nil && !keep(inv) {
				continue
			}
			if !yield(inv) {
				return
			}
		}
	}
}

// InvoiceCount returns the number of stored invoices.
func (s *Session) InvoiceCount() int {
	return len(s.invoices)
}

// AddExpense validates the draft, assigns a fresh id, and appends the new
// expense. On validation failure nothing is stored.
func (s *Session) AddExpense(d model.ExpenseDraft) (model.Expense, error) {
	exp, err := model.NewExpense(d)
	if err != nil {
		return model.Expense{}, err
	}
	exp.ID = s.nextExpenseID
	s.nextExpenseID++
	s.expenses = append(s.expenses, exp)
	return exp, nil
}

// UpdateExpense applies a validated draft to the expense with the given id.
// A failed validation leaves the record exactly as it was.
func (s *Session) UpdateExpense(id int64, d model.ExpenseDraft) (model.Expense, error) {
	idx := s.expenseIndex(id)
	if idx < 0 {
		return model.Expense{}, fmt.Errorf("expense %d: %w", id, common.ErrNotFound)
	}
	if err := s.expenses[idx].Update(d); err != nil {
		return model.Expense{}, err
	}
	return s.expenses[idx], nil
}

// RemoveExpenses deletes every expense whose id is listed and returns the
// number removed. Unmatched ids are ignored.
func (s *Session) RemoveExpenses(ids ...int64) int {
	return removeByID(&s.expenses, ids, func(exp model.Expense) int64 { return exp.ID })
}

// FindExpense returns the expense with the given id.
func (s *Session) FindExpense(id int64) (model.Expense, error) {
	idx := s.expenseIndex(id)
	if idx < 0 {
		return model.Expense{}, fmt.Errorf("expense %d: %w", id, common.ErrNotFound)
	}
	return s.expenses[idx], nil
}

// Expenses returns the expenses satisfying keep, in insertion order. A nil
// predicate keeps everything. The sequence is restartable.
func (s *Session) Expenses(keep func(model.Expense) bool) iter.Seq[model.Expense] {
	return func(yield func(model.Expense) bool) {
		for _, exp := range s.expenses {
			if keep != nil && !keep(exp) {
				continue
			}
			if !yield(exp) {
				return
			}
		}
	}
}

// ExpenseCount returns the number of stored expenses.
func (s *Session) ExpenseCount() int {
	return len(s.expenses)
}

func (s *Session) invoiceIndex(id int64) int {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) expenseIndex(id int64) int {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			return i
		}
	}
	return -1
}

// removeByID filters records in place, preserving insertion order.
func removeByID[T any](records *[]T, ids []int64, idOf func(T) int64) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := (*records)[:0]
	removed := 0
	for _, rec := range *records {
		if drop[idOf(rec)] {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	*records = kept
	return removed
}
