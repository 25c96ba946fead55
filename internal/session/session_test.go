package session

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func invoiceDraft(customer, amount string) model.InvoiceDraft {
	issued := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return model.InvoiceDraft{
		Customer:    customer,
		InvoiceDate: issued,
		DueDate:     issued.AddDate(0, 0, 30),
		Amount:      decimal.RequireFromString(amount),
	}
}

func expenseDraft(category model.ExpenseCategory, description, amount string) model.ExpenseDraft {
	return model.ExpenseDraft{
		Category:    category,
		Description: description,
		Date:        time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString(amount),
	}
}

func TestSession_AddAndFindInvoice(t *testing.T) {
	s := New()

	added, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)
	assert.Equal(t, model.StatusUnpaid, added.Status)

	found, err := s.FindInvoice(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, found)
}

func TestSession_AddInvoiceValidationFailureStoresNothing(t *testing.T) {
	s := New()

	_, err := s.AddInvoice(invoiceDraft("", "100.00"))
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
	assert.Equal(t, 0, s.InvoiceCount())

	// The failed add must not consume an id.
	added, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)
}

func TestSession_FindInvoiceNotFound(t *testing.T) {
	s := New()

	_, err := s.FindInvoice(99)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSession_UpdateInvoice(t *testing.T) {
	s := New()
	added, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)
	_, err = s.MarkInvoicePaid(added.ID)
	require.NoError(t, err)

	updated, err := s.UpdateInvoice(added.ID, invoiceDraft("Acme Holdings", "250.00"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.Customer)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("250.00")))

	// Id and status survive an edit.
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, model.StatusPaid, updated.Status)
}

func TestSession_UpdateInvoiceValidationFailureLeavesRecordUntouched(t *testing.T) {
	s := New()
	added, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)

	_, err = s.UpdateInvoice(added.ID, invoiceDraft("Acme Corp", "-1.00"))
	require.Error(t, err)

	found, err := s.FindInvoice(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, found)
}

func TestSession_UpdateInvoiceNotFound(t *testing.T) {
	s := New()

	_, err := s.UpdateInvoice(7, invoiceDraft("Acme Corp", "100.00"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSession_MarkInvoicePaid(t *testing.T) {
	s := New()
	added, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)

	paid, err := s.MarkInvoicePaid(added.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, paid.Status)

	// Idempotent: marking a paid invoice again is not an error.
	paid, err = s.MarkInvoicePaid(added.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, paid.Status)

	_, err = s.MarkInvoicePaid(99)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSession_RemoveInvoices(t *testing.T) {
	s := New()
	first, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)
	second, err := s.AddInvoice(invoiceDraft("Beta Industries", "50.00"))
	require.NoError(t, err)
	third, err := s.AddInvoice(invoiceDraft("Zebra Design", "75.00"))
	require.NoError(t, err)

	removed := s.RemoveInvoices(first.ID, third.ID)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.InvoiceCount())

	_, err = s.FindInvoice(first.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = s.FindInvoice(second.ID)
	assert.NoError(t, err)

	// Removing an unknown id is a no-op.
	assert.Equal(t, 0, s.RemoveInvoices(99))
}

func TestSession_IDsAreNeverReused(t *testing.T) {
	s := New()
	first, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)
	second, err := s.AddInvoice(invoiceDraft("Beta Industries", "50.00"))
	require.NoError(t, err)

	s.RemoveInvoices(first.ID, second.ID)

	third, err := s.AddInvoice(invoiceDraft("Zebra Design", "75.00"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestSession_InvoicesOrderAndFilter(t *testing.T) {
	s := New()
	for _, customer := range []string{"Acme", "Beta", "Zebra"} {
		_, err := s.AddInvoice(invoiceDraft(customer, "10.00"))
		require.NoError(t, err)
	}

	var all []string
	for inv := range s.Invoices(nil) {
		all = append(all, inv.Customer)
	}
	assert.Equal(t, []string{"Acme", "Beta", "Zebra"}, all)

	filtered := slices.Collect(s.Invoices(model.CustomerMatches("be")))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Beta", filtered[0].Customer)

	// The sequence is restartable.
	seq := s.Invoices(nil)
	assert.Len(t, slices.Collect(seq), 3)
	assert.Len(t, slices.Collect(seq), 3)
}

func TestSession_ExpenseLifecycle(t *testing.T) {
	s := New()

	added, err := s.AddExpense(expenseDraft(model.CategoryTravel, "Train tickets", "112.40"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ID)

	found, err := s.FindExpense(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, found)

	updated, err := s.UpdateExpense(added.ID, expenseDraft(model.CategorySoftware, "IDE license", "89.00"))
	require.NoError(t, err)
	assert.Equal(t, model.CategorySoftware, updated.Category)
	assert.Equal(t, added.ID, updated.ID)

	_, err = s.UpdateExpense(added.ID, expenseDraft("Groceries", "Snacks", "5.00"))
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))

	assert.Equal(t, 1, s.RemoveExpenses(added.ID))
	assert.Equal(t, 0, s.ExpenseCount())
	_, err = s.FindExpense(added.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSession_InvoiceAndExpenseIDsAreIndependent(t *testing.T) {
	s := New()

	inv, err := s.AddInvoice(invoiceDraft("Acme Corp", "100.00"))
	require.NoError(t, err)
	exp, err := s.AddExpense(expenseDraft(model.CategoryOther, "Misc", "5.00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), inv.ID)
	assert.Equal(t, int64(1), exp.ID)
}
