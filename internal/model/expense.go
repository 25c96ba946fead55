package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/common"
)

// ExpenseCategory is one of the fixed business expense categories.
type ExpenseCategory string

// The fixed category set. CategoryOfficeSupplies is the default.
const (
	CategoryOfficeSupplies ExpenseCategory = "Office Supplies"
	CategoryTravel         ExpenseCategory = "Travel"
	CategoryUtilities      ExpenseCategory = "Utilities"
	CategorySoftware       ExpenseCategory = "Software"
	CategoryOther          ExpenseCategory = "Other"
)

// Categories returns the fixed category set in display order.
func Categories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryOfficeSupplies,
		CategoryTravel,
		CategoryUtilities,
		CategorySoftware,
		CategoryOther,
	}
}

// Valid reports whether c is one of the fixed categories.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryOfficeSupplies, CategoryTravel, CategoryUtilities, CategorySoftware, CategoryOther:
		return true
	}
	return false
}

// Expense represents a single business expense. The ID is assigned by the
// session when the expense is added and never changes afterwards.
type Expense struct {
	Date        time.Time
	Category    ExpenseCategory
	Description string
	Amount      decimal.Decimal
	ID          int64
}

// ExpenseDraft holds the user-editable fields of an expense.
type ExpenseDraft struct {
	Date        time.Time
	Category    ExpenseCategory
	Description string
	Amount      decimal.Decimal
}

// Validate checks the draft and returns a ValidationError naming the first
// offending field.
func (d ExpenseDraft) Validate() error {
	if !d.Category.Valid() {
		return common.NewValidationError("category", "unknown expense category")
	}
	if strings.TrimSpace(d.Description) == "" {
		return common.NewValidationError("description", "description is required")
	}
	if d.Date.IsZero() {
		return common.NewValidationError("date", "date is required")
	}
	if !d.Amount.IsPositive() {
		return common.NewValidationError("amount", "amount must be greater than zero")
	}
	return nil
}

func (d ExpenseDraft) apply(exp *Expense) {
	exp.Category = d.Category
	exp.Description = strings.TrimSpace(d.Description)
	exp.Date = d.Date
	exp.Amount = d.Amount
}

// NewExpense builds an expense from a validated draft. The caller is
// responsible for assigning the ID.
func NewExpense(d ExpenseDraft) (Expense, error) {
	if err := d.Validate(); err != nil {
		return Expense{}, err
	}
	var exp Expense
	d.apply(&exp)
	return exp, nil
}

// Update applies a validated draft to an existing expense. On validation
// failure the expense is unchanged.
func (e *Expense) Update(d ExpenseDraft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.apply(e)
	return nil
}
