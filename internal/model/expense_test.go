package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/common"
)

func TestCategories(t *testing.T) {
	got := Categories()
	want := []ExpenseCategory{
		CategoryOfficeSupplies,
		CategoryTravel,
		CategoryUtilities,
		CategorySoftware,
		CategoryOther,
	}

	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpenseCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("category %q reported invalid", c)
		}
	}
	if ExpenseCategory("Groceries").Valid() {
		t.Error("unknown category reported valid")
	}
	if ExpenseCategory("").Valid() {
		t.Error("empty category reported valid")
	}
}

func TestExpenseDraft_Validate(t *testing.T) {
	valid := ExpenseDraft{
		Category:    CategoryTravel,
		Description: "Client visit train tickets",
		Date:        date("2026-01-10"),
		Amount:      amount("112.40"),
	}

	tests := []struct {
		name      string
		wantField string
		mutate    func(*ExpenseDraft)
		wantErr   bool
	}{
		{
			name:   "valid draft",
			mutate: func(*ExpenseDraft) {},
		},
		{
			name:      "unknown category",
			mutate:    func(d *ExpenseDraft) { d.Category = "Groceries" },
			wantErr:   true,
			wantField: "category",
		},
		{
			name:      "empty description",
			mutate:    func(d *ExpenseDraft) { d.Description = "  " },
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "zero date",
			mutate:    func(d *ExpenseDraft) { d.Date = time.Time{} },
			wantErr:   true,
			wantField: "date",
		},
		{
			name:      "non-positive amount",
			mutate:    func(d *ExpenseDraft) { d.Amount = decimal.Zero },
			wantErr:   true,
			wantField: "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			err := draft.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want error on field %q", tt.wantField)
			}
			var ve *common.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want *common.ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}
