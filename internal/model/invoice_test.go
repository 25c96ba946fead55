package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/common"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoiceDraft_Validate(t *testing.T) {
	valid := InvoiceDraft{
		Customer:    "Acme Corp",
		InvoiceDate: date("2026-01-05"),
		DueDate:     date("2026-02-04"),
		Amount:      amount("100.00"),
	}

	tests := []struct {
		name      string
		wantField string
		mutate    func(*InvoiceDraft)
		wantErr   bool
	}{
		{
			name:   "valid draft",
			mutate: func(*InvoiceDraft) {},
		},
		{
			name:      "empty customer",
			mutate:    func(d *InvoiceDraft) { d.Customer = "" },
			wantErr:   true,
			wantField: "customer",
		},
		{
			name:      "whitespace-only customer",
			mutate:    func(d *InvoiceDraft) { d.Customer = "   " },
			wantErr:   true,
			wantField: "customer",
		},
		{
			name:      "zero invoice date",
			mutate:    func(d *InvoiceDraft) { d.InvoiceDate = time.Time{} },
			wantErr:   true,
			wantField: "invoice date",
		},
		{
			name:      "zero due date",
			mutate:    func(d *InvoiceDraft) { d.DueDate = time.Time{} },
			wantErr:   true,
			wantField: "due date",
		},
		{
			name:      "zero amount",
			mutate:    func(d *InvoiceDraft) { d.Amount = decimal.Zero },
			wantErr:   true,
			wantField: "amount",
		},
		{
			name:      "negative amount",
			mutate:    func(d *InvoiceDraft) { d.Amount = amount("-5.00") },
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

func TestNewInvoice(t *testing.T) {
	inv, err := NewInvoice(InvoiceDraft{
		Customer:    "  Acme Corp  ",
		InvoiceDate: date("2026-01-05"),
		DueDate:     date("2026-02-04"),
		Amount:      amount("100.00"),
	})
	if err != nil {
		t.Fatalf("NewInvoice() error = %v", err)
	}
	if inv.Status != StatusUnpaid {
		t.Errorf("NewInvoice() status = %q, want %q", inv.Status, StatusUnpaid)
	}
	if inv.Customer != "Acme Corp" {
		t.Errorf("NewInvoice() customer = %q, want trimmed name", inv.Customer)
	}
}

func TestInvoice_UpdateFailureLeavesInvoiceUnchanged(t *testing.T) {
	inv, err := NewInvoice(InvoiceDraft{
		Customer:    "Acme Corp",
		InvoiceDate: date("2026-01-05"),
		DueDate:     date("2026-02-04"),
		Amount:      amount("100.00"),
	})
	if err != nil {
		t.Fatalf("NewInvoice() error = %v", err)
	}

	before := inv
	err = inv.Update(InvoiceDraft{
		Customer:    "",
		InvoiceDate: date("2026-03-01"),
		DueDate:     date("2026-03-31"),
		Amount:      amount("200.00"),
	})
	if err == nil {
		t.Fatal("Update() error = nil, want validation error")
	}
	if inv != before {
		t.Errorf("Update() modified invoice on validation failure: got %+v, want %+v", inv, before)
	}
}

func TestInvoice_MarkPaid(t *testing.T) {
	inv := Invoice{Status: StatusUnpaid}

	inv.MarkPaid()
	if !inv.Paid() {
		t.Fatal("MarkPaid() left invoice unpaid")
	}

	// Marking again must change nothing.
	inv.MarkPaid()
	if inv.Status != StatusPaid {
		t.Errorf("MarkPaid() second call status = %q, want %q", inv.Status, StatusPaid)
	}
}
