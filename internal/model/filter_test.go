package model

import "testing"

func TestCustomerMatches(t *testing.T) {
	invoices := []Invoice{
		{ID: 1, Customer: "Acme"},
		{ID: 2, Customer: "Beta"},
		{ID: 3, Customer: "Zebra"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{name: "empty query matches all", query: "", wantIDs: []int64{1, 2, 3}},
		{name: "whitespace query matches all", query: "  ", wantIDs: []int64{1, 2, 3}},
		{name: "prefix match is case-insensitive", query: "be", wantIDs: []int64{2}},
		{name: "substring match", query: "br", wantIDs: []int64{3}},
		{name: "uppercase query", query: "ACME", wantIDs: []int64{1}},
		{name: "no match", query: "nothing", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep := CustomerMatches(tt.query)

			var gotIDs []int64
			for _, inv := range invoices {
				if keep(inv) {
					gotIDs = append(gotIDs, inv.ID)
				}
			}

			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("matched %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range tt.wantIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("matched %v, want %v", gotIDs, tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestDescriptionMatches(t *testing.T) {
	expenses := []Expense{
		{ID: 1, Description: "Printer paper and toner"},
		{ID: 2, Description: "Client visit train tickets"},
	}

	keep := DescriptionMatches("TRAIN")
	if keep(expenses[0]) {
		t.Error("query matched unrelated description")
	}
	if !keep(expenses[1]) {
		t.Error("case-insensitive query failed to match description")
	}
}
