package model

import "strings"

// CustomerMatches returns a predicate matching invoices whose customer name
// contains query, case-insensitively. An empty query matches every invoice.
func CustomerMatches(query string) func(Invoice) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(inv Invoice) bool {
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(inv.Customer), query)
	}
}

// DescriptionMatches returns a predicate matching expenses whose description
// contains query, case-insensitively. An empty query matches every expense.
func DescriptionMatches(query string) func(Expense) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(exp Expense) bool {
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(exp.Description), query)
	}
}
