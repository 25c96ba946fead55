// Package export serializes the books to the sectioned CSV format and reads
// it back. The file carries an "Invoices" section and an "Expenses" section,
// each with its own column header row, separated by a blank row. Export only
// reads from the session, so a failed write never affects in-memory state.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/model"
)

// Books is a snapshot of both record collections in insertion order.
type Books struct {
	Invoices []model.Invoice
	Expenses []model.Expense
}

var (
	invoiceHeader = []string{"ID", "Customer", "Invoice Date", "Due Date", "Amount", "Status"}
	expenseHeader = []string{"ID", "Category", "Description", "Date", "Amount"}
)

// Write serializes the books to w. Dates are ISO (YYYY-MM-DD) and amounts
// are formatted to two decimal places.
func Write(w io.Writer, books Books) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Invoices"},
		invoiceHeader,
	}
	for _, inv := range books.Invoices {
		records = append(records, []string{
			strconv.FormatInt(inv.ID, 10),
			inv.Customer,
			inv.InvoiceDate.Format(time.DateOnly),
			inv.DueDate.Format(time.DateOnly),
			inv.Amount.StringFixed(2),
			string(inv.Status),
		})
	}
	records = append(records, []string{}, []string{"Expenses"}, expenseHeader)
	for _, exp := range books.Expenses {
		records = append(records, []string{
			strconv.FormatInt(exp.ID, 10),
			string(exp.Category),
			exp.Description,
			exp.Date.Format(time.DateOnly),
			exp.Amount.StringFixed(2),
		})
	}

	for _, record := range records {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile serializes the books to the file at path, creating or truncating
// it.
func WriteFile(path string, books Books) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Write(f, books); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}

// Read parses a books file previously produced by Write. Ids are read as
// found in the file; callers that load records into a session must assign
// fresh ids instead of trusting these.
func Read(r io.Reader) (Books, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Books{}, fmt.Errorf("failed to parse books file: %w", err)
	}

	var books Books
	section := ""
	for i, record := range records {
		if len(record) == 1 {
			switch record[0] {
			case "Invoices", "Expenses":
				section = record[0]
				continue
			}
		}
		switch section {
		case "Invoices":
			if slices.Equal(record, invoiceHeader) {
				continue
			}
			inv, rowErr := parseInvoiceRow(record)
			if rowErr != nil {
				return Books{}, fmt.Errorf("row %d: %w", i+1, rowErr)
			}
			books.Invoices = append(books.Invoices, inv)
		case "Expenses":
			if slices.Equal(record, expenseHeader) {
				continue
			}
			exp, rowErr := parseExpenseRow(record)
			if rowErr != nil {
				return Books{}, fmt.Errorf("row %d: %w", i+1, rowErr)
			}
			books.Expenses = append(books.Expenses, exp)
		default:
			return Books{}, fmt.Errorf("row %d: data before a section header", i+1)
		}
	}
	return books, nil
}

// ReadFile parses the books file at path.
func ReadFile(path string) (Books, error) {
	f, err := os.Open(path)
	if err != nil {
		return Books{}, fmt.Errorf("failed to open books file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f)
}

func parseInvoiceRow(record []string) (model.Invoice, error) {
	if len(record) != len(invoiceHeader) {
		return model.Invoice{}, fmt.Errorf("expected %d invoice fields, got %d", len(invoiceHeader), len(record))
	}
	id, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invalid invoice id %q: %w", record[0], err)
	}
	invoiceDate, err := time.Parse(time.DateOnly, record[2])
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invalid invoice date %q: %w", record[2], err)
	}
	dueDate, err := time.Parse(time.DateOnly, record[3])
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invalid due date %q: %w", record[3], err)
	}
	amount, err := decimal.NewFromString(record[4])
	if err != nil {
		return model.Invoice{}, fmt.Errorf("invalid amount %q: %w", record[4], err)
	}
	status := model.InvoiceStatus(record[5])
	if status != model.StatusPaid && status != model.StatusUnpaid {
		return model.Invoice{}, fmt.Errorf("invalid status %q", record[5])
	}
	return model.Invoice{
		ID:          id,
		Customer:    record[1],
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Amount:      amount,
		Status:      status,
	}, nil
}

func parseExpenseRow(record []string) (model.Expense, error) {
	if len(record) != len(expenseHeader) {
		return model.Expense{}, fmt.Errorf("expected %d expense fields, got %d", len(expenseHeader), len(record))
	}
	id, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid expense id %q: %w", record[0], err)
	}
	category := model.ExpenseCategory(record[1])
	if !category.Valid() {
		return model.Expense{}, fmt.Errorf("unknown category %q", record[1])
	}
	date, err := time.Parse(time.DateOnly, record[3])
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid date %q: %w", record[3], err)
	}
	amount, err := decimal.NewFromString(record[4])
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid amount %q: %w", record[4], err)
	}
	return model.Expense{
		ID:          id,
		Category:    category,
		Description: record[2],
		Date:        date,
		Amount:      amount,
	}, nil
}
