package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/export"
	"github.com/tallyhq/tally/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a financial report for an exported books file",
		Long: `Read a books CSV previously written by the export action and print the
financial report: total invoiced, total paid, total expenses, net profit,
and the estimated tax.`,
		RunE: runReport,
	}

	cmd.Flags().StringP("input", "i", "", "path to the exported books CSV (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")

	books, err := export.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read books: %w", err)
	}

	summary := report.Summarize(books.Invoices, books.Expenses)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Financial Report"))
	for _, row := range summary.Rows() {
		fmt.Fprintln(out, cli.FormatRow(row.Label, row.Value))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf(
		"%d invoices (%d paid, %d unpaid), %d expenses",
		summary.InvoiceCount(), summary.PaidCount, summary.UnpaidCount, len(books.Expenses),
	)))

	return nil
}
