package components

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallyhq/tally/internal/common"
)

// parseFormDate parses a form date field, reporting a validation error that
// names the field.
func parseFormDate(field, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, common.NewValidationError(field, "must be a date in YYYY-MM-DD form")
	}
	return t, nil
}

// parseFormAmount parses a form amount field. A leading dollar sign is
// tolerated.
func parseFormAmount(field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "$"))
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, common.NewValidationError(field, "must be a number")
	}
	return amount, nil
}
