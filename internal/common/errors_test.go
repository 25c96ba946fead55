package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount", "must be greater than zero")

	if got, want := err.Error(), "amount: must be greater than zero"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !IsValidation(err) {
		t.Error("IsValidation() = false for a validation error")
	}
	if !IsValidation(fmt.Errorf("add invoice: %w", err)) {
		t.Error("IsValidation() = false for a wrapped validation error")
	}
	if IsValidation(errors.New("boom")) {
		t.Error("IsValidation() = true for an unrelated error")
	}
}
