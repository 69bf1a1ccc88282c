// Package gymstats holds what the workout, body-weight and target
// packages share: the date format and payload validation.
package gymstats

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is how every entry date is stored and exchanged.
const DateLayout = "2006-01-02"

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func ValidateDate(field, date string) error {
	if date == "" {
		return &ValidationError{Field: field, Reason: "required"}
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return &ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
	}
	return nil
}

func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "required"}
	}
	return nil
}

func ValidateNonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ValidationError{Field: field, Reason: "not a number"}
	}
	if value < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

func ValidatePositive(field string, value float64) error {
	if err := ValidateNonNegative(field, value); err != nil {
		return err
	}
	if value == 0 {
		return &ValidationError{Field: field, Reason: "must be positive"}
	}
	return nil
}

// Today returns the current date in DateLayout.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
