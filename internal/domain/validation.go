package domain

import (
	"math"
	"strings"
)

// Number is the set of numeric types the validation rules accept.
type Number interface {
	~int | ~int64 | ~float64
}

// RequireNonEmpty fails when text is empty or only whitespace.
func RequireNonEmpty(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return Validation("%s must not be empty", field)
	}
	return nil
}

// RequireNonNegativeID fails when id < 0. Zero is the "unset" id.
func RequireNonNegativeID(field string, id int) error {
	if id < 0 {
		return Validation("%s must not be negative (got %d)", field, id)
	}
	return nil
}

// RequireFinite fails when n is NaN or infinite. Integers always pass.
func RequireFinite[N Number](field string, n N) error {
	if f := float64(n); math.IsNaN(f) || math.IsInf(f, 0) {
		return Validation("%s must be a finite number (got %v)", field, n)
	}
	return nil
}

// RequireNonNegative fails when n < 0 or is not finite.
func RequireNonNegative[N Number](field string, n N) error {
	if err := RequireFinite(field, n); err != nil {
		return err
	}
	if n < 0 {
		return Validation("%s must not be negative (got %v)", field, n)
	}
	return nil
}

// RequirePositive fails when n <= 0 or is not finite.
func RequirePositive[N Number](field string, n N) error {
	if err := RequireFinite(field, n); err != nil {
		return err
	}
	if n <= 0 {
		return Validation("%s must be greater than zero (got %v)", field, n)
	}
	return nil
}

// FirstError returns the first non-nil error. Used to run a batch of checks
// before any mutation.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
