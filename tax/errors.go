/*
errors.go - Centralized error types for the tax engine

PURPOSE:
  All error values in one place for consistency and discoverability.
  Forward-calculation errors are hard failures that propagate to the
  caller; numeric divergence is a warning carried alongside a usable
  best-effort value.

ERROR CATEGORIES:
  1. Input errors - negative income, bad payment counts
  2. Dispatch errors - unknown jurisdiction/profile pairs
  3. Numeric errors - bisection exhausted without meeting tolerance

USAGE:
  gross, err := tax.GrossForNet(tax.Greece, target, 14)
  if errors.Is(err, tax.ErrNumericDivergence) {
      // gross is still usable; verify by re-running the forward pass
  }

SEE ALSO:
  - registry.go: raises input and dispatch errors
  - invert.go: raises divergence warnings
*/
package tax

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned for out-of-domain calculation inputs:
	// negative income or expenses, non-positive payment counts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedCombination is returned when no rule exists for a
	// jurisdiction/profile pair. There is no silent fallback.
	ErrUnsupportedCombination = errors.New("unsupported jurisdiction/profile combination")

	// ErrNumericDivergence is returned when the bisection search exhausted
	// its iteration cap without meeting tolerance. The accompanying value
	// is still the best approximation found and is safe to display after
	// re-running the forward calculation with it.
	ErrNumericDivergence = errors.New("numeric inversion did not converge")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError reports which input field was out of domain.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// UnsupportedCombinationError reports the pair that has no rule.
type UnsupportedCombinationError struct {
	Jurisdiction Jurisdiction
	Profile      Profile
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("no rule for jurisdiction %q with profile %q", e.Jurisdiction, e.Profile)
}

func (e *UnsupportedCombinationError) Unwrap() error {
	return ErrUnsupportedCombination
}

// DivergenceError reports a best-effort inversion result. Warning-level:
// the BestEffort gross is within the narrowest bracket the search reached
// and is expected to be off by at most a few currency units.
type DivergenceError struct {
	Target     decimal.Decimal
	BestEffort decimal.Decimal
	Iterations int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("inversion for target %v stopped after %d iterations at %v",
		e.Target, e.Iterations, e.BestEffort)
}

func (e *DivergenceError) Unwrap() error {
	return ErrNumericDivergence
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than an engine defect.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrUnsupportedCombination)
}
