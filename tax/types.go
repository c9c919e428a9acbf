/*
Package tax computes salary breakdowns under national tax and
social-insurance regimes, and inverts them.

PURPOSE:
  Given a monthly gross salary, each jurisdiction's forward rule produces
  the employee's net salary, the employer's total cost, and an ordered
  line-item breakdown of every deduction and contribution. The package
  also solves the inverse problem: the gross that yields a desired net
  salary or a desired total employer cost.

KEY CONCEPTS IN THIS FILE (types.go):
  - Jurisdiction / Profile: closed, typed-string enumerations selecting
    a rule set
  - Input: the compensation parameters a forward rule consumes
  - Breakdown: the structured result; Items preserves insertion order
    because callers display line items in the order rules emit them

DESIGN PRINCIPLES:
  1. Purity: every forward rule is a deterministic function of its Input;
     identical input yields bit-identical output, which the numeric
     inversion relies on.
  2. Precision: uses decimal.Decimal for all monetary quantities to avoid
     floating-point drift across repeated bisection evaluations.
  3. Immutability: the rule table is built once at package init and never
     mutated; every call works entirely on its own stack.

USAGE:
  b, err := tax.Calculate(tax.Bulgaria, tax.Employee, tax.Input{
      GrossMonthly: decimal.NewFromInt(1000),
  })
  // b.Net, b.TotalCost, b.Items...

SEE ALSO:
  - registry.go: rule table and dispatch
  - invert.go: gross-for-net / gross-for-total-cost
  - bulgaria.go, estonia.go, greece.go: per-jurisdiction rules
*/
package tax

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// JURISDICTIONS AND PROFILES
// =============================================================================

// Jurisdiction identifies a supported national tax regime.
type Jurisdiction string

const (
	Bulgaria Jurisdiction = "bulgaria"
	Estonia  Jurisdiction = "estonia"
	Greece   Jurisdiction = "greece"
)

// Label returns the display name for a jurisdiction.
func (j Jurisdiction) Label() string {
	switch j {
	case Bulgaria:
		return "Bulgaria"
	case Estonia:
		return "Estonia"
	case Greece:
		return "Greece"
	}
	return string(j)
}

// Profile identifies the employment arrangement a rule set applies to.
type Profile string

const (
	Employee      Profile = "employee"
	SelfEmployed  Profile = "self_employed"
	SmallBusiness Profile = "small_business"
)

// Label returns the display name for a profile.
func (p Profile) Label() string {
	switch p {
	case Employee:
		return "Employee"
	case SelfEmployed:
		return "Self-employed"
	case SmallBusiness:
		return "Small business"
	}
	return string(p)
}

// =============================================================================
// INPUT
// =============================================================================

// Input carries the compensation parameters for one forward calculation.
// GrossMonthly is the only field employee rules require; Expenses only
// affects the flat-rate non-employee profiles. PaymentsPerYear of zero
// means "use the jurisdiction default" (12 everywhere except Greece's
// 14-payment convention).
type Input struct {
	GrossMonthly    decimal.Decimal
	Expenses        decimal.Decimal
	PaymentsPerYear int
}

// =============================================================================
// BREAKDOWN
// =============================================================================

// LineItem is a single named quantity in a salary breakdown.
type LineItem struct {
	Label  string
	Amount decimal.Decimal
}

// Breakdown is the full result of a forward calculation. All figures are
// monthly. Invariants every rule upholds:
//
//	Net       = GrossMonthly - (employee-side deductions)
//	TotalCost = GrossMonthly + (employer-side contributions)
//	0 <= TotalTax <= GrossMonthly
type Breakdown struct {
	// TotalTax is the sum of all employee-side taxes and mandatory
	// contributions deducted from gross.
	TotalTax decimal.Decimal

	// Net is the employee's take-home amount.
	Net decimal.Decimal

	// TotalCost is what the paying entity must provision, including
	// employer-side contributions never visible to the employee.
	TotalCost decimal.Decimal

	// Items lists every intermediate quantity in display order.
	Items []LineItem
}

func item(label string, amount decimal.Decimal) LineItem {
	return LineItem{Label: label, Amount: amount}
}

// =============================================================================
// DECIMAL HELPERS
// =============================================================================

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// mustDecimal parses a statically known decimal literal. Panics on
// malformed input, which can only happen at package init.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("tax: bad decimal literal: " + s)
	}
	return d
}
