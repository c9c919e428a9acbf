/*
registry.go - Rule table and forward-calculation dispatch

PURPOSE:
  Maps every supported (jurisdiction, profile) pair to its forward rule.
  The table is a package-level constant: built once, read-only, safe for
  concurrent use without coordination. Pairs outside the table fail with
  ErrUnsupportedCombination; there is no fallback rule.

DISPATCH:
  Calculate validates input, applies the jurisdiction's payments-per-year
  default, and invokes the matching rule. Validation happens before
  dispatch so every rule can assume an in-domain Input.

SEE ALSO:
  - types.go: Input and Breakdown
  - invert.go: the inverse operations over the same table
*/
package tax

// forwardFunc is a pure forward rule: validated Input in, Breakdown out.
type forwardFunc func(in Input) Breakdown

type ruleKey struct {
	Jurisdiction Jurisdiction
	Profile      Profile
}

// ruleTable is the closed set of supported combinations. Never mutated
// after initialization.
var ruleTable = map[ruleKey]forwardFunc{
	{Bulgaria, Employee}:      bulgariaEmployee,
	{Bulgaria, SelfEmployed}:  flatRate(mustDecimal("0.10")),
	{Bulgaria, SmallBusiness}: flatRate(mustDecimal("0.10")),

	{Estonia, Employee}:      estoniaEmployee,
	{Estonia, SelfEmployed}:  flatRate(mustDecimal("0.20")),
	{Estonia, SmallBusiness}: flatRate(mustDecimal("0.20")),

	{Greece, Employee}:      greeceEmployee,
	{Greece, SelfEmployed}:  flatRate(mustDecimal("0.22")),
	{Greece, SmallBusiness}: flatRate(mustDecimal("0.22")),
}

// jurisdictionOrder fixes the display order of reference-data listings.
var jurisdictionOrder = []Jurisdiction{Bulgaria, Estonia, Greece}

var profileOrder = []Profile{Employee, SelfEmployed, SmallBusiness}

// Jurisdictions returns the supported jurisdictions in display order.
func Jurisdictions() []Jurisdiction {
	out := make([]Jurisdiction, len(jurisdictionOrder))
	copy(out, jurisdictionOrder)
	return out
}

// Profiles returns the supported employment profiles in display order.
func Profiles() []Profile {
	out := make([]Profile, len(profileOrder))
	copy(out, profileOrder)
	return out
}

// DefaultPaymentsPerYear returns the payment convention for a
// jurisdiction: 14 for Greece, 12 elsewhere.
func DefaultPaymentsPerYear(j Jurisdiction) int {
	if j == Greece {
		return 14
	}
	return 12
}

// Calculate runs the forward rule for a jurisdiction/profile pair.
//
// A zero in.PaymentsPerYear selects the jurisdiction default. Negative
// income or expenses, a negative payment count, or an unregistered pair
// fail with a descriptive error; nothing is silently approximated.
func Calculate(j Jurisdiction, p Profile, in Input) (Breakdown, error) {
	if in.GrossMonthly.IsNegative() {
		return Breakdown{}, &InvalidInputError{Field: "income", Reason: "must not be negative"}
	}
	if in.Expenses.IsNegative() {
		return Breakdown{}, &InvalidInputError{Field: "expenses", Reason: "must not be negative"}
	}
	if in.PaymentsPerYear == 0 {
		in.PaymentsPerYear = DefaultPaymentsPerYear(j)
	}
	if in.PaymentsPerYear < 1 {
		return Breakdown{}, &InvalidInputError{Field: "payments per year", Reason: "must be at least 1"}
	}

	rule, ok := ruleTable[ruleKey{j, p}]
	if !ok {
		return Breakdown{}, &UnsupportedCombinationError{Jurisdiction: j, Profile: p}
	}
	return rule(in), nil
}
