/*
invert.go - Solving for gross from a target net or target total cost

PURPOSE:
  The forward rules map gross to net and total cost; callers often know
  the target instead ("what gross gives a 2000 net?"). This file provides
  the inverse operations for the employee regimes.

STRATEGY BY JURISDICTION:
  Bulgaria     net: closed form (affine rule, divide by the coefficient)
               cost: closed form
  Estonia      net: bisection (phase-out exemption, no closed form)
               cost: closed form (employer side is flat)
  Greece       net: bisection (two progressive schedules), re-derived per
                    call with the caller's payments-per-year
               cost: closed form (employer side is flat)

SEARCH BRACKET:
  Net is always below gross in these regimes, so the search starts at
  [target, 2*target]. A doubled target is not always enough gross — the
  top Greek marginal bands push the ratio past 2 for large salaries — so
  the upper bound is doubled until the forward net reaches the target
  before bisecting. If the search still exhausts its iteration cap, the
  best-effort gross is returned together with a DivergenceError; callers
  wanting a hard guarantee re-run the forward rule on the result and
  compare (the API layer always does).
*/
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/warp/salary-engine/solver"
)

var two = decimal.NewFromInt(2)

// maxBracketDoublings caps the upward bracket expansion. 20 doublings
// cover a gross over a million times the target, beyond any real salary.
const maxBracketDoublings = 20

// GrossForNet returns the monthly gross that yields targetNet as the
// employee take-home in the given jurisdiction. paymentsPerYear of zero
// selects the jurisdiction default; it only influences Greece.
//
// A DivergenceError result is a warning, not a failure: the returned
// gross is still the best approximation found.
func GrossForNet(j Jurisdiction, targetNet decimal.Decimal, paymentsPerYear int) (decimal.Decimal, error) {
	if targetNet.IsNegative() {
		return decimal.Zero, &InvalidInputError{Field: "target net", Reason: "must not be negative"}
	}
	forward, paymentsPerYear, err := employeeRule(j, paymentsPerYear)
	if err != nil {
		return decimal.Zero, err
	}

	if j == Bulgaria {
		return targetNet.Div(bgNetCoefficient), nil
	}

	net := func(gross decimal.Decimal) decimal.Decimal {
		return forward(Input{GrossMonthly: gross, PaymentsPerYear: paymentsPerYear}).Net
	}
	return invertUpward(net, targetNet)
}

// GrossForTotalCost returns the monthly gross whose total employer cost
// is targetCost. Employer-side contributions are flat percentages in
// every supported jurisdiction, so this is a single division even where
// the net side needs numeric search.
func GrossForTotalCost(j Jurisdiction, targetCost decimal.Decimal, paymentsPerYear int) (decimal.Decimal, error) {
	if targetCost.IsNegative() {
		return decimal.Zero, &InvalidInputError{Field: "target cost", Reason: "must not be negative"}
	}
	if _, _, err := employeeRule(j, paymentsPerYear); err != nil {
		return decimal.Zero, err
	}
	return targetCost.Div(employerLoadFactor(j)), nil
}

// employeeRule resolves the employee forward rule and the effective
// payments-per-year for a jurisdiction, validating both.
func employeeRule(j Jurisdiction, paymentsPerYear int) (forwardFunc, int, error) {
	rule, ok := ruleTable[ruleKey{j, Employee}]
	if !ok {
		return nil, 0, &UnsupportedCombinationError{Jurisdiction: j, Profile: Employee}
	}
	if paymentsPerYear == 0 {
		paymentsPerYear = DefaultPaymentsPerYear(j)
	}
	if paymentsPerYear < 1 {
		return nil, 0, &InvalidInputError{Field: "payments per year", Reason: "must be at least 1"}
	}
	return rule, paymentsPerYear, nil
}

// employerLoadFactor is totalCost/gross for the employee regime.
func employerLoadFactor(j Jurisdiction) decimal.Decimal {
	switch j {
	case Bulgaria:
		return one.Add(bgEmployerInsuranceRate)
	case Estonia:
		return one.Add(eeEmployerSocialRate).Add(eeEmployerUnemploymentRate)
	case Greece:
		return one.Add(grEmployerInsuranceRate)
	}
	return one
}

// invertUpward finds gross >= target such that f(gross) hits target,
// for f with f(x) <= x (net is never above gross). The upper bound is
// expanded until it brackets the root, then handed to the bisection
// primitive.
func invertUpward(f solver.Func, target decimal.Decimal) (decimal.Decimal, error) {
	low, high := target, target.Mul(two)
	for i := 0; i < maxBracketDoublings && f(high).LessThan(target); i++ {
		low = high
		high = high.Mul(two)
	}

	res := solver.Bisect(f, target, low, high, solver.DefaultConfig())
	if !res.Converged {
		return res.Root, &DivergenceError{
			Target:     target,
			BestEffort: res.Root,
			Iterations: res.Iterations,
		}
	}
	return res.Root, nil
}
