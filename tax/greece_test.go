package tax_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/salary-engine/tax"
)

// =============================================================================
// ANNUALIZATION
// =============================================================================

func TestGreece_Employee_DefaultsToFourteenPayments(t *testing.T) {
	// GIVEN: No explicit payments-per-year
	// WHEN: Calculating with the default and with an explicit 14
	// THEN: Results are identical; an explicit 12 differs (the schedules
	//       see a different annual income)

	in := tax.Input{GrossMonthly: dec(1500)}
	byDefault := calc(t, tax.Greece, tax.Employee, in)

	in.PaymentsPerYear = 14
	explicit := calc(t, tax.Greece, tax.Employee, in)

	if !byDefault.Net.Equal(explicit.Net) {
		t.Errorf("default net %v != explicit 14-payment net %v", byDefault.Net, explicit.Net)
	}

	in.PaymentsPerYear = 12
	twelve := calc(t, tax.Greece, tax.Employee, in)
	if twelve.Net.Equal(byDefault.Net) {
		t.Error("12-payment net should differ from 14-payment net at the same gross")
	}
}

func TestGreece_Employee_MonthlyFiguresScaleFromAnnual(t *testing.T) {
	// GIVEN: Gross 1000 over 14 payments (annual 14000)
	// THEN: EFKA is 13.87% of gross; annual taxable, tax, and levy are
	//       consistent with the bracket schedules

	b := calc(t, tax.Greece, tax.Employee, tax.Input{GrossMonthly: dec(1000)})

	if !itemAmount(t, b, "Social insurance EFKA (employee)").Equal(dec(138.70)) {
		t.Errorf("EFKA = %v, want 138.70", itemAmount(t, b, "Social insurance EFKA (employee)"))
	}

	// annual taxable = 14000 * (1 - 0.1387) = 12058.20
	if !itemAmount(t, b, "Annual taxable income").Equal(dec(12058.20)) {
		t.Errorf("annual taxable = %v, want 12058.20", itemAmount(t, b, "Annual taxable income"))
	}

	// income tax: 900 + 2058.20*0.22 = 1352.804 annually
	wantTax := dec(1352.804).Div(dec(14))
	if !approxEqual(itemAmount(t, b, "Income tax"), wantTax, dec(0.0001)) {
		t.Errorf("monthly income tax = %v, want %v", itemAmount(t, b, "Income tax"), wantTax)
	}

	// solidarity: 58.20*0.022 = 1.2804 annually
	wantLevy := dec(1.2804).Div(dec(14))
	if !approxEqual(itemAmount(t, b, "Solidarity contribution"), wantLevy, dec(0.0001)) {
		t.Errorf("monthly solidarity = %v, want %v", itemAmount(t, b, "Solidarity contribution"), wantLevy)
	}

	if !b.TotalCost.Equal(dec(1222.90)) {
		t.Errorf("total cost = %v, want 1222.90", b.TotalCost)
	}
}

// =============================================================================
// INVERSION
// =============================================================================

func TestGreece_GrossForNet_RoundTrips(t *testing.T) {
	// GIVEN: Net targets across the bracket schedule, both payment conventions
	// WHEN: Recovering gross and re-running the forward rule at the same
	//       payments-per-year
	// THEN: The reproduced net is within bisection tolerance

	for _, payments := range []int{14, 12} {
		for _, target := range []float64{500, 900, 1500, 2500, 6000} {
			gross, err := tax.GrossForNet(tax.Greece, dec(target), payments)
			if err != nil {
				t.Fatalf("target %v (%d payments): unexpected error: %v", target, payments, err)
			}

			b := calc(t, tax.Greece, tax.Employee, tax.Input{
				GrossMonthly:    gross,
				PaymentsPerYear: payments,
			})
			if !approxEqual(b.Net, dec(target), dec(0.01)) {
				t.Errorf("target %v (%d payments): round trip net = %v (gross %v)",
					target, payments, b.Net, gross)
			}
		}
	}
}

func TestGreece_GrossForNet_HighIncomeNeedsWiderBracket(t *testing.T) {
	// GIVEN: A net target deep in the 44% band, where gross exceeds twice
	//        the net and the naive [target, 2*target] bracket misses the root
	// WHEN: Inverting
	// THEN: The expanding bracket still converges and round-trips

	target := dec(50000)
	gross, err := tax.GrossForNet(tax.Greece, target, 14)
	if err != nil && !errors.Is(err, tax.ErrNumericDivergence) {
		t.Fatalf("unexpected error: %v", err)
	}

	if gross.LessThanOrEqual(target.Mul(dec(2))) {
		t.Errorf("expected gross above 2x target at this income, got %v", gross)
	}

	b := calc(t, tax.Greece, tax.Employee, tax.Input{GrossMonthly: gross, PaymentsPerYear: 14})
	if !approxEqual(b.Net, target, dec(0.01)) {
		t.Errorf("round trip net = %v, want %v (gross %v)", b.Net, target, gross)
	}
}

func TestGreece_GrossForTotalCost_ClosedForm(t *testing.T) {
	// GIVEN: Target total cost 1222.90
	// THEN: Gross 1000 exactly (flat 22.29% employer load)

	gross, err := tax.GrossForTotalCost(tax.Greece, dec(1222.90), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(gross, dec(1000), dec(0.000001)) {
		t.Errorf("gross = %v, want 1000", gross)
	}
}

// =============================================================================
// MONOTONICITY GUARD
// =============================================================================

func TestGreece_NetKeepsIncreasingThroughBracketEdges(t *testing.T) {
	// GIVEN: Grosses straddling every bracket edge (annualized at 14)
	// THEN: Net strictly increases; marginal rates never exceed 100%

	prev := decimal.Zero
	first := true
	for _, g := range []float64{600, 700, 820, 830, 1650, 1660, 2480, 2490, 3300, 3320, 5000} {
		b := calc(t, tax.Greece, tax.Employee, tax.Input{GrossMonthly: dec(g)})
		if !first && b.Net.LessThanOrEqual(prev) {
			t.Errorf("net not increasing at gross %v: %v <= %v", g, b.Net, prev)
		}
		prev, first = b.Net, false
	}
}
