package tax_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/salary-engine/tax"
)

// =============================================================================
// DISPATCH AND VALIDATION
// =============================================================================

func TestCalculate_UnsupportedCombination_Fails(t *testing.T) {
	// GIVEN: A jurisdiction outside the closed set
	// THEN: A descriptive dispatch error, never a silent fallback

	_, err := tax.Calculate(tax.Jurisdiction("atlantis"), tax.Employee, tax.Input{GrossMonthly: dec(1000)})
	if !errors.Is(err, tax.ErrUnsupportedCombination) {
		t.Fatalf("expected ErrUnsupportedCombination, got %v", err)
	}
	if !tax.IsClientError(err) {
		t.Error("dispatch errors should classify as client errors")
	}
}

func TestCalculate_UnknownProfile_Fails(t *testing.T) {
	_, err := tax.Calculate(tax.Bulgaria, tax.Profile("intern"), tax.Input{GrossMonthly: dec(1000)})
	if !errors.Is(err, tax.ErrUnsupportedCombination) {
		t.Fatalf("expected ErrUnsupportedCombination, got %v", err)
	}
}

func TestCalculate_NegativeIncome_Fails(t *testing.T) {
	_, err := tax.Calculate(tax.Bulgaria, tax.Employee, tax.Input{GrossMonthly: dec(-1)})
	if !errors.Is(err, tax.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCalculate_NegativePaymentsPerYear_Fails(t *testing.T) {
	_, err := tax.Calculate(tax.Greece, tax.Employee, tax.Input{GrossMonthly: dec(1000), PaymentsPerYear: -3})
	if !errors.Is(err, tax.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListings_StableOrder(t *testing.T) {
	// Reference data keeps its display order across calls.

	js := tax.Jurisdictions()
	want := []tax.Jurisdiction{tax.Bulgaria, tax.Estonia, tax.Greece}
	if len(js) != len(want) {
		t.Fatalf("got %d jurisdictions, want %d", len(js), len(want))
	}
	for i := range want {
		if js[i] != want[i] {
			t.Errorf("jurisdiction[%d] = %v, want %v", i, js[i], want[i])
		}
	}

	ps := tax.Profiles()
	if len(ps) != 3 || ps[0] != tax.Employee {
		t.Errorf("unexpected profile listing: %v", ps)
	}
}

func TestDefaultPaymentsPerYear(t *testing.T) {
	if got := tax.DefaultPaymentsPerYear(tax.Greece); got != 14 {
		t.Errorf("Greece default = %d, want 14", got)
	}
	if got := tax.DefaultPaymentsPerYear(tax.Bulgaria); got != 12 {
		t.Errorf("Bulgaria default = %d, want 12", got)
	}
}

// =============================================================================
// FLAT-RATE PROFILES
// =============================================================================

func TestFlatRateProfiles_ExpensesReduceTax(t *testing.T) {
	// GIVEN: Self-employed income 3000 with 1000 deductible expenses
	// THEN: tax = (income - expenses) * rate, net = (income - expenses) -
	//       tax, total cost stays at income

	for _, j := range tax.Jurisdictions() {
		b := calc(t, j, tax.SelfEmployed, tax.Input{GrossMonthly: dec(3000), Expenses: dec(1000)})

		noExpenses := calc(t, j, tax.SelfEmployed, tax.Input{GrossMonthly: dec(3000)})
		if !b.TotalTax.LessThan(noExpenses.TotalTax) {
			t.Errorf("%s: expenses should reduce tax (%v vs %v)", j, b.TotalTax, noExpenses.TotalTax)
		}
		if !b.TotalCost.Equal(dec(3000)) {
			t.Errorf("%s: total cost = %v, want income 3000", j, b.TotalCost)
		}
		if !b.Net.Add(b.TotalTax).Equal(dec(2000)) {
			t.Errorf("%s: net + tax = %v, want the 2000 deductible base", j, b.Net.Add(b.TotalTax))
		}
	}
}

func TestFlatRateProfiles_NetIsBaseMinusTax(t *testing.T) {
	// GIVEN: Self-employed income 3000 with 1000 expenses at the 10% rate
	// THEN: net = (income - expenses) * (1 - rate) = 1800, never
	//       income - tax (which would credit spent expenses back as net)

	b := calc(t, tax.Bulgaria, tax.SelfEmployed, tax.Input{GrossMonthly: dec(3000), Expenses: dec(1000)})

	if !b.TotalTax.Equal(dec(200)) {
		t.Errorf("tax = %v, want 200", b.TotalTax)
	}
	if !b.Net.Equal(dec(1800)) {
		t.Errorf("net = %v, want 1800", b.Net)
	}
}

func TestFlatRateProfiles_ExpensesAboveIncome_ClampToZero(t *testing.T) {
	// GIVEN: Claimed expenses exceeding the income
	// THEN: The taxable base clamps at zero, so tax and net are both zero

	b := calc(t, tax.Bulgaria, tax.SmallBusiness, tax.Input{GrossMonthly: dec(500), Expenses: dec(900)})

	if !b.TotalTax.IsZero() {
		t.Errorf("tax = %v, want 0", b.TotalTax)
	}
	if !b.Net.IsZero() {
		t.Errorf("net = %v, want 0", b.Net)
	}
}

// =============================================================================
// ENGINE-WIDE PROPERTIES
// =============================================================================

func TestProperty_NetBelowGross_CostAboveGross(t *testing.T) {
	// GIVEN: Random grosses across every jurisdiction and profile
	// THEN: net <= gross, totalCost >= gross, 0 <= totalTax <= gross

	rng := rand.New(rand.NewSource(42))

	for _, j := range tax.Jurisdictions() {
		for _, p := range tax.Profiles() {
			for i := 0; i < 200; i++ {
				gross := decimal.NewFromFloat(rng.Float64() * 20000)
				b := calc(t, j, p, tax.Input{GrossMonthly: gross})

				if b.Net.GreaterThan(gross) {
					t.Fatalf("%s/%s gross %v: net %v exceeds gross", j, p, gross, b.Net)
				}
				if b.TotalCost.LessThan(gross) {
					t.Fatalf("%s/%s gross %v: cost %v below gross", j, p, gross, b.TotalCost)
				}
				if b.TotalTax.IsNegative() || b.TotalTax.GreaterThan(gross) {
					t.Fatalf("%s/%s gross %v: total tax %v out of [0, gross]", j, p, gross, b.TotalTax)
				}
			}
		}
	}
}

func TestProperty_NetAndCostMonotonicInGross(t *testing.T) {
	// GIVEN: Random increasing gross sequences
	// THEN: Net and total cost never decrease (the bisection search
	//       depends on this)

	rng := rand.New(rand.NewSource(7))

	for _, j := range tax.Jurisdictions() {
		grosses := make([]float64, 300)
		for i := range grosses {
			grosses[i] = rng.Float64() * 30000
		}
		sort.Float64s(grosses)

		prevNet, prevCost := decimal.Zero, decimal.Zero
		for i, g := range grosses {
			b := calc(t, j, tax.Employee, tax.Input{GrossMonthly: dec(g)})
			if i > 0 {
				if b.Net.LessThan(prevNet) {
					t.Fatalf("%s: net decreased at gross %v: %v < %v", j, g, b.Net, prevNet)
				}
				if b.TotalCost.LessThan(prevCost) {
					t.Fatalf("%s: cost decreased at gross %v: %v < %v", j, g, b.TotalCost, prevCost)
				}
			}
			prevNet, prevCost = b.Net, b.TotalCost
		}
	}
}

func TestProperty_CalculateIsDeterministic(t *testing.T) {
	// Identical input must produce bit-identical output; the inversion
	// layer treats the forward rule as a stable black box.

	in := tax.Input{GrossMonthly: dec(1234.56), PaymentsPerYear: 14}
	first := calc(t, tax.Greece, tax.Employee, in)
	for i := 0; i < 10; i++ {
		again := calc(t, tax.Greece, tax.Employee, in)
		if !again.Net.Equal(first.Net) || !again.TotalTax.Equal(first.TotalTax) || !again.TotalCost.Equal(first.TotalCost) {
			t.Fatal("repeated calculation diverged")
		}
	}
}
