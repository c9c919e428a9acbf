/*
estonia.go - Estonian employee regime with phased-out basic exemption

RULE SHAPE:
  Funded pension and employee unemployment insurance are flat percentages
  of gross. The basic exemption is not: the full annual exemption applies
  up to a lower annual-gross threshold, shrinks linearly between the lower
  and upper thresholds, and is zero above the upper one. Income tax is a
  flat rate on the positive part of (gross - deductions - exemption).

  The phase-out makes the net side continuous but non-affine, so net
  inversion bisects the forward function. The employer side is flat
  (social tax + employer unemployment insurance), so total cost remains
  affine and cost inversion stays closed-form.

SEE ALSO:
  - invert.go: bisection wiring for GrossForNet
  - solver: the generic search primitive
*/
package tax

import "github.com/shopspring/decimal"

var (
	eePensionRate              = mustDecimal("0.02")
	eeUnemploymentRate         = mustDecimal("0.016")
	eeIncomeTaxRate            = mustDecimal("0.20")
	eeEmployerSocialRate       = mustDecimal("0.33")
	eeEmployerUnemploymentRate = mustDecimal("0.008")

	// Annual basic exemption and its phase-out window, in annual gross.
	eeAnnualExemption = mustDecimal("7848") // 654/month at full rate
	eePhaseOutFloor   = mustDecimal("14400")
	eePhaseOutCeiling = mustDecimal("25200")
)

// eeMonthlyExemption returns the monthly basic exemption for a given
// monthly gross: full below the floor, zero above the ceiling, linear
// in between.
func eeMonthlyExemption(grossMonthly decimal.Decimal) decimal.Decimal {
	annualGross := grossMonthly.Mul(twelve)

	switch {
	case annualGross.LessThanOrEqual(eePhaseOutFloor):
		return eeAnnualExemption.Div(twelve)
	case annualGross.GreaterThanOrEqual(eePhaseOutCeiling):
		return decimal.Zero
	}

	window := eePhaseOutCeiling.Sub(eePhaseOutFloor)
	reduced := eeAnnualExemption.Sub(
		eeAnnualExemption.Div(window).Mul(annualGross.Sub(eePhaseOutFloor)))
	return reduced.Div(twelve)
}

func estoniaEmployee(in Input) Breakdown {
	gross := in.GrossMonthly

	pension := gross.Mul(eePensionRate)
	unemployment := gross.Mul(eeUnemploymentRate)
	exemption := eeMonthlyExemption(gross)

	taxable := gross.Sub(pension).Sub(unemployment).Sub(exemption)
	incomeTax := decimal.Zero
	if taxable.IsPositive() {
		incomeTax = taxable.Mul(eeIncomeTaxRate)
	}

	net := gross.Sub(pension).Sub(unemployment).Sub(incomeTax)

	employerSocial := gross.Mul(eeEmployerSocialRate)
	employerUnemployment := gross.Mul(eeEmployerUnemploymentRate)

	return Breakdown{
		TotalTax:  pension.Add(unemployment).Add(incomeTax),
		Net:       net,
		TotalCost: gross.Add(employerSocial).Add(employerUnemployment),
		Items: []LineItem{
			item("Funded pension (employee)", pension),
			item("Unemployment insurance (employee)", unemployment),
			item("Basic exemption", exemption),
			item("Income tax", incomeTax),
			item("Social tax (employer)", employerSocial),
			item("Unemployment insurance (employer)", employerUnemployment),
		},
	}
}
