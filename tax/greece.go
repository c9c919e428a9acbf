/*
greece.go - Greek employee regime: annualization plus two progressive schedules

RULE SHAPE:
  Greek salaries are conventionally paid in 14 installments, so the rule
  annualizes monthly gross by a configurable payments-per-year multiplier
  before applying annual schedules, then divides results back to monthly
  figures by the same multiplier.

  A flat EFKA contribution is deducted first; the remainder is annual
  taxable income, run through two independent progressive bracket
  schedules: the five-band income tax and the four-band solidarity
  contribution. Two marginal schedules make the net side non-affine, so
  net inversion bisects the forward function held at the caller's
  payments-per-year. Employer contributions are flat, so cost inversion
  stays closed-form.

SEE ALSO:
  - invert.go: bisection wiring for GrossForNet
  - estonia.go: the other numerically-inverted regime
*/
package tax

import "github.com/shopspring/decimal"

var (
	grEmployeeInsuranceRate = mustDecimal("0.1387")
	grEmployerInsuranceRate = mustDecimal("0.2229")
)

// taxBracket is one band of a progressive schedule. A zero ceiling marks
// the open-ended top band.
type taxBracket struct {
	ceiling decimal.Decimal
	rate    decimal.Decimal
}

var grIncomeTaxBrackets = []taxBracket{
	{ceiling: mustDecimal("10000"), rate: mustDecimal("0.09")},
	{ceiling: mustDecimal("20000"), rate: mustDecimal("0.22")},
	{ceiling: mustDecimal("30000"), rate: mustDecimal("0.28")},
	{ceiling: mustDecimal("40000"), rate: mustDecimal("0.36")},
	{rate: mustDecimal("0.44")},
}

var grSolidarityBrackets = []taxBracket{
	{ceiling: mustDecimal("12000"), rate: decimal.Zero},
	{ceiling: mustDecimal("20000"), rate: mustDecimal("0.022")},
	{ceiling: mustDecimal("30000"), rate: mustDecimal("0.05")},
	{rate: mustDecimal("0.065")},
}

// progressiveTax applies cumulative marginal rates: each band between
// successive ceilings is taxed at its own rate regardless of how high the
// total income reaches.
func progressiveTax(taxable decimal.Decimal, schedule []taxBracket) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}

	total := decimal.Zero
	floor := decimal.Zero
	for _, b := range schedule {
		upper := taxable
		if !b.ceiling.IsZero() && b.ceiling.LessThan(taxable) {
			upper = b.ceiling
		}
		if upper.LessThanOrEqual(floor) {
			break
		}
		total = total.Add(upper.Sub(floor).Mul(b.rate))
		floor = upper
	}
	return total
}

func greeceEmployee(in Input) Breakdown {
	gross := in.GrossMonthly
	payments := decimal.NewFromInt(int64(in.PaymentsPerYear))

	annualGross := gross.Mul(payments)
	annualInsurance := annualGross.Mul(grEmployeeInsuranceRate)
	annualTaxable := annualGross.Sub(annualInsurance)

	annualIncomeTax := progressiveTax(annualTaxable, grIncomeTaxBrackets)
	annualSolidarity := progressiveTax(annualTaxable, grSolidarityBrackets)

	annualNet := annualGross.Sub(annualInsurance).Sub(annualIncomeTax).Sub(annualSolidarity)

	insurance := annualInsurance.Div(payments)
	incomeTax := annualIncomeTax.Div(payments)
	solidarity := annualSolidarity.Div(payments)
	employer := gross.Mul(grEmployerInsuranceRate)

	return Breakdown{
		TotalTax:  insurance.Add(incomeTax).Add(solidarity),
		Net:       annualNet.Div(payments),
		TotalCost: gross.Add(employer),
		Items: []LineItem{
			item("Social insurance EFKA (employee)", insurance),
			item("Annual taxable income", annualTaxable),
			item("Income tax", incomeTax),
			item("Solidarity contribution", solidarity),
			item("Social insurance EFKA (employer)", employer),
		},
	}
}
