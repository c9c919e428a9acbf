/*
bulgaria.go - Bulgarian flat-rate employee regime

RULE SHAPE:
  Employee social insurance and income tax are both flat percentages, and
  the tax base is gross net of insurance, so the whole forward map is an
  affine zero-intercept transform of gross:

    net       = gross * (1 - r_insurance) * (1 - r_tax)
    totalCost = gross * (1 + r_employer)

  This is the only supported regime with an exact algebraic inverse; both
  inversions in invert.go divide by the coefficients below instead of
  searching.

SEE ALSO:
  - invert.go: closed-form GrossForNet / GrossForTotalCost
  - registry.go: wiring into the rule table
*/
package tax

var (
	bgEmployeeInsuranceRate = mustDecimal("0.1378")
	bgIncomeTaxRate         = mustDecimal("0.10")
	bgEmployerInsuranceRate = mustDecimal("0.1918")
)

// bgNetCoefficient is net/gross for the employee regime, used by the
// closed-form net inversion.
var bgNetCoefficient = one.Sub(bgEmployeeInsuranceRate).Mul(one.Sub(bgIncomeTaxRate))

func bulgariaEmployee(in Input) Breakdown {
	gross := in.GrossMonthly

	insurance := gross.Mul(bgEmployeeInsuranceRate)
	taxable := gross.Sub(insurance)
	incomeTax := taxable.Mul(bgIncomeTaxRate)

	net := gross.Sub(insurance).Sub(incomeTax)
	employer := gross.Mul(bgEmployerInsuranceRate)

	return Breakdown{
		TotalTax:  insurance.Add(incomeTax),
		Net:       net,
		TotalCost: gross.Add(employer),
		Items: []LineItem{
			item("Social insurance (employee)", insurance),
			item("Taxable income", taxable),
			item("Income tax", incomeTax),
			item("Social insurance (employer)", employer),
		},
	}
}
