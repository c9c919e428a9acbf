/*
flatrate.go - Provisional flat-rate rules for non-employee profiles

PURPOSE:
  Self-employed and small-business profiles are currently modeled as a
  single flat rate on income net of deductible expenses:

    base      = max(0, income - expenses)
    tax       = base * rate
    net       = base - tax
    totalCost = income   (no employer side; the earner pays themselves)

  Net is what remains of the deductible base, not of the raw income:
  expenses are money already spent. The rates are placeholders pending
  proper modeling of each regime's actual contribution floors and
  advance-payment schedules; only the interface shape is stable. The
  base is clamped at zero so tax and net never go negative when claimed
  expenses exceed income.
*/
package tax

import "github.com/shopspring/decimal"

// flatRate builds a forward rule taxing (income - expenses) at a single rate.
func flatRate(rate decimal.Decimal) forwardFunc {
	return func(in Input) Breakdown {
		income := in.GrossMonthly

		base := income.Sub(in.Expenses)
		if base.IsNegative() {
			base = decimal.Zero
		}
		flatTax := base.Mul(rate)

		return Breakdown{
			TotalTax:  flatTax,
			Net:       base.Sub(flatTax),
			TotalCost: income,
			Items: []LineItem{
				item("Deductible expenses", in.Expenses),
				item("Taxable income", base),
				item("Flat tax", flatTax),
			},
		}
	}
}
