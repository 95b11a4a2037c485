package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputePreferentialTax taxes amount (qualified dividends and long-term gains)
// stacked on top of ordinary income. Ordinary income, totalTaxableIncome less
// amount, fills the brackets first; amount is split across every bracket it
// spans and each portion is taxed at that bracket's rate.
func ComputePreferentialTax(amount, totalTaxableIncome decimal.Decimal, table domain.PreferentialRateTable) decimal.Decimal {
	ordinaryIncome := decimal.Max(decimal.Zero, totalTaxableIncome.Sub(amount))

	tax := decimal.Zero
	remaining := amount
	previous := decimal.Zero

	for _, bracket := range table {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		floor := decimal.Max(ordinaryIncome, previous)
		room := decimal.Max(decimal.Zero, bracket.Threshold.Sub(floor))
		portion := decimal.Min(remaining, room)
		if portion.GreaterThan(decimal.Zero) {
			tax = tax.Add(portion.Mul(bracket.Rate))
			remaining = remaining.Sub(portion)
		}
		previous = bracket.Threshold
	}

	return tax
}
