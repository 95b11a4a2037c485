package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeProgressiveTax walks the brackets in order, taxing the slice of
// income inside each bracket at that bracket's rate. Income above the final
// threshold is not taxed, so the final threshold must exceed any real input.
func ComputeProgressiveTax(table domain.BracketTable, income decimal.Decimal) decimal.Decimal {
	totalTax := decimal.Zero
	previous := decimal.Zero

	for _, bracket := range table {
		incomeInBracket := decimal.Min(income, bracket.Threshold).Sub(previous)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
		if income.LessThanOrEqual(bracket.Threshold) {
			break
		}
		previous = bracket.Threshold
	}

	return totalTax
}

// ComputeJurisdictionTax adds the jurisdiction's optional surcharge to its bracket tax
func ComputeJurisdictionTax(table domain.JurisdictionTable, income decimal.Decimal) decimal.Decimal {
	tax := ComputeProgressiveTax(table.Brackets, income)
	if table.Surcharge != nil {
		tax = tax.Add(ComputeAdditionalTax(income, *table.Surcharge))
	}
	return tax
}

// bracketIndex returns the bracket holding the last dollar of income.
// Income above the sentinel reports the top bracket.
func bracketIndex(table domain.BracketTable, income decimal.Decimal) int {
	for i, bracket := range table {
		if income.LessThanOrEqual(bracket.Threshold) {
			return i
		}
	}
	return len(table) - 1
}

// MarginalRate returns the rate applied to the last dollar of income
func MarginalRate(table domain.BracketTable, income decimal.Decimal) decimal.Decimal {
	if len(table) == 0 {
		return decimal.Zero
	}
	return table[bracketIndex(table, income)].Rate
}

// BracketHeadroom returns how much more income fits before the current bracket's threshold
func BracketHeadroom(table domain.BracketTable, income decimal.Decimal) decimal.Decimal {
	if len(table) == 0 {
		return decimal.Zero
	}
	headroom := table[bracketIndex(table, income)].Threshold.Sub(income)
	if headroom.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return headroom
}
