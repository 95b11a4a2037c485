package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeSurtax applies rule to the smaller of investment income and the
// amount by which modified gross income exceeds the threshold.
func ComputeSurtax(investmentIncome, modifiedGrossIncome decimal.Decimal, rule domain.SurchargeRule) decimal.Decimal {
	excess := decimal.Max(decimal.Zero, modifiedGrossIncome.Sub(rule.Threshold))
	return decimal.Min(investmentIncome, excess).Mul(rule.Rate)
}

// ComputeAdditionalTax applies rule to all income above its threshold
func ComputeAdditionalTax(income decimal.Decimal, rule domain.SurchargeRule) decimal.Decimal {
	excess := income.Sub(rule.Threshold)
	if excess.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return excess.Mul(rule.Rate)
}
