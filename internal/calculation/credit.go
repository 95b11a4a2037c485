package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeCredit returns the per-unit credit after phase-out.
// Every started increment above the threshold costs a full reduction, and
// the credit never goes below zero.
func ComputeCredit(unitCount int, modifiedGrossIncome decimal.Decimal, schedule domain.CreditSchedule, rule domain.PhaseOutRule) decimal.Decimal {
	if unitCount <= 0 {
		return decimal.Zero
	}

	baseCredit := schedule.CreditPerUnit.Mul(decimal.NewFromInt(int64(unitCount)))
	if modifiedGrossIncome.LessThanOrEqual(rule.Threshold) {
		return baseCredit
	}

	excess := modifiedGrossIncome.Sub(rule.Threshold)
	increments, remainder := excess.QuoRem(rule.IncrementSize, 0)
	if remainder.GreaterThan(decimal.Zero) {
		increments = increments.Add(decimal.NewFromInt(1))
	}
	reduction := increments.Mul(rule.ReductionPerIncrement)

	return decimal.Max(decimal.Zero, baseCredit.Sub(reduction))
}
