package calculation

import (
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeCredit(t *testing.T) {
	schedule := domain.CreditSchedule{CreditPerUnit: dec("2200"), RefundableCap: dec("1700")}
	rule := domain.PhaseOutRule{Threshold: dec("400000"), ReductionPerIncrement: dec("50"), IncrementSize: dec("1000")}

	tests := []struct {
		name     string
		units    int
		magi     string
		expected string
	}{
		{"no dependents", 0, "100000", "0"},
		{"no dependents above threshold", 0, "10000000", "0"},
		{"below threshold", 2, "150000", "4400"},
		{"at threshold", 3, "400000", "6600"},
		{"one cent over threshold costs a full increment", 3, "400000.01", "6550"},
		{"exactly one increment", 3, "401000", "6550"},
		{"just past one increment", 3, "401001", "6500"},
		// 50 increments of 50
		{"partial phase-out", 3, "450000", "4100"},
		{"fully phased out", 1, "500000", "0"},
		{"never negative", 1, "9000000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeCredit(tt.units, dec(tt.magi), schedule, rule)
			assert.True(t, dec(tt.expected).Equal(result), "expected %s, got %s", tt.expected, result)
		})
	}
}

func TestComputeCredit_NonIncreasingInIncome(t *testing.T) {
	rules := testRules(t)
	schedule := rules.ChildCredit[2025]

	previous := ComputeCredit(4, decimal.Zero, schedule, rules.ChildCreditPhaseOut)
	for magi := decimal.Zero; magi.LessThanOrEqual(dec("700000")); magi = magi.Add(dec("333.33")) {
		credit := ComputeCredit(4, magi, schedule, rules.ChildCreditPhaseOut)
		assert.True(t, credit.LessThanOrEqual(previous), "credit rose at %s", magi)
		assert.False(t, credit.IsNegative(), "credit negative at %s", magi)
		previous = credit
	}
}
