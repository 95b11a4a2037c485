package calculation

import (
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeSurtax(t *testing.T) {
	rule := domain.SurchargeRule{Rate: dec("0.038"), Threshold: dec("250000")}

	tests := []struct {
		name       string
		investment string
		magi       string
		expected   string
	}{
		{"investment income below excess", "30000", "400000", "1140"},
		{"excess below investment income", "100000", "300000", "1900"},
		{"magi at threshold", "50000", "250000", "0"},
		{"magi below threshold", "50000", "100000", "0"},
		{"no investment income", "0", "900000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeSurtax(dec(tt.investment), dec(tt.magi), rule)
			assert.True(t, dec(tt.expected).Equal(result), "expected %s, got %s", tt.expected, result)
		})
	}
}

func TestComputeAdditionalTax(t *testing.T) {
	rule := domain.SurchargeRule{Rate: dec("0.01"), Threshold: dec("1000000")}

	assert.True(t, dec("5000").Equal(ComputeAdditionalTax(dec("1500000"), rule)))
	assert.True(t, ComputeAdditionalTax(dec("1000000"), rule).IsZero())
	assert.True(t, ComputeAdditionalTax(dec("900000"), rule).IsZero())
}
