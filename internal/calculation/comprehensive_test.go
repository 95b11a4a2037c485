package calculation

import (
	"testing"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxEngine_CalculateTotalTaxes(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name     string
		income   domain.TaxableIncome
		expected domain.TaxSummary
	}{
		{
			name: "california household with dividends",
			income: domain.TaxableIncome{
				Year:                 2023,
				Jurisdiction:         domain.JurisdictionCalifornia,
				OrdinaryIncome:       dec("150000"),
				QualifiedDividends:   dec("10000"),
				LongTermCapitalGains: dec("40000"),
				NetInvestmentIncome:  dec("50000"),
				Dependents:           2,
			},
			expected: domain.TaxSummary{
				FederalOrdinaryTax:     dec("23615"),
				PreferentialTax:        dec("7500"),
				NetInvestmentIncomeTax: dec("0"),
				ChildCredit:            dec("4000"),
				FederalTax:             dec("27115"),
				StateTax:               dec("11905.7"),
				TotalTax:               dec("39020.7"),
			},
		},
		{
			name: "federal only with investment surtax",
			income: domain.TaxableIncome{
				Year:                 2024,
				OrdinaryIncome:       dec("300000"),
				LongTermCapitalGains: dec("100000"),
				NetInvestmentIncome:  dec("100000"),
				Dependents:           1,
			},
			expected: domain.TaxSummary{
				FederalOrdinaryTax:     dec("58085"),
				PreferentialTax:        dec("15000"),
				NetInvestmentIncomeTax: dec("3800"),
				ChildCredit:            dec("2000"),
				FederalTax:             dec("74885"),
				StateTax:               dec("0"),
				TotalTax:               dec("74885"),
			},
		},
		{
			name: "credit limited to income tax",
			income: domain.TaxableIncome{
				Year:           2025,
				Jurisdiction:   domain.JurisdictionPennsylvania,
				OrdinaryIncome: dec("20000"),
				Dependents:     3,
			},
			expected: domain.TaxSummary{
				FederalOrdinaryTax:     dec("2000"),
				PreferentialTax:        dec("0"),
				NetInvestmentIncomeTax: dec("0"),
				ChildCredit:            dec("2000"),
				FederalTax:             dec("0"),
				StateTax:               dec("614"),
				TotalTax:               dec("614"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := engine.CalculateTotalTaxes(tt.income)
			require.NoError(t, err)

			assert.Equal(t, tt.income.Year, summary.Year)
			assert.True(t, tt.expected.FederalOrdinaryTax.Equal(summary.FederalOrdinaryTax), "ordinary: %s", summary.FederalOrdinaryTax)
			assert.True(t, tt.expected.PreferentialTax.Equal(summary.PreferentialTax), "preferential: %s", summary.PreferentialTax)
			assert.True(t, tt.expected.NetInvestmentIncomeTax.Equal(summary.NetInvestmentIncomeTax), "niit: %s", summary.NetInvestmentIncomeTax)
			assert.True(t, tt.expected.ChildCredit.Equal(summary.ChildCredit), "credit: %s", summary.ChildCredit)
			assert.True(t, tt.expected.FederalTax.Equal(summary.FederalTax), "federal: %s", summary.FederalTax)
			assert.True(t, tt.expected.StateTax.Equal(summary.StateTax), "state: %s", summary.StateTax)
			assert.True(t, tt.expected.TotalTax.Equal(summary.TotalTax), "total: %s", summary.TotalTax)
		})
	}
}

func TestTaxEngine_CalculateTotalTaxes_Validation(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.CalculateTotalTaxes(domain.TaxableIncome{Year: 2024, OrdinaryIncome: dec("-1")})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = engine.CalculateTotalTaxes(domain.TaxableIncome{Year: 2024, Dependents: -2})
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = engine.CalculateTotalTaxes(domain.TaxableIncome{Year: 2019})
	assert.ErrorIs(t, err, ErrUnsupportedYear)

	_, err = engine.CalculateTotalTaxes(domain.TaxableIncome{Year: 2024, Jurisdiction: "oregon"})
	assert.ErrorIs(t, err, ErrUnknownJurisdiction)
}
