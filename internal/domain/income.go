package domain

import (
	"github.com/shopspring/decimal"
)

// TaxableIncome represents the income components of one household tax year
type TaxableIncome struct {
	Year                 int             `json:"year"`
	Jurisdiction         Jurisdiction    `json:"jurisdiction"`
	OrdinaryIncome       decimal.Decimal `json:"ordinaryIncome"`
	QualifiedDividends   decimal.Decimal `json:"qualifiedDividends"`
	LongTermCapitalGains decimal.Decimal `json:"longTermCapitalGains"`
	NetInvestmentIncome  decimal.Decimal `json:"netInvestmentIncome"`
	ModifiedGrossIncome  decimal.Decimal `json:"modifiedGrossIncome"`
	Dependents           int             `json:"dependents"`
}

// PreferentialIncome returns income eligible for preferential rates
func (ti TaxableIncome) PreferentialIncome() decimal.Decimal {
	return ti.QualifiedDividends.Add(ti.LongTermCapitalGains)
}

// TotalTaxableIncome returns ordinary plus preferential income
func (ti TaxableIncome) TotalTaxableIncome() decimal.Decimal {
	return ti.OrdinaryIncome.Add(ti.PreferentialIncome())
}

// TaxSummary breaks down the liabilities computed for a TaxableIncome
type TaxSummary struct {
	Year                   int             `json:"year"`
	Jurisdiction           Jurisdiction    `json:"jurisdiction"`
	FederalOrdinaryTax     decimal.Decimal `json:"federalOrdinaryTax"`
	PreferentialTax        decimal.Decimal `json:"preferentialTax"`
	NetInvestmentIncomeTax decimal.Decimal `json:"netInvestmentIncomeTax"`
	ChildCredit            decimal.Decimal `json:"childCredit"`
	FederalTax             decimal.Decimal `json:"federalTax"`
	StateTax               decimal.Decimal `json:"stateTax"`
	TotalTax               decimal.Decimal `json:"totalTax"`
}

// EffectiveRate returns TotalTax as a fraction of grossIncome
func (ts TaxSummary) EffectiveRate(grossIncome decimal.Decimal) decimal.Decimal {
	if grossIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return ts.TotalTax.Div(grossIncome)
}
