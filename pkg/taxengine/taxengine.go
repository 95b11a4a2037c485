// Package taxengine computes income tax liabilities and credits for the
// supported years and jurisdictions, married filing jointly.
//
// Amounts are whole currency units. Every result is rounded to cents once,
// after all internal composition. Inputs are validated before any table
// lookup; failures are *ValidationError values matching one of the Err kinds
// under errors.Is.
package taxengine

import (
	"sync"

	"github.com/rgehrsitz/rptax/internal/calculation"
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Validation failure kinds
var (
	ErrInvalidAmount       = calculation.ErrInvalidAmount
	ErrInvalidCount        = calculation.ErrInvalidCount
	ErrUnsupportedYear     = calculation.ErrUnsupportedYear
	ErrUnknownJurisdiction = calculation.ErrUnknownJurisdiction
)

// ValidationError describes a rejected input
type ValidationError = calculation.ValidationError

var engine = sync.OnceValues(calculation.NewTaxEngine)

// Engine returns a new engine over its own copy of the built-in rule set.
// Changes to it do not affect the package-level functions.
func Engine() (*calculation.TaxEngine, error) {
	return calculation.NewTaxEngine()
}

// FederalIncomeTax returns federal income tax on income for year
func FederalIncomeTax(income float64, year int) (decimal.Decimal, error) {
	te, err := engine()
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := calculation.AmountFromFloat("income", income)
	if err != nil {
		return decimal.Zero, err
	}
	return te.FederalIncomeTax(amount, year)
}

// StateIncomeTax returns a jurisdiction's income tax including any surcharge it levies
func StateIncomeTax(jurisdiction string, income float64, year int) (decimal.Decimal, error) {
	te, err := engine()
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := calculation.AmountFromFloat("income", income)
	if err != nil {
		return decimal.Zero, err
	}
	return te.StateIncomeTax(domain.Jurisdiction(jurisdiction), amount, year)
}

// PreferentialIncomeTax returns tax on qualified dividends or long-term
// capital gains that are part of totalTaxableIncome
func PreferentialIncomeTax(amount, totalTaxableIncome float64, year int) (decimal.Decimal, error) {
	te, err := engine()
	if err != nil {
		return decimal.Zero, err
	}
	pref, err := calculation.AmountFromFloat("amount", amount)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := calculation.AmountFromFloat("totalTaxableIncome", totalTaxableIncome)
	if err != nil {
		return decimal.Zero, err
	}
	return te.PreferentialIncomeTax(pref, total, year)
}

// NetInvestmentIncomeSurtax returns the surtax on investment income
func NetInvestmentIncomeSurtax(investmentIncome, modifiedGrossIncome float64, year int) (decimal.Decimal, error) {
	te, err := engine()
	if err != nil {
		return decimal.Zero, err
	}
	nii, err := calculation.AmountFromFloat("investmentIncome", investmentIncome)
	if err != nil {
		return decimal.Zero, err
	}
	magi, err := calculation.AmountFromFloat("modifiedGrossIncome", modifiedGrossIncome)
	if err != nil {
		return decimal.Zero, err
	}
	return te.NetInvestmentIncomeSurtax(nii, magi, year)
}

// DependentCredit returns the child credit for unitCount dependents after phase-out
func DependentCredit(unitCount int, modifiedGrossIncome float64, year int) (decimal.Decimal, error) {
	te, err := engine()
	if err != nil {
		return decimal.Zero, err
	}
	if err := calculation.ValidateCount("unitCount", unitCount); err != nil {
		return decimal.Zero, err
	}
	magi, err := calculation.AmountFromFloat("modifiedGrossIncome", modifiedGrossIncome)
	if err != nil {
		return decimal.Zero, err
	}
	return te.DependentCredit(unitCount, magi, year)
}

// SupportedYears lists the years with built-in tables
func SupportedYears() ([]int, error) {
	te, err := engine()
	if err != nil {
		return nil, err
	}
	return te.SupportedYears(), nil
}

// Jurisdictions lists the jurisdictions with built-in tables
func Jurisdictions() ([]string, error) {
	te, err := engine()
	if err != nil {
		return nil, err
	}
	return lo.Map(te.Jurisdictions(), func(j domain.Jurisdiction, _ int) string {
		return string(j)
	}), nil
}
