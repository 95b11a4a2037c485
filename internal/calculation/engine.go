package calculation

import (
	"fmt"

	"github.com/rgehrsitz/rptax/internal/config"
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// centPlaces is the number of decimal places results are rounded to
const centPlaces = 2

// Logger is the leveled logger used by the engine. *logrus.Entry satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards all log output
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}

// TaxEngine evaluates every public tax operation against one rule set.
// Calculations do not modify the engine and may run concurrently; SetLogger
// and changes to Rules must not race with them.
type TaxEngine struct {
	Rules  *domain.TaxRules
	Logger Logger
}

// NewTaxEngine creates an engine over the built-in rule set
func NewTaxEngine() (*TaxEngine, error) {
	rules, err := config.DefaultRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in tax rules: %w", err)
	}
	return NewTaxEngineWithRules(rules), nil
}

// NewTaxEngineWithRules creates an engine over an already validated rule set
func NewTaxEngineWithRules(rules *domain.TaxRules) *TaxEngine {
	return &TaxEngine{
		Rules:  rules,
		Logger: logrus.WithField("module", "calculation"),
	}
}

// SetLogger replaces the engine logger; nil disables logging
func (te *TaxEngine) SetLogger(logger Logger) {
	if logger == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = logger
}

// reject logs a validation failure and passes it through
func (te *TaxEngine) reject(operation string, err error) error {
	te.Logger.Debugf("%s rejected: %v", operation, err)
	return err
}

// FederalIncomeTax returns federal bracket tax on income, rounded to cents
func (te *TaxEngine) FederalIncomeTax(income decimal.Decimal, year int) (decimal.Decimal, error) {
	tax, err := te.jurisdictionTax(domain.JurisdictionFederal, income, year)
	if err != nil {
		return decimal.Zero, te.reject("federal income tax", err)
	}
	return tax.Round(centPlaces), nil
}

// StateIncomeTax returns a jurisdiction's bracket tax plus any surcharge it
// carries for the year, rounded to cents
func (te *TaxEngine) StateIncomeTax(jurisdiction domain.Jurisdiction, income decimal.Decimal, year int) (decimal.Decimal, error) {
	tax, err := te.jurisdictionTax(jurisdiction, income, year)
	if err != nil {
		return decimal.Zero, te.reject("state income tax", err)
	}
	return tax.Round(centPlaces), nil
}

func (te *TaxEngine) jurisdictionTax(jurisdiction domain.Jurisdiction, income decimal.Decimal, year int) (decimal.Decimal, error) {
	if err := ValidateAmount("income", income); err != nil {
		return decimal.Zero, err
	}
	if err := ValidateYear(te.Rules, year); err != nil {
		return decimal.Zero, err
	}
	table, err := LookupJurisdictionTable(te.Rules, jurisdiction, year)
	if err != nil {
		return decimal.Zero, err
	}
	return ComputeJurisdictionTax(table, income), nil
}

// PreferentialIncomeTax returns tax on qualified dividends or long-term gains
// included in totalTaxableIncome, rounded to cents
func (te *TaxEngine) PreferentialIncomeTax(amount, totalTaxableIncome decimal.Decimal, year int) (decimal.Decimal, error) {
	tax, err := te.preferentialTax(amount, totalTaxableIncome, year)
	if err != nil {
		return decimal.Zero, te.reject("preferential income tax", err)
	}
	return tax.Round(centPlaces), nil
}

func (te *TaxEngine) preferentialTax(amount, totalTaxableIncome decimal.Decimal, year int) (decimal.Decimal, error) {
	if err := ValidateAmount("amount", amount); err != nil {
		return decimal.Zero, err
	}
	if err := ValidateAmount("totalTaxableIncome", totalTaxableIncome); err != nil {
		return decimal.Zero, err
	}
	if amount.GreaterThan(totalTaxableIncome) {
		return decimal.Zero, newValidationError(ErrInvalidAmount, "amount", amount, "cannot exceed total taxable income "+totalTaxableIncome.String())
	}
	if err := ValidateYear(te.Rules, year); err != nil {
		return decimal.Zero, err
	}
	return ComputePreferentialTax(amount, totalTaxableIncome, te.Rules.PreferentialRates[year]), nil
}

// NetInvestmentIncomeSurtax returns the investment income surtax, rounded to cents.
// Any year from the rule's introduction onwards is accepted.
func (te *TaxEngine) NetInvestmentIncomeSurtax(investmentIncome, modifiedGrossIncome decimal.Decimal, year int) (decimal.Decimal, error) {
	tax, err := te.netInvestmentIncomeSurtax(investmentIncome, modifiedGrossIncome, year)
	if err != nil {
		return decimal.Zero, te.reject("net investment income surtax", err)
	}
	return tax.Round(centPlaces), nil
}

func (te *TaxEngine) netInvestmentIncomeSurtax(investmentIncome, modifiedGrossIncome decimal.Decimal, year int) (decimal.Decimal, error) {
	if err := ValidateAmount("investmentIncome", investmentIncome); err != nil {
		return decimal.Zero, err
	}
	if err := ValidateAmount("modifiedGrossIncome", modifiedGrossIncome); err != nil {
		return decimal.Zero, err
	}
	rule := te.Rules.NetInvestmentIncome
	if err := ValidateMinimumYear(year, rule.EffectiveYear); err != nil {
		return decimal.Zero, err
	}
	return ComputeSurtax(investmentIncome, modifiedGrossIncome, rule.Surcharge()), nil
}

// DependentCredit returns the child credit after income phase-out, rounded to cents
func (te *TaxEngine) DependentCredit(unitCount int, modifiedGrossIncome decimal.Decimal, year int) (decimal.Decimal, error) {
	credit, err := te.dependentCredit(unitCount, modifiedGrossIncome, year)
	if err != nil {
		return decimal.Zero, te.reject("dependent credit", err)
	}
	return credit.Round(centPlaces), nil
}

func (te *TaxEngine) dependentCredit(unitCount int, modifiedGrossIncome decimal.Decimal, year int) (decimal.Decimal, error) {
	if err := ValidateCount("unitCount", unitCount); err != nil {
		return decimal.Zero, err
	}
	if err := ValidateAmount("modifiedGrossIncome", modifiedGrossIncome); err != nil {
		return decimal.Zero, err
	}
	if err := ValidateYear(te.Rules, year); err != nil {
		return decimal.Zero, err
	}
	return ComputeCredit(unitCount, modifiedGrossIncome, te.Rules.ChildCredit[year], te.Rules.ChildCreditPhaseOut), nil
}

// MarginalRate returns the jurisdiction's bracket rate applied to the last dollar of income
func (te *TaxEngine) MarginalRate(jurisdiction domain.Jurisdiction, income decimal.Decimal, year int) (decimal.Decimal, error) {
	table, err := te.bracketTable(jurisdiction, income, year)
	if err != nil {
		return decimal.Zero, te.reject("marginal rate", err)
	}
	return MarginalRate(table, income), nil
}

// BracketHeadroom returns the income that still fits in the current bracket, rounded to cents
func (te *TaxEngine) BracketHeadroom(jurisdiction domain.Jurisdiction, income decimal.Decimal, year int) (decimal.Decimal, error) {
	table, err := te.bracketTable(jurisdiction, income, year)
	if err != nil {
		return decimal.Zero, te.reject("bracket headroom", err)
	}
	return BracketHeadroom(table, income).Round(centPlaces), nil
}

func (te *TaxEngine) bracketTable(jurisdiction domain.Jurisdiction, income decimal.Decimal, year int) (domain.BracketTable, error) {
	if err := ValidateAmount("income", income); err != nil {
		return nil, err
	}
	if err := ValidateYear(te.Rules, year); err != nil {
		return nil, err
	}
	table, err := LookupJurisdictionTable(te.Rules, jurisdiction, year)
	if err != nil {
		return nil, err
	}
	return table.Brackets, nil
}

// SupportedYears lists the years with tax tables in ascending order
func (te *TaxEngine) SupportedYears() []int {
	return config.SortedYears(te.Rules)
}

// Jurisdictions lists the known jurisdictions in name order
func (te *TaxEngine) Jurisdictions() []domain.Jurisdiction {
	return config.SortedJurisdictions(te.Rules)
}
