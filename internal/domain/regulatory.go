package domain

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Jurisdiction identifies a taxing authority with its own bracket tables
type Jurisdiction string

const (
	JurisdictionFederal       Jurisdiction = "federal"
	JurisdictionCalifornia    Jurisdiction = "california"
	JurisdictionMassachusetts Jurisdiction = "massachusetts"
	JurisdictionPennsylvania  Jurisdiction = "pennsylvania"
)

// TaxRules contains all regulatory tax data for the supported years.
// It is loaded once from tax_rules.yaml and treated as read-only afterwards.
type TaxRules struct {
	Metadata            RegulatoryMetadata                         `yaml:"metadata" json:"metadata"`
	SupportedYears      []int                                      `yaml:"supported_years" json:"supported_years"`
	Jurisdictions       map[Jurisdiction]map[int]JurisdictionTable `yaml:"jurisdictions" json:"jurisdictions"`
	PreferentialRates   map[int]PreferentialRateTable              `yaml:"preferential_rates" json:"preferential_rates"`
	ChildCredit         map[int]CreditSchedule                     `yaml:"child_credit" json:"child_credit"`
	ChildCreditPhaseOut PhaseOutRule                               `yaml:"child_credit_phase_out" json:"child_credit_phase_out"`
	NetInvestmentIncome NetInvestmentIncomeRule                    `yaml:"net_investment_income" json:"net_investment_income"`
}

// RegulatoryMetadata contains information about the regulatory data
type RegulatoryMetadata struct {
	FilingStatus string `yaml:"filing_status" json:"filing_status"`
	LastUpdated  string `yaml:"last_updated" json:"last_updated"`
	Description  string `yaml:"description" json:"description"`
}

// TaxBracket is the upper threshold of a marginal segment and the rate applied within it
type TaxBracket struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// BracketTable is an ordered list of brackets with strictly increasing thresholds.
// The last threshold is a sentinel standing in for "no upper bound".
type BracketTable []TaxBracket

// PreferentialRateTable has the same shape as BracketTable and holds the
// qualified dividend / long-term capital gain rates for one year.
type PreferentialRateTable []TaxBracket

// JurisdictionTable is one jurisdiction's bracket table for one year, with an
// optional high-income surcharge layered on top of the bracket tax.
type JurisdictionTable struct {
	Brackets  BracketTable   `yaml:"brackets" json:"brackets"`
	Surcharge *SurchargeRule `yaml:"surcharge,omitempty" json:"surcharge,omitempty"`
}

// CreditSchedule holds per-year credit amounts.
// RefundableCap is informational; the credit formula does not consume it.
type CreditSchedule struct {
	CreditPerUnit decimal.Decimal `yaml:"credit_per_unit" json:"credit_per_unit"`
	RefundableCap decimal.Decimal `yaml:"refundable_cap" json:"refundable_cap"`
}

// SurchargeRule is a flat rate applied to income above a threshold
type SurchargeRule struct {
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
}

// PhaseOutRule governs how a credit shrinks as income rises above Threshold
type PhaseOutRule struct {
	Threshold             decimal.Decimal `yaml:"threshold" json:"threshold"`
	ReductionPerIncrement decimal.Decimal `yaml:"reduction_per_increment" json:"reduction_per_increment"`
	IncrementSize         decimal.Decimal `yaml:"increment_size" json:"increment_size"`
}

// NetInvestmentIncomeRule is the investment income surtax. Once introduced it
// applies to every later year, so it carries a minimum year rather than a year table.
type NetInvestmentIncomeRule struct {
	Rate          decimal.Decimal `yaml:"rate" json:"rate"`
	Threshold     decimal.Decimal `yaml:"threshold" json:"threshold"`
	EffectiveYear int             `yaml:"effective_year" json:"effective_year"`
}

// Surcharge returns the rate/threshold pair of the rule
func (r NetInvestmentIncomeRule) Surcharge() SurchargeRule {
	return SurchargeRule{Rate: r.Rate, Threshold: r.Threshold}
}

// Clone returns a deep copy of the rule set
func (tr *TaxRules) Clone() *TaxRules {
	out := *tr
	out.SupportedYears = slices.Clone(tr.SupportedYears)

	out.Jurisdictions = make(map[Jurisdiction]map[int]JurisdictionTable, len(tr.Jurisdictions))
	for name, years := range tr.Jurisdictions {
		copied := make(map[int]JurisdictionTable, len(years))
		for year, table := range years {
			table.Brackets = slices.Clone(table.Brackets)
			if table.Surcharge != nil {
				surcharge := *table.Surcharge
				table.Surcharge = &surcharge
			}
			copied[year] = table
		}
		out.Jurisdictions[name] = copied
	}

	out.PreferentialRates = make(map[int]PreferentialRateTable, len(tr.PreferentialRates))
	for year, table := range tr.PreferentialRates {
		out.PreferentialRates[year] = slices.Clone(table)
	}
	out.ChildCredit = maps.Clone(tr.ChildCredit)

	return &out
}
