package calculation

import (
	"math"
	"slices"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// AmountFromFloat converts a caller-supplied amount, rejecting negative,
// NaN and infinite values.
func AmountFromFloat(field string, value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, newValidationError(ErrInvalidAmount, field, value, "must be a finite number")
	}
	if value < 0 {
		return decimal.Zero, newValidationError(ErrInvalidAmount, field, value, "cannot be negative")
	}
	return decimal.NewFromFloat(value), nil
}

// ValidateAmount rejects negative monetary inputs
func ValidateAmount(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return newValidationError(ErrInvalidAmount, field, value, "cannot be negative")
	}
	return nil
}

// ValidateCount rejects negative unit counts
func ValidateCount(field string, count int) error {
	if count < 0 {
		return newValidationError(ErrInvalidCount, field, count, "cannot be negative")
	}
	return nil
}

// ValidateYear requires year to be one of the rule set's supported years
func ValidateYear(rules *domain.TaxRules, year int) error {
	if !slices.Contains(rules.SupportedYears, year) {
		return newValidationError(ErrUnsupportedYear, "year", year, "has no tax tables")
	}
	return nil
}

// ValidateMinimumYear requires year to be at or after the rule's introduction
func ValidateMinimumYear(year, effectiveYear int) error {
	if year < effectiveYear {
		return newValidationError(ErrUnsupportedYear, "year", year, "precedes the rule's effective year")
	}
	return nil
}

// LookupJurisdictionTable validates the jurisdiction and year and returns the matching table
func LookupJurisdictionTable(rules *domain.TaxRules, jurisdiction domain.Jurisdiction, year int) (domain.JurisdictionTable, error) {
	years, ok := rules.Jurisdictions[jurisdiction]
	if !ok {
		return domain.JurisdictionTable{}, newValidationError(ErrUnknownJurisdiction, "jurisdiction", jurisdiction, "has no tax tables")
	}
	table, ok := years[year]
	if !ok {
		return domain.JurisdictionTable{}, newValidationError(ErrUnsupportedYear, "year", year, "has no tables for "+string(jurisdiction))
	}
	return table, nil
}
