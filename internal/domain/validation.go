package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Validate checks that the table is non-empty, thresholds strictly increase
// and every rate lies in [0,1].
func (bt BracketTable) Validate() error {
	return validateBrackets(bt)
}

// Validate applies the BracketTable invariants to a preferential table
func (pt PreferentialRateTable) Validate() error {
	return validateBrackets(pt)
}

func validateBrackets(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	previous := decimal.Zero
	for i, b := range brackets {
		if !b.Threshold.GreaterThan(previous) {
			return fmt.Errorf("bracket %d threshold %s must exceed %s", i, b.Threshold, previous)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d rate %s must be between 0 and 1", i, b.Rate)
		}
		previous = b.Threshold
	}
	return nil
}

// Validate checks the surcharge rate and threshold
func (sr SurchargeRule) Validate() error {
	if sr.Rate.IsNegative() || sr.Rate.GreaterThan(one) {
		return fmt.Errorf("surcharge rate %s must be between 0 and 1", sr.Rate)
	}
	if sr.Threshold.IsNegative() {
		return fmt.Errorf("surcharge threshold %s cannot be negative", sr.Threshold)
	}
	return nil
}

// Validate checks that the phase-out rule can be applied
func (pr PhaseOutRule) Validate() error {
	if pr.Threshold.IsNegative() {
		return fmt.Errorf("phase-out threshold %s cannot be negative", pr.Threshold)
	}
	if pr.ReductionPerIncrement.IsNegative() {
		return fmt.Errorf("phase-out reduction %s cannot be negative", pr.ReductionPerIncrement)
	}
	if !pr.IncrementSize.IsPositive() {
		return fmt.Errorf("phase-out increment size must be positive, got %s", pr.IncrementSize)
	}
	return nil
}

// Validate checks the credit schedule amounts
func (cs CreditSchedule) Validate() error {
	if cs.CreditPerUnit.IsNegative() {
		return fmt.Errorf("credit per unit %s cannot be negative", cs.CreditPerUnit)
	}
	if cs.RefundableCap.IsNegative() {
		return fmt.Errorf("refundable cap %s cannot be negative", cs.RefundableCap)
	}
	return nil
}
