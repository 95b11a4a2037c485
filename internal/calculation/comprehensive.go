package calculation

import (
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateTotalTaxes computes every liability for one household year.
//
// Ordinary income is taxed on the federal brackets and preferential income is
// stacked on top of it. The child credit is limited to the federal income tax
// it offsets. The state jurisdiction, when set, taxes ordinary and preferential
// income alike. ModifiedGrossIncome defaults to total taxable income when zero.
// Components are rounded to cents once; the total is summed before rounding.
func (te *TaxEngine) CalculateTotalTaxes(income domain.TaxableIncome) (*domain.TaxSummary, error) {
	if err := te.validateTaxableIncome(income); err != nil {
		return nil, te.reject("total taxes", err)
	}

	year := income.Year
	preferential := income.PreferentialIncome()
	total := income.TotalTaxableIncome()
	magi := income.ModifiedGrossIncome
	if magi.IsZero() {
		magi = total
	}

	federalTable := te.Rules.Jurisdictions[domain.JurisdictionFederal][year]
	ordinaryTax := ComputeProgressiveTax(federalTable.Brackets, income.OrdinaryIncome)
	preferentialTax := ComputePreferentialTax(preferential, total, te.Rules.PreferentialRates[year])

	niitRule := te.Rules.NetInvestmentIncome
	niit := decimal.Zero
	if year >= niitRule.EffectiveYear {
		niit = ComputeSurtax(income.NetInvestmentIncome, magi, niitRule.Surcharge())
	}

	credit := ComputeCredit(income.Dependents, magi, te.Rules.ChildCredit[year], te.Rules.ChildCreditPhaseOut)
	credit = decimal.Min(credit, ordinaryTax.Add(preferentialTax))

	federalTax := ordinaryTax.Add(preferentialTax).Add(niit).Sub(credit)

	stateTax := decimal.Zero
	if income.Jurisdiction != "" && income.Jurisdiction != domain.JurisdictionFederal {
		stateTable, err := LookupJurisdictionTable(te.Rules, income.Jurisdiction, year)
		if err != nil {
			return nil, te.reject("total taxes", err)
		}
		stateTax = ComputeJurisdictionTax(stateTable, total)
	}

	totalTax := federalTax.Add(stateTax)
	te.Logger.Debugf("total taxes %d %s: federal=%s state=%s", year, income.Jurisdiction, federalTax.StringFixed(centPlaces), stateTax.StringFixed(centPlaces))

	return &domain.TaxSummary{
		Year:                   year,
		Jurisdiction:           income.Jurisdiction,
		FederalOrdinaryTax:     ordinaryTax.Round(centPlaces),
		PreferentialTax:        preferentialTax.Round(centPlaces),
		NetInvestmentIncomeTax: niit.Round(centPlaces),
		ChildCredit:            credit.Round(centPlaces),
		FederalTax:             federalTax.Round(centPlaces),
		StateTax:               stateTax.Round(centPlaces),
		TotalTax:               totalTax.Round(centPlaces),
	}, nil
}

func (te *TaxEngine) validateTaxableIncome(income domain.TaxableIncome) error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"ordinaryIncome", income.OrdinaryIncome},
		{"qualifiedDividends", income.QualifiedDividends},
		{"longTermCapitalGains", income.LongTermCapitalGains},
		{"netInvestmentIncome", income.NetInvestmentIncome},
		{"modifiedGrossIncome", income.ModifiedGrossIncome},
	}
	for _, a := range amounts {
		if err := ValidateAmount(a.field, a.value); err != nil {
			return err
		}
	}
	if err := ValidateCount("dependents", income.Dependents); err != nil {
		return err
	}
	if err := ValidateYear(te.Rules, income.Year); err != nil {
		return err
	}
	if income.Jurisdiction != "" {
		if _, err := LookupJurisdictionTable(te.Rules, income.Jurisdiction, income.Year); err != nil {
			return err
		}
	}
	return nil
}
