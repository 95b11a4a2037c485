package config

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed tax_rules.yaml
var embeddedRules []byte

var log = logrus.WithField("module", "config")

var defaultRules = sync.OnceValues(func() (*domain.TaxRules, error) {
	return NewRulesParser().LoadFromBytes(embeddedRules)
})

// DefaultRules returns a copy of the built-in rule set. The YAML is parsed
// once; each caller gets its own copy.
func DefaultRules() (*domain.TaxRules, error) {
	rules, err := defaultRules()
	if err != nil {
		return nil, err
	}
	return rules.Clone(), nil
}

// RulesParser handles parsing of tax rule files
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads a rule set from a YAML file
func (rp *RulesParser) LoadFromFile(filename string) (*domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return rp.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a YAML rule set
func (rp *RulesParser) LoadFromBytes(data []byte) (*domain.TaxRules, error) {
	var rules domain.TaxRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("tax rules validation failed: %w", err)
	}

	log.Debugf("loaded tax rules: %d jurisdictions, years %v", len(rules.Jurisdictions), rules.SupportedYears)
	return &rules, nil
}

// ValidateRules validates a loaded rule set
func (rp *RulesParser) ValidateRules(rules *domain.TaxRules) error {
	if len(rules.SupportedYears) == 0 {
		return fmt.Errorf("no supported years provided")
	}
	if dup := lo.FindDuplicates(rules.SupportedYears); len(dup) > 0 {
		return fmt.Errorf("supported years listed more than once: %v", dup)
	}

	federal, ok := rules.Jurisdictions[domain.JurisdictionFederal]
	if !ok {
		return fmt.Errorf("federal jurisdiction is required")
	}

	for _, name := range SortedJurisdictions(rules) {
		for year, table := range rules.Jurisdictions[name] {
			if !slices.Contains(rules.SupportedYears, year) {
				return fmt.Errorf("%s: year %d is not a supported year", name, year)
			}
			if err := table.Brackets.Validate(); err != nil {
				return fmt.Errorf("%s %d brackets: %w", name, year, err)
			}
			if table.Surcharge != nil {
				if err := table.Surcharge.Validate(); err != nil {
					return fmt.Errorf("%s %d: %w", name, year, err)
				}
			}
		}
	}

	for _, year := range rules.SupportedYears {
		if _, ok := federal[year]; !ok {
			return fmt.Errorf("federal brackets missing for %d", year)
		}
		pref, ok := rules.PreferentialRates[year]
		if !ok {
			return fmt.Errorf("preferential rates missing for %d", year)
		}
		if err := pref.Validate(); err != nil {
			return fmt.Errorf("preferential rates %d: %w", year, err)
		}
		credit, ok := rules.ChildCredit[year]
		if !ok {
			return fmt.Errorf("child credit schedule missing for %d", year)
		}
		if err := credit.Validate(); err != nil {
			return fmt.Errorf("child credit %d: %w", year, err)
		}
	}

	if err := rules.ChildCreditPhaseOut.Validate(); err != nil {
		return fmt.Errorf("child credit phase-out: %w", err)
	}
	if err := rules.NetInvestmentIncome.Surcharge().Validate(); err != nil {
		return fmt.Errorf("net investment income: %w", err)
	}
	if rules.NetInvestmentIncome.EffectiveYear <= 0 {
		return fmt.Errorf("net investment income effective year is required")
	}

	return nil
}

// SortedJurisdictions lists the jurisdictions of a rule set in name order
func SortedJurisdictions(rules *domain.TaxRules) []domain.Jurisdiction {
	names := lo.Keys(rules.Jurisdictions)
	slices.Sort(names)
	return names
}

// SortedYears lists the supported years of a rule set in ascending order
func SortedYears(rules *domain.TaxRules) []int {
	years := slices.Clone(rules.SupportedYears)
	slices.Sort(years)
	return years
}
