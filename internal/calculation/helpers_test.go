package calculation

import (
	"testing"

	"github.com/rgehrsitz/rptax/internal/config"
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var dec = decimal.RequireFromString

func testRules(t *testing.T) *domain.TaxRules {
	t.Helper()
	rules, err := config.DefaultRules()
	require.NoError(t, err)
	return rules
}

func federalTable(t *testing.T, year int) domain.BracketTable {
	t.Helper()
	return testRules(t).Jurisdictions[domain.JurisdictionFederal][year].Brackets
}

func testEngine(t *testing.T) *TaxEngine {
	t.Helper()
	engine := NewTaxEngineWithRules(testRules(t))
	engine.SetLogger(nil)
	return engine
}
