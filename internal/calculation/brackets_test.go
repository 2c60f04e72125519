package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

func TestApplyBrackets2025Ordinary(t *testing.T) {
	rules := Rules2025()

	tests := []struct {
		name     string
		status   domain.FilingStatus
		income   decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "single 50k spans three brackets",
			status:   domain.FilingSingle,
			income:   decimal.NewFromInt(50000),
			expected: decimal.NewFromInt(5914),
		},
		{
			name:     "married filing jointly 50k",
			status:   domain.FilingMarriedFilingJointly,
			income:   decimal.NewFromInt(50000),
			expected: decimal.NewFromInt(5523),
		},
		{
			name:     "zero income",
			status:   domain.FilingSingle,
			income:   decimal.Zero,
			expected: decimal.Zero,
		},
		{
			name:     "negative income clamps to zero",
			status:   domain.FilingSingle,
			income:   decimal.NewFromInt(-10000),
			expected: decimal.Zero,
		},
		{
			name:     "first bracket only",
			status:   domain.FilingSingle,
			income:   decimal.NewFromInt(10000),
			expected: decimal.NewFromInt(1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brackets := rules.FederalTax.OrdinaryBrackets.ForStatus(tt.status)
			tax := ApplyBrackets(tt.income, brackets)
			assert.True(t, tax.Equal(tt.expected),
				"expected %s, got %s", tt.expected.StringFixed(2), tax.StringFixed(2))
		})
	}
}

func TestApplyBracketsMonotonic(t *testing.T) {
	brackets := Rules2025().FederalTax.OrdinaryBrackets.ForStatus(domain.FilingSingle)

	prev := decimal.Zero
	for income := int64(0); income <= 800000; income += 7500 {
		tax := ApplyBrackets(decimal.NewFromInt(income), brackets)
		assert.True(t, tax.GreaterThanOrEqual(prev),
			"tax decreased at income %d: %s < %s", income, tax.String(), prev.String())
		prev = tax
	}
}

func TestMarginalRate(t *testing.T) {
	brackets := Rules2025().FederalTax.OrdinaryBrackets.ForStatus(domain.FilingSingle)

	tests := []struct {
		name     string
		income   decimal.Decimal
		expected decimal.Decimal
	}{
		{"zero income uses first bracket", decimal.Zero, decimal.NewFromFloat(0.10)},
		{"negative income uses first bracket", decimal.NewFromInt(-500), decimal.NewFromFloat(0.10)},
		{"inside second bracket", decimal.NewFromInt(40000), decimal.NewFromFloat(0.12)},
		{"exact boundary stays in lower bracket", decimal.NewFromInt(48475), decimal.NewFromFloat(0.12)},
		{"just past boundary", decimal.NewFromInt(48476), decimal.NewFromFloat(0.22)},
		{"top bracket", decimal.NewFromInt(1000000), decimal.NewFromFloat(0.37)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := MarginalRate(tt.income, brackets)
			assert.True(t, rate.Equal(tt.expected),
				"expected %s, got %s", tt.expected.String(), rate.String())
		})
	}
}

func TestBracketTablesPartition(t *testing.T) {
	rules := Rules2025()
	for _, status := range domain.AllFilingStatuses() {
		for name, table := range map[string][]domain.TaxBracket{
			"ordinary": rules.FederalTax.OrdinaryBrackets.ForStatus(status),
			"ltcg":     rules.FederalTax.CapitalGainsBrackets.ForStatus(status),
		} {
			assert.True(t, table[0].Min.IsZero(), "%s/%s: first bracket must start at 0", name, status)
			for i := 1; i < len(table); i++ {
				require.NotNil(t, table[i-1].Max, "%s/%s: only the last bracket may be unbounded", name, status)
				assert.True(t, table[i].Min.Equal(*table[i-1].Max),
					"%s/%s: gap or overlap at bracket %d", name, status, i)
			}
			assert.Nil(t, table[len(table)-1].Max, "%s/%s: last bracket must be unbounded", name, status)
		}
	}
}
