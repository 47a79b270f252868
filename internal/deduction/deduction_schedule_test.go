package deduction_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hris-payroll/internal/deduction"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestLoadScheduleFromFile(t *testing.T) {
	schedule, err := deduction.LoadSchedule(filepath.Join("testdata", "rules.yaml"))
	assert.NoError(t, err)

	_, err = schedule.For(date(2025, 3, 31))
	assert.True(t, errors.Is(err, deduction.ErrNoRuleSet))

	first, err := schedule.For(date(2025, 11, 1))
	assert.NoError(t, err)
	assert.Equal(t, 30, first.LopDivisor)
	assert.Len(t, first.TaxBrackets, 6)
	assert.Nil(t, first.TaxBrackets[5].Max)
	assertAmount(t, "5729.17", first.IncomeTax(d("100000")))

	second, err := schedule.For(date(2026, 4, 1))
	assert.NoError(t, err)
	assert.Equal(t, 26, second.LopDivisor)
	assertAmount(t, "187.50", second.Insurance(d("25000")))
	assertAmount(t, "200", second.ProfessionalTaxFor(d("25000")))
	assertAmount(t, "0", second.IncomeTax(d("100000")))
}

func TestLoadScheduleEmptyPathFallsBackToDefaults(t *testing.T) {
	schedule, err := deduction.LoadSchedule("")
	assert.NoError(t, err)

	rules, err := schedule.For(date(2020, 1, 1))
	assert.NoError(t, err)
	assertAmount(t, "100", rules.ProfessionalTaxFor(d("28000")))
}

func TestParseScheduleRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad date", "rule_sets:\n  - effective_from: April\n"},
		{"no rule sets", "rule_sets: []\n"},
		{
			"gap between brackets",
			`rule_sets:
  - effective_from: "2025-04-01"
    tax_brackets:
      - { min: 0, max: 300000, rate: 0 }
      - { min: 400000, rate: 0.05 }
`,
		},
		{
			"unordered slabs",
			`rule_sets:
  - effective_from: "2025-04-01"
    professional_tax:
      - { above: 21000, amount: 100 }
      - { above: 75000, amount: 1095 }
`,
		},
		{
			"duplicate dates",
			`rule_sets:
  - effective_from: "2025-04-01"
  - effective_from: "2025-04-01"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deduction.ParseSchedule([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDefaultRuleSetIsValid(t *testing.T) {
	assert.NoError(t, deduction.DefaultRuleSet().Validate())

	broken := deduction.DefaultRuleSet()
	broken.LopDivisor = 0
	assert.Error(t, broken.Validate())
}
