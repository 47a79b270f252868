package deduction_test

import (
	"testing"
	"time"

	"hris-payroll/internal/deduction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type structure struct {
	basic decimal.Decimal
}

func (s structure) BasicPay() decimal.Decimal { return s.basic }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s", want, got.StringFixed(2))
}

func TestProvidentFundIsTwelvePercentOfBasic(t *testing.T) {
	rules := deduction.DefaultRuleSet()

	tests := []struct {
		basic string
		want  string
	}{
		{"20000", "2400"},
		{"15000.50", "1800.06"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.basic, func(t *testing.T) {
			got := rules.Compute(d("99999"), structure{basic: d(tt.basic)})
			assertAmount(t, tt.want, got.PF)
		})
	}
}

func TestInsuranceThreshold(t *testing.T) {
	rules := deduction.DefaultRuleSet()

	assertAmount(t, "157.50", rules.Insurance(d("21000")))
	assertAmount(t, "150", rules.Insurance(d("20000")))
	assertAmount(t, "0", rules.Insurance(d("21000.01")))
	assertAmount(t, "0", rules.Insurance(d("28000")))
}

func TestProfessionalTaxBoundaries(t *testing.T) {
	rules := deduction.DefaultRuleSet()

	tests := []struct {
		gross string
		want  string
	}{
		{"0", "0"},
		{"21000", "0"},
		{"21001", "100"},
		{"30000", "100"},
		{"30001", "235"},
		{"45000", "235"},
		{"45001", "510"},
		{"60000", "510"},
		{"60001", "760"},
		{"75000", "760"},
		{"75001", "1095"},
		{"250000", "1095"},
	}

	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			assertAmount(t, tt.want, rules.ProfessionalTaxFor(d(tt.gross)))
		})
	}
}

func TestIncomeTax(t *testing.T) {
	rules := deduction.DefaultRuleSet()

	t.Run("zero inside rebate", func(t *testing.T) {
		assertAmount(t, "0", rules.IncomeTax(d("28000")))
		// 64583.33 * 12 - 75000 stays just under the rebate limit.
		assertAmount(t, "0", rules.IncomeTax(d("64583.33")))
	})

	t.Run("first rupee above rebate is fully taxed", func(t *testing.T) {
		// taxable 700008: 400000*5% + 8*10% = 20000.80 a year
		assertAmount(t, "1666.73", rules.IncomeTax(d("64584")))
	})

	t.Run("marginal brackets", func(t *testing.T) {
		// taxable 1125000: 20000 + 30000 + 18750 = 68750 a year
		assertAmount(t, "5729.17", rules.IncomeTax(d("100000")))
		// taxable 2325000: 20000 + 30000 + 30000 + 60000 + 247500
		assertAmount(t, "32291.67", rules.IncomeTax(d("200000")))
	})

	t.Run("strictly increasing above the rebate", func(t *testing.T) {
		prev := rules.IncomeTax(d("64584"))
		for gross := int64(65000); gross <= 300000; gross += 5000 {
			cur := rules.IncomeTax(decimal.NewFromInt(gross))
			assert.Truef(t, cur.GreaterThan(prev), "tds at %d should exceed %s", gross, prev)
			prev = cur
		}
	})
}

func TestLopDeduction(t *testing.T) {
	rules := deduction.DefaultRuleSet()

	assertAmount(t, "1866.67", rules.LopDeduction(d("28000"), 2))
	assertAmount(t, "0", rules.LopDeduction(d("28000"), 0))
	assertAmount(t, "28000", rules.LopDeduction(d("28000"), 30))
}

func TestComputeWorkedExample(t *testing.T) {
	rules := deduction.DefaultRuleSet()
	gross := d("28000")

	got := rules.Compute(gross, structure{basic: d("20000")})

	assertAmount(t, "2400", got.PF)
	assertAmount(t, "0", got.ESI)
	assertAmount(t, "100", got.PT)
	assertAmount(t, "0", got.TDS)

	lop := rules.LopDeduction(gross, 2)
	total := lop.Add(got.Total())
	assertAmount(t, "4366.67", total)
	assertAmount(t, "23633.33", gross.Sub(total))
}

func TestEngineUsesScheduleForPeriod(t *testing.T) {
	later := deduction.DefaultRuleSet()
	later.EffectiveFrom = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	later.PFRate = d("0.10")

	schedule, err := deduction.NewSchedule(deduction.DefaultRuleSet(), later)
	assert.NoError(t, err)
	engine := deduction.NewEngine(schedule)

	march, err := engine.Compute(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), d("28000"), structure{basic: d("20000")})
	assert.NoError(t, err)
	assertAmount(t, "2400", march.PF)

	april, err := engine.Compute(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), d("28000"), structure{basic: d("20000")})
	assert.NoError(t, err)
	assertAmount(t, "2000", april.PF)
}
