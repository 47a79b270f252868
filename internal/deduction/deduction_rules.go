package deduction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Slab is a flat professional tax amount charged when gross exceeds Above.
type Slab struct {
	Above  decimal.Decimal `yaml:"above"`
	Amount decimal.Decimal `yaml:"amount"`
}

// TaxBracket taxes the part of annual taxable income between Min and Max.
// A nil Max leaves the bracket unbounded.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min"`
	Max  *decimal.Decimal `yaml:"max"`
	Rate decimal.Decimal  `yaml:"rate"`
}

// RuleSet is one dated revision of the statutory deduction constants.
type RuleSet struct {
	EffectiveFrom time.Time

	PFRate decimal.Decimal

	ESIRate      decimal.Decimal
	ESIThreshold decimal.Decimal

	// Evaluated from the highest Above down; first match wins.
	ProfessionalTax []Slab

	StandardDeduction decimal.Decimal
	RebateLimit       decimal.Decimal
	TaxBrackets       []TaxBracket

	LopDivisor int
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func bound(v int64) *decimal.Decimal {
	d := dec(v)
	return &d
}

// DefaultRuleSet reproduces the long-standing payroll constants: PF 12% of
// basic, ESI 0.75% up to 21,000, Tamil Nadu professional tax and the new
// regime income tax slabs with the 7L rebate.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		PFRate:       decimal.RequireFromString("0.12"),
		ESIRate:      decimal.RequireFromString("0.0075"),
		ESIThreshold: dec(21000),
		ProfessionalTax: []Slab{
			{Above: dec(75000), Amount: dec(1095)},
			{Above: dec(60000), Amount: dec(760)},
			{Above: dec(45000), Amount: dec(510)},
			{Above: dec(30000), Amount: dec(235)},
			{Above: dec(21000), Amount: dec(100)},
		},
		StandardDeduction: dec(75000),
		RebateLimit:       dec(700000),
		TaxBrackets: []TaxBracket{
			{Min: dec(0), Max: bound(300000), Rate: decimal.Zero},
			{Min: dec(300000), Max: bound(700000), Rate: decimal.RequireFromString("0.05")},
			{Min: dec(700000), Max: bound(1000000), Rate: decimal.RequireFromString("0.10")},
			{Min: dec(1000000), Max: bound(1200000), Rate: decimal.RequireFromString("0.15")},
			{Min: dec(1200000), Max: bound(1500000), Rate: decimal.RequireFromString("0.20")},
			{Min: dec(1500000), Max: nil, Rate: decimal.RequireFromString("0.30")},
		},
		LopDivisor: 30,
	}
}

// Validate rejects rule sets that would produce negative or ambiguous amounts.
func (r RuleSet) Validate() error {
	if r.LopDivisor <= 0 {
		return fmt.Errorf("lop divisor must be positive, got %d", r.LopDivisor)
	}
	for name, v := range map[string]decimal.Decimal{
		"pf rate":            r.PFRate,
		"esi rate":           r.ESIRate,
		"esi threshold":      r.ESIThreshold,
		"standard deduction": r.StandardDeduction,
		"rebate limit":       r.RebateLimit,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	for i, s := range r.ProfessionalTax {
		if s.Amount.IsNegative() {
			return fmt.Errorf("professional tax slab %d has a negative amount", i)
		}
		if i > 0 && !s.Above.LessThan(r.ProfessionalTax[i-1].Above) {
			return fmt.Errorf("professional tax slabs must be ordered from highest to lowest")
		}
	}
	for i, b := range r.TaxBrackets {
		if b.Rate.IsNegative() {
			return fmt.Errorf("tax bracket %d has a negative rate", i)
		}
		if b.Max != nil && !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("tax bracket %d has max not above min", i)
		}
		if b.Max == nil && i != len(r.TaxBrackets)-1 {
			return fmt.Errorf("only the last tax bracket may be unbounded")
		}
		if i > 0 {
			prev := r.TaxBrackets[i-1]
			if prev.Max == nil || !prev.Max.Equal(b.Min) {
				return fmt.Errorf("tax bracket %d does not start where bracket %d ends", i, i-1)
			}
		}
	}
	return nil
}
