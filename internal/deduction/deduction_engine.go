package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Structure is the part of a salary structure the engine reads.
type Structure interface {
	BasicPay() decimal.Decimal
}

// Statutory holds the monthly statutory deductions, each rounded to 2dp.
type Statutory struct {
	PF  decimal.Decimal
	ESI decimal.Decimal
	PT  decimal.Decimal
	TDS decimal.Decimal
}

func (s Statutory) Total() decimal.Decimal {
	return s.PF.Add(s.ESI).Add(s.PT).Add(s.TDS)
}

var twelve = decimal.NewFromInt(12)

// Compute derives PF, ESI, PT and TDS for a monthly gross.
func (r RuleSet) Compute(gross decimal.Decimal, s Structure) Statutory {
	return Statutory{
		PF:  r.ProvidentFund(s.BasicPay()),
		ESI: r.Insurance(gross),
		PT:  r.ProfessionalTaxFor(gross),
		TDS: r.IncomeTax(gross),
	}
}

func (r RuleSet) ProvidentFund(basic decimal.Decimal) decimal.Decimal {
	return nonNegative(basic.Mul(r.PFRate)).Round(2)
}

// Insurance is charged only while gross stays at or below the threshold.
func (r RuleSet) Insurance(gross decimal.Decimal) decimal.Decimal {
	if gross.GreaterThan(r.ESIThreshold) {
		return decimal.Zero
	}
	return nonNegative(gross.Mul(r.ESIRate)).Round(2)
}

func (r RuleSet) ProfessionalTaxFor(gross decimal.Decimal) decimal.Decimal {
	for _, slab := range r.ProfessionalTax {
		if gross.GreaterThan(slab.Above) {
			return slab.Amount.Round(2)
		}
	}
	return decimal.Zero
}

// IncomeTax annualizes gross, applies the standard deduction and the rebate,
// then runs the marginal brackets and returns one month's share.
func (r RuleSet) IncomeTax(gross decimal.Decimal) decimal.Decimal {
	taxable := nonNegative(gross.Mul(twelve).Sub(r.StandardDeduction))
	if taxable.LessThanOrEqual(r.RebateLimit) {
		return decimal.Zero
	}

	annual := decimal.Zero
	for _, b := range r.TaxBrackets {
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		upper := taxable
		if b.Max != nil {
			upper = decimal.Min(taxable, *b.Max)
		}
		annual = annual.Add(upper.Sub(b.Min).Mul(b.Rate))
	}

	return annual.Div(twelve).Round(2)
}

// LopDeduction charges days at gross/LopDivisor per day.
func (r RuleSet) LopDeduction(gross decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	perDay := gross.Div(decimal.NewFromInt(int64(r.LopDivisor)))
	return perDay.Mul(decimal.NewFromInt(int64(days))).Round(2)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Engine resolves the rule set effective for a pay period and applies it.
type Engine struct {
	schedule *Schedule
}

func NewEngine(schedule *Schedule) *Engine {
	if schedule == nil {
		schedule = DefaultSchedule()
	}
	return &Engine{schedule: schedule}
}

func (e *Engine) RulesFor(period time.Time) (RuleSet, error) {
	return e.schedule.For(period)
}

func (e *Engine) Compute(period time.Time, gross decimal.Decimal, s Structure) (Statutory, error) {
	rules, err := e.schedule.For(period)
	if err != nil {
		return Statutory{}, err
	}
	return rules.Compute(gross, s), nil
}
