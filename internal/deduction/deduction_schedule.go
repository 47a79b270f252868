package deduction

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrNoRuleSet = errors.New("no deduction rule set is effective for the period")

const dateLayout = "2006-01-02"

// Schedule keeps rule sets ordered by EffectiveFrom.
type Schedule struct {
	rules []RuleSet
}

func NewSchedule(rules ...RuleSet) (*Schedule, error) {
	if len(rules) == 0 {
		return nil, errors.New("schedule needs at least one rule set")
	}

	sorted := make([]RuleSet, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.Before(sorted[j].EffectiveFrom)
	})

	for i, r := range sorted {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule set effective %s: %w", r.EffectiveFrom.Format(dateLayout), err)
		}
		if i > 0 && r.EffectiveFrom.Equal(sorted[i-1].EffectiveFrom) {
			return nil, fmt.Errorf("two rule sets share effective date %s", r.EffectiveFrom.Format(dateLayout))
		}
	}

	return &Schedule{rules: sorted}, nil
}

// DefaultSchedule holds a single rule set effective since the zero time.
func DefaultSchedule() *Schedule {
	return &Schedule{rules: []RuleSet{DefaultRuleSet()}}
}

// For returns the latest rule set whose EffectiveFrom is not after at.
func (s *Schedule) For(at time.Time) (RuleSet, error) {
	idx := sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].EffectiveFrom.After(at)
	})
	if idx == 0 {
		return RuleSet{}, fmt.Errorf("%w: %s", ErrNoRuleSet, at.Format(dateLayout))
	}
	return s.rules[idx-1], nil
}

type scheduleFile struct {
	RuleSets []ruleSetFile `yaml:"rule_sets"`
}

type ruleSetFile struct {
	EffectiveFrom     string          `yaml:"effective_from"`
	PFRate            decimal.Decimal `yaml:"pf_rate"`
	ESIRate           decimal.Decimal `yaml:"esi_rate"`
	ESIThreshold      decimal.Decimal `yaml:"esi_threshold"`
	ProfessionalTax   []Slab          `yaml:"professional_tax"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction"`
	RebateLimit       decimal.Decimal `yaml:"rebate_limit"`
	TaxBrackets       []TaxBracket    `yaml:"tax_brackets"`
	LopDivisor        int             `yaml:"lop_divisor"`
}

// ParseSchedule decodes a YAML document of dated rule sets.
func ParseSchedule(data []byte) (*Schedule, error) {
	var f scheduleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode deduction rules: %w", err)
	}

	rules := make([]RuleSet, 0, len(f.RuleSets))
	for _, rf := range f.RuleSets {
		from, err := time.Parse(dateLayout, rf.EffectiveFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid effective_from %q: %w", rf.EffectiveFrom, err)
		}
		divisor := rf.LopDivisor
		if divisor == 0 {
			divisor = DefaultRuleSet().LopDivisor
		}
		rules = append(rules, RuleSet{
			EffectiveFrom:     from,
			PFRate:            rf.PFRate,
			ESIRate:           rf.ESIRate,
			ESIThreshold:      rf.ESIThreshold,
			ProfessionalTax:   rf.ProfessionalTax,
			StandardDeduction: rf.StandardDeduction,
			RebateLimit:       rf.RebateLimit,
			TaxBrackets:       rf.TaxBrackets,
			LopDivisor:        divisor,
		})
	}

	return NewSchedule(rules...)
}

// LoadSchedule reads the rules file, or returns the default schedule when
// path is empty.
func LoadSchedule(path string) (*Schedule, error) {
	if path == "" {
		return DefaultSchedule(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deduction rules: %w", err)
	}
	return ParseSchedule(data)
}
