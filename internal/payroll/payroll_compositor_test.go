package payroll

import (
	"testing"

	"hris-payroll/internal/deduction"
	"hris-payroll/internal/salarystructure"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func standardStructure() salarystructure.SalaryStructure {
	return salarystructure.SalaryStructure{
		ID:    uuid.New(),
		Name:  "Standard",
		Basic: dec("20000"),
		HRA:   dec("8000"),
	}
}

func TestComposeEntry(t *testing.T) {
	runID, employeeID := uuid.New(), uuid.New()

	entry := composeEntry(runID, employeeID, standardStructure(), 2, deduction.DefaultRuleSet())

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, runID, entry.PayrollRunID)
	assert.Equal(t, employeeID, entry.EmployeeID)
	assert.Equal(t, 2, entry.LopDays)

	assertAmount(t, "28000", entry.GrossSalary)
	assertAmount(t, "1866.67", entry.Deductions.Lop)
	assertAmount(t, "2400", entry.Deductions.PF)
	assertAmount(t, "0", entry.Deductions.ESI)
	assertAmount(t, "100", entry.Deductions.PT)
	assertAmount(t, "0", entry.Deductions.TDS)
	assertAmount(t, "4366.67", entry.TotalDeductions)
	assertAmount(t, "23633.33", entry.NetSalary)
	assert.True(t, entry.GrossSalary.Sub(entry.TotalDeductions).Equal(entry.NetSalary))
}

func TestRecomposeEntry(t *testing.T) {
	rules := deduction.DefaultRuleSet()
	structure := standardStructure()

	t.Run("new lop days", func(t *testing.T) {
		entry := composeEntry(uuid.New(), uuid.New(), structure, 0, rules)
		assertAmount(t, "25500", entry.NetSalary)

		recomposeEntry(&entry, 2, structure, rules)

		assert.Equal(t, 2, entry.LopDays)
		assertAmount(t, "4366.67", entry.TotalDeductions)
		assertAmount(t, "23633.33", entry.NetSalary)
	})

	t.Run("nil structure keeps statutory amounts", func(t *testing.T) {
		entry := composeEntry(uuid.New(), uuid.New(), structure, 0, rules)
		entry.Deductions.PF = dec("1800")

		recomposeEntry(&entry, 1, nil, rules)

		assertAmount(t, "1800", entry.Deductions.PF)
		assertAmount(t, "933.33", entry.Deductions.Lop)
		assertAmount(t, "2833.33", entry.TotalDeductions)
		assertAmount(t, "25166.67", entry.NetSalary)
	})

	t.Run("uses stored gross", func(t *testing.T) {
		entry := composeEntry(uuid.New(), uuid.New(), structure, 0, rules)
		raised := structure
		raised.Basic = dec("40000")

		recomposeEntry(&entry, 0, raised, rules)

		assertAmount(t, "28000", entry.GrossSalary)
		assertAmount(t, "4800", entry.Deductions.PF)
	})
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "one thousand twenty-four and 05/100", amountInWords(dec("1024.05")))
	assert.Equal(t, "seventeen and 00/100", amountInWords(dec("17")))
}
