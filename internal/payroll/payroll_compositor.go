package payroll

import (
	"hris-payroll/internal/deduction"
	"hris-payroll/internal/salarystructure"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// composeEntry builds the entry of one employee for a run.
func composeEntry(runID, employeeID uuid.UUID, structure salarystructure.SalaryStructure, lopDays int, rules deduction.RuleSet) PayrollEntry {
	gross := structure.GrossMonthly().Round(2)
	statutory := rules.Compute(gross, structure)

	entry := PayrollEntry{
		ID:           uuid.New(),
		PayrollRunID: runID,
		EmployeeID:   employeeID,
		GrossSalary:  gross,
		LopDays:      lopDays,
		Deductions: Deductions{
			Lop: rules.LopDeduction(gross, lopDays),
			PF:  statutory.PF,
			ESI: statutory.ESI,
			PT:  statutory.PT,
			TDS: statutory.TDS,
		},
	}
	settle(&entry)
	return entry
}

// recomposeEntry applies new LOP days to an entry using its stored gross.
// A nil structure keeps the stored statutory amounts.
func recomposeEntry(entry *PayrollEntry, lopDays int, structure deduction.Structure, rules deduction.RuleSet) {
	entry.LopDays = lopDays
	entry.Deductions.Lop = rules.LopDeduction(entry.GrossSalary, lopDays)

	if structure != nil {
		statutory := rules.Compute(entry.GrossSalary, structure)
		entry.Deductions.PF = statutory.PF
		entry.Deductions.ESI = statutory.ESI
		entry.Deductions.PT = statutory.PT
		entry.Deductions.TDS = statutory.TDS
	}
	settle(entry)
}

func settle(entry *PayrollEntry) {
	entry.TotalDeductions = entry.Deductions.Total()
	entry.NetSalary = entry.GrossSalary.Sub(entry.TotalDeductions)
}

func sumNet(entries []PayrollEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.NetSalary)
	}
	return total
}
