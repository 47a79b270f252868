package payrollerrors

import (
	"net/http"

	"hris-payroll/internal/shared/apperror"
)

var (
	ErrInvalidRunID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll run ID",
		http.StatusBadRequest,
	)
	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll entry ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidation,
		"Month must be between 1 and 12 and year between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll status filter",
		http.StatusBadRequest,
	)
	ErrInvalidLopDays = apperror.New(
		apperror.CodeValidation,
		"LOP days must be between 0 and 31",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll entry not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee for payroll entry not found",
		http.StatusNotFound,
	)
	ErrRunExists = apperror.New(
		apperror.CodeConflict,
		"Payroll run for this month already exists",
		http.StatusConflict,
	)
	ErrRunChanged = apperror.New(
		apperror.CodeConflict,
		"Payroll run was changed by another request, retry",
		http.StatusConflict,
	)
	ErrCalculateOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"Payroll can only be calculated while the run is draft",
		http.StatusBadRequest,
	)
	ErrEditOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"Payroll entries can only be edited while the run is draft",
		http.StatusBadRequest,
	)
	ErrApproveOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"Only draft payroll runs can be approved",
		http.StatusBadRequest,
	)
	ErrApproveEmptyRun = apperror.New(
		apperror.CodeInvalidState,
		"Payroll run has no entries, calculate it before approving",
		http.StatusBadRequest,
	)
	ErrProcessOnlyApproved = apperror.New(
		apperror.CodeInvalidState,
		"Only approved payroll runs can be processed",
		http.StatusBadRequest,
	)
	ErrDeleteProcessed = apperror.New(
		apperror.CodeInvalidState,
		"Processed payroll runs cannot be deleted",
		http.StatusForbidden,
	)
	ErrNoEmployeeRecord = apperror.New(
		apperror.CodeForbidden,
		"Your account is not linked to an employee record",
		http.StatusForbidden,
	)
)
