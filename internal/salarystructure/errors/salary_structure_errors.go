package salarystructureerrors

import (
	"net/http"

	"hris-payroll/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary structure not found",
		http.StatusNotFound,
	)
	ErrStructureNameExists = apperror.New(
		apperror.CodeConflict,
		"Salary structure with this name already exists",
		http.StatusConflict,
	)
	ErrStructureInUse = apperror.New(
		apperror.CodeConflict,
		"Salary structure is assigned to employees and cannot be deleted",
		http.StatusConflict,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeValidation,
		"Salary components cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidStructureID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary structure ID",
		http.StatusBadRequest,
	)
)
