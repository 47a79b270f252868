package salarystructure

import (
	"errors"
	"strings"

	salarystructureerrors "hris-payroll/internal/salarystructure/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarystructureerrors.ErrStructureNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return salarystructureerrors.ErrStructureNameExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_structure_name" {
		return salarystructureerrors.ErrStructureNameExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_structure_name") {
		return salarystructureerrors.ErrStructureNameExists
	}

	return err
}
