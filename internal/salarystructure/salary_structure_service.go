package salarystructure

import (
	"context"
	"database/sql"
	"strings"
	"time"

	salarystructureerrors "hris-payroll/internal/salarystructure/errors"
	"hris-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateSalaryStructureRequest) (SalaryStructureResponse, error)
	GetAll(ctx context.Context) ([]SalaryStructureResponse, error)
	GetByID(ctx context.Context, id string) (SalaryStructureResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryStructureRequest) (SalaryStructureResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSalaryStructureRequest) (SalaryStructureResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	structure := &SalaryStructure{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Basic:            req.Basic,
		HRA:              req.HRA,
		Conveyance:       req.Conveyance,
		MedicalAllowance: req.MedicalAllowance,
		SpecialAllowance: req.SpecialAllowance,
		ProfessionalTax:  req.ProfessionalTax,
		ProvidentFund:    req.ProvidentFund,
		Insurance:        req.Insurance,
		OvertimeRate:     req.OvertimeRate,
		IsActive:         true,
	}
	if req.IsActive != nil {
		structure.IsActive = *req.IsActive
	}
	if err := validateAmounts(*structure); err != nil {
		log.Warn("create salary structure rejected", zap.String("name", structure.Name))
		return SalaryStructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create salary structure begin tx failed", zap.Error(err))
		return SalaryStructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByName(ctx, structure.Name, "")
	if err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}
	if exists {
		return SalaryStructureResponse{}, salarystructureerrors.ErrStructureNameExists
	}

	if err := qtx.Create(ctx, structure); err != nil {
		log.Error("create salary structure persist failed", zap.Error(err))
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryStructureResponse{}, err
	}

	log.Info("salary structure created", zap.String("structure_id", structure.ID.String()))
	return mapToResponse(*structure), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryStructureResponse, error) {
	structures, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(structures), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryStructureResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidStructureID
	}

	structure, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*structure), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSalaryStructureRequest) (SalaryStructureResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidStructureID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update salary structure begin tx failed", zap.Error(err))
		return SalaryStructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	applyUpdate(structure, req)
	if err := validateAmounts(*structure); err != nil {
		log.Warn("update salary structure rejected", zap.String("structure_id", id))
		return SalaryStructureResponse{}, err
	}

	if req.Name != nil {
		exists, err := qtx.ExistsByName(ctx, structure.Name, id)
		if err != nil {
			return SalaryStructureResponse{}, mapRepositoryError(err)
		}
		if exists {
			return SalaryStructureResponse{}, salarystructureerrors.ErrStructureNameExists
		}
	}

	if err := qtx.Update(ctx, structure); err != nil {
		log.Error("update salary structure persist failed", zap.Error(err))
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryStructureResponse{}, err
	}

	return mapToResponse(*structure), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return salarystructureerrors.ErrInvalidStructureID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete salary structure begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	assigned, err := qtx.CountAssignedEmployees(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if assigned > 0 {
		log.Warn("delete salary structure rejected, still assigned",
			zap.String("structure_id", id),
			zap.Int64("employees", assigned),
		)
		return salarystructureerrors.ErrStructureInUse.WithDetails(map[string]any{"assigned_employees": assigned})
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func applyUpdate(s *SalaryStructure, req UpdateSalaryStructureRequest) {
	if req.Name != nil {
		s.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	set := func(dst *decimal.Decimal, v *decimal.Decimal) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.Basic, req.Basic)
	set(&s.HRA, req.HRA)
	set(&s.Conveyance, req.Conveyance)
	set(&s.MedicalAllowance, req.MedicalAllowance)
	set(&s.SpecialAllowance, req.SpecialAllowance)
	set(&s.ProfessionalTax, req.ProfessionalTax)
	set(&s.ProvidentFund, req.ProvidentFund)
	set(&s.Insurance, req.Insurance)
	set(&s.OvertimeRate, req.OvertimeRate)
}

func validateAmounts(s SalaryStructure) error {
	for _, amount := range s.amounts() {
		if amount.IsNegative() {
			return salarystructureerrors.ErrNegativeAmount
		}
	}
	return nil
}

func mapToResponse(s SalaryStructure) SalaryStructureResponse {
	return SalaryStructureResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		Description:      s.Description,
		Basic:            s.Basic.StringFixed(2),
		HRA:              s.HRA.StringFixed(2),
		Conveyance:       s.Conveyance.StringFixed(2),
		MedicalAllowance: s.MedicalAllowance.StringFixed(2),
		SpecialAllowance: s.SpecialAllowance.StringFixed(2),
		ProfessionalTax:  s.ProfessionalTax.StringFixed(2),
		ProvidentFund:    s.ProvidentFund.StringFixed(2),
		Insurance:        s.Insurance.StringFixed(2),
		OvertimeRate:     s.OvertimeRate.StringFixed(2),
		GrossMonthly:     s.GrossMonthly().StringFixed(2),
		IsActive:         s.IsActive,
		EmployeeCount:    s.EmployeeCount,
		CreatedAt:        formatTime(s.CreatedAt),
		UpdatedAt:        formatTime(s.UpdatedAt),
	}
}

func mapToListResponse(structures []SalaryStructure) []SalaryStructureResponse {
	res := make([]SalaryStructureResponse, len(structures))
	for i, s := range structures {
		res[i] = mapToResponse(s)
	}
	return res
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
