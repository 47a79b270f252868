package rbac

import (
	"context"
	"sync"

	"hris-payroll/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions() []domain.PermissionResponse
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the enforcer policy with the built-in grants plus
// any extra rows from role_permissions.
func (s *service) LoadPolicy(ctx context.Context) error {
	var extra []RolePermission
	if s.repo != nil {
		rows, err := s.repo.ListRolePermissions(ctx)
		if err != nil {
			return err
		}
		extra = rows
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, in := range DefaultInheritance() {
		if _, err := s.enforcer.AddGroupingPolicy(in.Role, in.Parent); err != nil {
			return err
		}
	}

	perms := append(DefaultPermissions(), extra...)
	for _, p := range perms {
		// AddPolicy reports false without error for duplicates.
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("permissions", len(perms)),
		zap.Int("extra", len(extra)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("employee_id", req.EmployeeID),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Permissions lists the effective grants per role, inherited ones included.
func (s *service) Permissions() []domain.PermissionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PermissionResponse
	for _, role := range []string{domain.RoleAdmin, domain.RoleHR, domain.RoleEmployee} {
		perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
		if err != nil {
			continue
		}
		for _, p := range perms {
			if len(p) < 3 {
				continue
			}
			out = append(out, domain.PermissionResponse{Role: role, Resource: p[1], Action: p[2]})
		}
	}
	return out
}
