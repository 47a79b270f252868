package rbac

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var rows []RolePermission
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&rows).Error
	return rows, err
}
