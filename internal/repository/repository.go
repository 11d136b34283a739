package repository

import (
	"context"

	"propertyhub-backend/internal/domain"
)

// ListFilter narrows an entity listing. Search matches case-insensitively
// against email, first name and last name.
type ListFilter struct {
	Status domain.ApprovalStatus
	Search string
}

// EntityStore is the per-kind record accessor. Each approvable kind binds its
// own implementation (landlords, property management companies, tenants) at
// startup; the transition service is the only writer of the approval fields.
type EntityStore interface {
	GetByID(ctx context.Context, id string) (*domain.ApprovableEntity, error)
	UpdateApproval(ctx context.Context, e *domain.ApprovableEntity) error
	List(ctx context.Context, filter ListFilter, page, pageSize int32) ([]domain.ApprovableEntity, int32, error)
	CountByStatus(ctx context.Context) (*domain.StatusCounts, error)
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLogEntry) error
	List(ctx context.Context, page, pageSize int32) ([]domain.AuditLogEntry, int32, error)
}
