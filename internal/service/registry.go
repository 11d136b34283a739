package service

import (
	"context"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository"
)

// EntityTypeConfig binds an approvable entity kind to its record store, its
// notifier pair and the per-kind behavior switches. Configs are immutable and
// built once at startup; adding a new approvable kind means adding one entry
// in NewRegistry.
type EntityTypeConfig struct {
	Kind  domain.EntityKind
	Store repository.EntityStore

	// RequiresAccessField marks kinds whose rows carry a has_access flag that
	// must track the approval status (tenants).
	RequiresAccessField bool

	// AuditLog marks kinds whose transitions are admin actions and must leave
	// an audit trail.
	AuditLog bool

	// RequiresAdminApprover marks kinds whose approved_by/rejected_by columns
	// are foreign keys restricted to admin users. For those kinds a non-admin
	// actor is recorded as null.
	RequiresAdminApprover bool

	NotifyApproval  func(ctx context.Context, e *domain.ApprovableEntity, approverName string) error
	NotifyRejection func(ctx context.Context, e *domain.ApprovableEntity, approverName, reason string) error
}

// Registry is the static kind -> config table.
type Registry struct {
	configs map[domain.EntityKind]*EntityTypeConfig
}

func NewRegistry(landlords, pmcs, tenants repository.EntityStore, emailSvc EmailService) *Registry {
	configs := map[domain.EntityKind]*EntityTypeConfig{
		domain.EntityKindLandlord: {
			Kind:                  domain.EntityKindLandlord,
			Store:                 landlords,
			AuditLog:              true,
			RequiresAdminApprover: true,
			NotifyApproval: func(ctx context.Context, e *domain.ApprovableEntity, approverName string) error {
				return emailSvc.SendLandlordApproval(ctx, e.Email, e.FullName(), approverName)
			},
			NotifyRejection: func(ctx context.Context, e *domain.ApprovableEntity, approverName, reason string) error {
				return emailSvc.SendLandlordRejection(ctx, e.Email, e.FullName(), approverName, reason)
			},
		},
		domain.EntityKindPMC: {
			Kind:                  domain.EntityKindPMC,
			Store:                 pmcs,
			AuditLog:              true,
			RequiresAdminApprover: true,
			NotifyApproval: func(ctx context.Context, e *domain.ApprovableEntity, approverName string) error {
				return emailSvc.SendPMCApproval(ctx, e.Email, e.FullName(), approverName)
			},
			NotifyRejection: func(ctx context.Context, e *domain.ApprovableEntity, approverName, reason string) error {
				return emailSvc.SendPMCRejection(ctx, e.Email, e.FullName(), approverName, reason)
			},
		},
		domain.EntityKindTenant: {
			Kind:                domain.EntityKindTenant,
			Store:               tenants,
			RequiresAccessField: true,
			NotifyApproval: func(ctx context.Context, e *domain.ApprovableEntity, approverName string) error {
				return emailSvc.SendTenantApproval(ctx, e.Email, e.FullName(), approverName)
			},
			NotifyRejection: func(ctx context.Context, e *domain.ApprovableEntity, approverName, reason string) error {
				return emailSvc.SendTenantRejection(ctx, e.Email, e.FullName(), approverName, reason)
			},
		},
	}
	return &Registry{configs: configs}
}

// ConfigFor resolves the config for a kind. Unknown kinds fail with
// domain.ErrConfigNotFound.
func (r *Registry) ConfigFor(kind domain.EntityKind) (*EntityTypeConfig, error) {
	cfg, ok := r.configs[kind]
	if !ok {
		return nil, domain.ErrConfigNotFound
	}
	return cfg, nil
}

// Kinds lists the registered kinds.
func (r *Registry) Kinds() []domain.EntityKind {
	kinds := make([]domain.EntityKind, 0, len(r.configs))
	for k := range r.configs {
		kinds = append(kinds, k)
	}
	return kinds
}
