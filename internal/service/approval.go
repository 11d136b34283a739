package service

import (
	"context"
	"fmt"
	"time"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/repository"
)

// RoleAdmin is the actor role allowed as a foreign-key reference on kinds
// with RequiresAdminApprover.
const RoleAdmin = "admin"

const defaultPageSize = 20

type approvalService struct {
	registry  *Registry
	auditRepo repository.AuditLogRepository
}

func NewApprovalService(registry *Registry, auditRepo repository.AuditLogRepository) ApprovalService {
	return &approvalService{
		registry:  registry,
		auditRepo: auditRepo,
	}
}

func (s *approvalService) ListEntities(ctx context.Context, kind domain.EntityKind, params ListParams) (*ListResult, error) {
	cfg, err := s.registry.ConfigFor(kind)
	if err != nil {
		return nil, err
	}

	if params.Status == "" {
		params.Status = domain.ApprovalStatusPending
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}

	filter := repository.ListFilter{Status: params.Status, Search: params.Search}
	entities, total, err := cfg.Store.List(ctx, filter, params.Page, params.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entities: %w", kind, err)
	}

	// Counts always cover the full entity set, regardless of the filter the
	// caller is viewing.
	counts, err := cfg.Store.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s entities: %w", kind, err)
	}

	totalPages := total / params.PageSize
	if total%params.PageSize != 0 {
		totalPages++
	}
	return &ListResult{
		Entities:   entities,
		Total:      total,
		Counts:     *counts,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *approvalService) ApproveEntity(ctx context.Context, kind domain.EntityKind, action ApprovalAction) (*domain.ApprovableEntity, error) {
	cfg, err := s.registry.ConfigFor(kind)
	if err != nil {
		return nil, err
	}

	// No guard between this read and the write below; concurrent transitions
	// on the same entity are last-write-wins, matching the existing portal
	// behavior.
	e, err := cfg.Store.GetByID(ctx, action.EntityID)
	if err != nil {
		return nil, err
	}
	if e.ApprovalStatus == domain.ApprovalStatusApproved {
		return nil, domain.ErrAlreadyApproved
	}
	before := domain.SnapshotOf(e)

	// The approved_by column on admin-gated kinds can only reference an admin
	// user, so a non-admin approver is stored as null.
	approvedBy := &action.ActorID
	if cfg.RequiresAdminApprover && action.ActorRole != RoleAdmin {
		approvedBy = nil
	}

	now := time.Now()
	e.ApprovalStatus = domain.ApprovalStatusApproved
	e.ApprovedBy = approvedBy
	e.ApprovedAt = &now
	e.RejectedBy = nil
	e.RejectedAt = nil
	e.RejectionReason = nil
	if cfg.RequiresAccessField {
		granted := true
		e.HasAccess = &granted
	}

	if err := cfg.Store.UpdateApproval(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to approve %s %s: %w", kind, e.ID, err)
	}

	if cfg.AuditLog {
		s.recordAudit(ctx, cfg, action, fmt.Sprintf("approve_%s", kind), e, before,
			[]string{"approval_status", "approved_by", "approved_at"},
			map[string]string{"email": e.Email})
	}
	s.bestEffort("notify approval", kind, e.ID, func() error {
		return cfg.NotifyApproval(ctx, e, action.ActorName)
	})

	return e, nil
}

func (s *approvalService) RejectEntity(ctx context.Context, kind domain.EntityKind, action ApprovalAction) (*domain.ApprovableEntity, error) {
	cfg, err := s.registry.ConfigFor(kind)
	if err != nil {
		return nil, err
	}

	e, err := cfg.Store.GetByID(ctx, action.EntityID)
	if err != nil {
		return nil, err
	}
	if e.ApprovalStatus == domain.ApprovalStatusRejected {
		return nil, domain.ErrAlreadyRejected
	}
	before := domain.SnapshotOf(e)

	rejectedBy := &action.ActorID
	if cfg.RequiresAdminApprover && action.ActorRole != RoleAdmin {
		rejectedBy = nil
	}
	var reason *string
	if action.Reason != "" {
		reason = &action.Reason
	}

	now := time.Now()
	e.ApprovalStatus = domain.ApprovalStatusRejected
	e.RejectedBy = rejectedBy
	e.RejectedAt = &now
	e.RejectionReason = reason
	e.ApprovedBy = nil
	e.ApprovedAt = nil
	if cfg.RequiresAccessField {
		revoked := false
		e.HasAccess = &revoked
	}

	if err := cfg.Store.UpdateApproval(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to reject %s %s: %w", kind, e.ID, err)
	}

	if cfg.AuditLog {
		s.recordAudit(ctx, cfg, action, fmt.Sprintf("reject_%s", kind), e, before,
			[]string{"approval_status", "rejected_by", "rejected_at"},
			map[string]string{"email": e.Email, "reason": action.Reason})
	}
	s.bestEffort("notify rejection", kind, e.ID, func() error {
		return cfg.NotifyRejection(ctx, e, action.ActorName, action.Reason)
	})

	return e, nil
}

func (s *approvalService) PendingCounts(ctx context.Context) (map[domain.EntityKind]int32, error) {
	pending := make(map[domain.EntityKind]int32)
	for _, kind := range s.registry.Kinds() {
		cfg, err := s.registry.ConfigFor(kind)
		if err != nil {
			return nil, err
		}
		counts, err := cfg.Store.CountByStatus(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s entities: %w", kind, err)
		}
		pending[kind] = counts.Pending
	}
	return pending, nil
}

func (s *approvalService) ListAuditLog(ctx context.Context, page, pageSize int32) ([]domain.AuditLogEntry, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return s.auditRepo.List(ctx, page, pageSize)
}

// recordAudit appends the transition to the audit trail. The entry is
// best-effort: a failed write is logged and swallowed so the already
// persisted transition still succeeds from the caller's view.
func (s *approvalService) recordAudit(ctx context.Context, cfg *EntityTypeConfig, action ApprovalAction, name string, e *domain.ApprovableEntity, before domain.ApprovalSnapshot, changed []string, details map[string]string) {
	entry := &domain.AuditLogEntry{
		ActorID:       action.ActorID,
		Action:        name,
		EntityKind:    cfg.Kind,
		EntityID:      e.ID,
		Before:        before,
		After:         domain.SnapshotOf(e),
		ChangedFields: changed,
		Details:       details,
		IPAddress:     action.Meta.IPAddress,
		UserAgent:     action.Meta.UserAgent,
		Success:       true,
	}
	s.bestEffort("audit log", cfg.Kind, e.ID, func() error {
		return s.auditRepo.Create(ctx, entry)
	})
}

func (s *approvalService) bestEffort(op string, kind domain.EntityKind, entityID string, fn func() error) {
	if err := fn(); err != nil {
		logger.Error("Best-effort side effect failed", "op", op, "kind", kind, "entityID", entityID, "error", err)
	}
}
