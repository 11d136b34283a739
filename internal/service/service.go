package service

import (
	"context"

	"propertyhub-backend/internal/domain"
)

// ListParams narrows and pages an entity listing. An empty Status defaults to
// PENDING.
type ListParams struct {
	Status   domain.ApprovalStatus
	Search   string
	Page     int32
	PageSize int32
}

// ListResult is one page of entities plus the filter-independent per-status
// totals for the kind.
type ListResult struct {
	Entities   []domain.ApprovableEntity `json:"entities"`
	Total      int32                     `json:"total"`
	Counts     domain.StatusCounts       `json:"counts"`
	Page       int32                     `json:"page"`
	PageSize   int32                     `json:"page_size"`
	TotalPages int32                     `json:"total_pages"`
}

// ApprovalAction identifies the already-authenticated actor performing a
// transition, plus request metadata for the audit trail.
type ApprovalAction struct {
	EntityID  string
	ActorID   string
	ActorName string
	ActorRole string
	Reason    string // rejections only, optional
	Meta      domain.RequestMeta
}

type ApprovalService interface {
	ListEntities(ctx context.Context, kind domain.EntityKind, params ListParams) (*ListResult, error)
	ApproveEntity(ctx context.Context, kind domain.EntityKind, action ApprovalAction) (*domain.ApprovableEntity, error)
	RejectEntity(ctx context.Context, kind domain.EntityKind, action ApprovalAction) (*domain.ApprovableEntity, error)
	PendingCounts(ctx context.Context) (map[domain.EntityKind]int32, error)
	ListAuditLog(ctx context.Context, page, pageSize int32) ([]domain.AuditLogEntry, int32, error)
}

type EmailService interface {
	SendLandlordApproval(ctx context.Context, email, name, adminName string) error
	SendLandlordRejection(ctx context.Context, email, name, adminName, reason string) error
	SendPMCApproval(ctx context.Context, email, name, adminName string) error
	SendPMCRejection(ctx context.Context, email, name, adminName, reason string) error
	SendTenantApproval(ctx context.Context, email, name, landlordName string) error
	SendTenantRejection(ctx context.Context, email, name, landlordName, reason string) error
	SendPendingApprovalsReminder(ctx context.Context, opsEmail string, pending map[domain.EntityKind]int32) error
}
