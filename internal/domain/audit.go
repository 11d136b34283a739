package domain

import "time"

// ApprovalSnapshot captures the approval fields of an entity at a point in
// time, for the before/after pair on an audit entry.
type ApprovalSnapshot struct {
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	ApprovedBy      *string        `json:"approved_by"`
	ApprovedAt      *time.Time     `json:"approved_at"`
	RejectedBy      *string        `json:"rejected_by"`
	RejectedAt      *time.Time     `json:"rejected_at"`
	RejectionReason *string        `json:"rejection_reason"`
	HasAccess       *bool          `json:"has_access,omitempty"`
}

func SnapshotOf(e *ApprovableEntity) ApprovalSnapshot {
	return ApprovalSnapshot{
		ApprovalStatus:  e.ApprovalStatus,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		RejectedBy:      e.RejectedBy,
		RejectedAt:      e.RejectedAt,
		RejectionReason: e.RejectionReason,
		HasAccess:       e.HasAccess,
	}
}

// AuditLogEntry is an append-only record of an admin action. Entries are
// created once per transition attempt and never mutated or deleted.
type AuditLogEntry struct {
	ID            string            `json:"id"`
	ActorID       string            `json:"actor_id"`
	Action        string            `json:"action"` // approve_<kind> / reject_<kind>
	EntityKind    EntityKind        `json:"entity_kind"`
	EntityID      string            `json:"entity_id"`
	Before        ApprovalSnapshot  `json:"before"`
	After         ApprovalSnapshot  `json:"after"`
	ChangedFields []string          `json:"changed_fields"`
	Details       map[string]string `json:"details,omitempty"`
	IPAddress     string            `json:"ip_address,omitempty"`
	UserAgent     string            `json:"user_agent,omitempty"`
	Success       bool              `json:"success"`
	CreatedOn     time.Time         `json:"created_on"`
}

// RequestMeta carries request-level metadata from the API boundary into the
// audit trail.
type RequestMeta struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}
