package domain

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

type EntityKind string

const (
	EntityKindLandlord EntityKind = "landlord"
	EntityKindPMC      EntityKind = "pmc"
	EntityKindTenant   EntityKind = "tenant"
)

// ApprovableEntity is the common shape shared by landlord, PMC and tenant
// records. ApprovalStatus and the by/at field pairs are jointly consistent:
// APPROVED implies ApprovedAt set and the rejection triple null, REJECTED the
// reverse, PENDING both null.
type ApprovableEntity struct {
	ID              string         `json:"id"`
	Email           string         `json:"email"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Phone           string         `json:"phone"`
	City            string         `json:"city"`
	Province        string         `json:"province"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	ApprovedBy      *string        `json:"approved_by"`
	ApprovedAt      *time.Time     `json:"approved_at"`
	RejectedBy      *string        `json:"rejected_by"`
	RejectedAt      *time.Time     `json:"rejected_at"`
	RejectionReason *string        `json:"rejection_reason"`
	HasAccess       *bool          `json:"has_access,omitempty"` // tenant records only
	LandlordID      *string        `json:"landlord_id,omitempty"`
	CreatedOn       time.Time      `json:"created_on"`
}

func (e *ApprovableEntity) FullName() string {
	return e.FirstName + " " + e.LastName
}

// StatusCounts reports the full per-status totals for an entity kind,
// independent of any list filter or pagination.
type StatusCounts struct {
	Pending  int32 `json:"pending"`
	Approved int32 `json:"approved"`
	Rejected int32 `json:"rejected"`
}
