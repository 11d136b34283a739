package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/service"
	"propertyhub-backend/internal/utils"
)

// AdminHandler exposes the approval workflow over REST.
type AdminHandler struct {
	approvalSvc service.ApprovalService
}

func NewAdminHandler(approvalSvc service.ApprovalService) *AdminHandler {
	return &AdminHandler{approvalSvc: approvalSvc}
}

// RegisterAdminRoutes mounts the approval endpoints behind the auth middleware.
func RegisterAdminRoutes(router *mux.Router, handler *AdminHandler, auth *AuthMiddleware) {
	admin := router.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(auth.Handler)
	admin.HandleFunc("/audit", handler.ListAuditLog).Methods("GET")
	admin.HandleFunc("/{kind}", handler.ListEntities).Methods("GET")
	admin.HandleFunc("/{kind}/{id}/approve", handler.ApproveEntity).Methods("POST")
	admin.HandleFunc("/{kind}/{id}/reject", handler.RejectEntity).Methods("POST")
}

// entityResponse is the wire shape of an entity. Phone is formatted for
// display here; the stored value is untouched.
type entityResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Phone           string     `json:"phone"`
	City            string     `json:"city"`
	Province        string     `json:"province"`
	ApprovalStatus  string     `json:"approval_status"`
	ApprovedBy      *string    `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectedBy      *string    `json:"rejected_by"`
	RejectedAt      *time.Time `json:"rejected_at"`
	RejectionReason *string    `json:"rejection_reason"`
	HasAccess       *bool      `json:"has_access,omitempty"`
	CreatedOn       time.Time  `json:"created_on"`
}

func toEntityResponse(e *domain.ApprovableEntity) entityResponse {
	return entityResponse{
		ID:              e.ID,
		Email:           e.Email,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Phone:           utils.FormatPhone(e.Phone),
		City:            e.City,
		Province:        e.Province,
		ApprovalStatus:  string(e.ApprovalStatus),
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		RejectedBy:      e.RejectedBy,
		RejectedAt:      e.RejectedAt,
		RejectionReason: e.RejectionReason,
		HasAccess:       e.HasAccess,
		CreatedOn:       e.CreatedOn,
	}
}

type listResponse struct {
	Entities   []entityResponse    `json:"entities"`
	Total      int32               `json:"total"`
	Counts     domain.StatusCounts `json:"counts"`
	Page       int32               `json:"page"`
	PageSize   int32               `json:"page_size"`
	TotalPages int32               `json:"total_pages"`
}

func (h *AdminHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	kind := domain.EntityKind(mux.Vars(r)["kind"])

	params := service.ListParams{
		Status:   domain.ApprovalStatus(r.URL.Query().Get("status")),
		Search:   r.URL.Query().Get("search"),
		Page:     queryInt32(r, "page", 1),
		PageSize: queryInt32(r, "limit", 20),
	}

	result, err := h.approvalSvc.ListEntities(r.Context(), kind, params)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := listResponse{
		Entities:   make([]entityResponse, 0, len(result.Entities)),
		Total:      result.Total,
		Counts:     result.Counts,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
	for i := range result.Entities {
		resp.Entities = append(resp.Entities, toEntityResponse(&result.Entities[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) ApproveEntity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	action := service.ApprovalAction{
		EntityID:  vars["id"],
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ActorRole: actor.Role,
		Meta:      RequestMetaFrom(r),
	}
	entity, err := h.approvalSvc.ApproveEntity(r.Context(), domain.EntityKind(vars["kind"]), action)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(entity))
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) RejectEntity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var body rejectRequest
	if r.Body != nil {
		// Reason is optional; an empty or absent body is fine
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	action := service.ApprovalAction{
		EntityID:  vars["id"],
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ActorRole: actor.Role,
		Reason:    body.Reason,
		Meta:      RequestMetaFrom(r),
	}
	entity, err := h.approvalSvc.RejectEntity(r.Context(), domain.EntityKind(vars["kind"]), action)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(entity))
}

type auditListResponse struct {
	Entries []domain.AuditLogEntry `json:"entries"`
	Total   int32                  `json:"total"`
}

func (h *AdminHandler) ListAuditLog(w http.ResponseWriter, r *http.Request) {
	entries, total, err := h.approvalSvc.ListAuditLog(r.Context(), queryInt32(r, "page", 1), queryInt32(r, "limit", 20))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, auditListResponse{Entries: entries, Total: total})
}

// writeServiceError maps domain errors to status codes. Refused transitions
// surface their reason; infrastructure failures stay generic.
func (h *AdminHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrConfigNotFound), errors.Is(err, domain.ErrEntityNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyApproved), errors.Is(err, domain.ErrAlreadyRejected):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "Admin request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
