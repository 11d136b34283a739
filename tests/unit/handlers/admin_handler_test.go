package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "propertyhub-backend/internal/api/http"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/security"
	"propertyhub-backend/internal/service"
)

const testSecret = "unit-test-secret-0123456789abcdef"

func setupRouter(svc service.ApprovalService) (*mux.Router, security.TokenManager) {
	tokens := security.NewTokenManager(testSecret)
	router := mux.NewRouter()
	httpapi.RegisterAdminRoutes(router, httpapi.NewAdminHandler(svc), httpapi.NewAuthMiddleware(tokens))
	return router, tokens
}

func adminToken(t *testing.T, tokens security.TokenManager) string {
	t.Helper()
	token, err := tokens.GenerateToken("admin-1", "Alice Admin", "alice@test.com", "admin")
	require.NoError(t, err)
	return token
}

func TestAdminHandler_ListEntities(t *testing.T) {
	svc := new(MockApprovalService)
	router, tokens := setupRouter(svc)

	result := &service.ListResult{
		Entities: []domain.ApprovableEntity{{
			ID:             "L1",
			Email:          "jane.doe@test.com",
			FirstName:      "Jane",
			LastName:       "Doe",
			Phone:          "4165550187",
			ApprovalStatus: domain.ApprovalStatusApproved,
			CreatedOn:      time.Now(),
		}},
		Total:      1,
		Counts:     domain.StatusCounts{Pending: 3, Approved: 2, Rejected: 1},
		Page:       1,
		PageSize:   20,
		TotalPages: 1,
	}
	svc.On("ListEntities", mock.Anything, domain.EntityKindLandlord, service.ListParams{
		Status: domain.ApprovalStatusApproved, Page: 1, PageSize: 20,
	}).Return(result, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/landlord?status=APPROVED", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, tokens))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Entities []struct {
			Phone string `json:"phone"`
		} `json:"entities"`
		Counts domain.StatusCounts `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Entities, 1)
	// Phone is formatted at the boundary
	assert.Equal(t, "(416) 555-0187", body.Entities[0].Phone)
	assert.Equal(t, domain.StatusCounts{Pending: 3, Approved: 2, Rejected: 1}, body.Counts)
	svc.AssertExpectations(t)
}

func TestAdminHandler_ApproveEntity(t *testing.T) {
	t.Run("ActorFromToken", func(t *testing.T) {
		svc := new(MockApprovalService)
		router, tokens := setupRouter(svc)

		approved := &domain.ApprovableEntity{ID: "L1", ApprovalStatus: domain.ApprovalStatusApproved}
		svc.On("ApproveEntity", mock.Anything, domain.EntityKindLandlord, mock.MatchedBy(func(a service.ApprovalAction) bool {
			return a.EntityID == "L1" && a.ActorID == "admin-1" && a.ActorName == "Alice Admin" && a.ActorRole == "admin"
		})).Return(approved, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/landlord/L1/approve", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t, tokens))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("AlreadyApprovedConflict", func(t *testing.T) {
		svc := new(MockApprovalService)
		router, tokens := setupRouter(svc)
		svc.On("ApproveEntity", mock.Anything, domain.EntityKindLandlord, mock.Anything).
			Return(nil, domain.ErrAlreadyApproved).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/landlord/L1/approve", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t, tokens))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("UnknownKindNotFound", func(t *testing.T) {
		svc := new(MockApprovalService)
		router, tokens := setupRouter(svc)
		svc.On("ApproveEntity", mock.Anything, domain.EntityKind("vendor"), mock.Anything).
			Return(nil, domain.ErrConfigNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/vendor/V1/approve", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t, tokens))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MissingToken", func(t *testing.T) {
		svc := new(MockApprovalService)
		router, _ := setupRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/landlord/L1/approve", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "ApproveEntity", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdminHandler_RejectEntity(t *testing.T) {
	svc := new(MockApprovalService)
	router, tokens := setupRouter(svc)

	rejected := &domain.ApprovableEntity{ID: "T1", ApprovalStatus: domain.ApprovalStatusRejected}
	svc.On("RejectEntity", mock.Anything, domain.EntityKindTenant, mock.MatchedBy(func(a service.ApprovalAction) bool {
		return a.EntityID == "T1" && a.Reason == "lease ended"
	})).Return(rejected, nil).Once()

	payload, _ := json.Marshal(map[string]string{"reason": "lease ended"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/tenant/T1/reject", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+adminToken(t, tokens))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestAdminHandler_ListAuditLog(t *testing.T) {
	svc := new(MockApprovalService)
	router, tokens := setupRouter(svc)

	entries := []domain.AuditLogEntry{{ID: "A1", Action: "approve_landlord", Success: true}}
	svc.On("ListAuditLog", mock.Anything, int32(1), int32(20)).Return(entries, int32(1), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, tokens))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Entries []domain.AuditLogEntry `json:"entries"`
		Total   int32                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int32(1), body.Total)
	require.Len(t, body.Entries, 1)
	assert.Equal(t, "approve_landlord", body.Entries[0].Action)
	svc.AssertExpectations(t)
}
