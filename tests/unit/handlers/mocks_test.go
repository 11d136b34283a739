package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/service"
)

// MockApprovalService
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) ListEntities(ctx context.Context, kind domain.EntityKind, params service.ListParams) (*service.ListResult, error) {
	args := m.Called(ctx, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}
func (m *MockApprovalService) ApproveEntity(ctx context.Context, kind domain.EntityKind, action service.ApprovalAction) (*domain.ApprovableEntity, error) {
	args := m.Called(ctx, kind, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovableEntity), args.Error(1)
}
func (m *MockApprovalService) RejectEntity(ctx context.Context, kind domain.EntityKind, action service.ApprovalAction) (*domain.ApprovableEntity, error) {
	args := m.Called(ctx, kind, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovableEntity), args.Error(1)
}
func (m *MockApprovalService) PendingCounts(ctx context.Context) (map[domain.EntityKind]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.EntityKind]int32), args.Error(1)
}
func (m *MockApprovalService) ListAuditLog(ctx context.Context, page, pageSize int32) ([]domain.AuditLogEntry, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.AuditLogEntry), args.Get(1).(int32), args.Error(2)
}
