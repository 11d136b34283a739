package unit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository"
)

// MockEntityStore
type MockEntityStore struct {
	mock.Mock
}

func (m *MockEntityStore) GetByID(ctx context.Context, id string) (*domain.ApprovableEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovableEntity), args.Error(1)
}
func (m *MockEntityStore) UpdateApproval(ctx context.Context, e *domain.ApprovableEntity) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEntityStore) List(ctx context.Context, filter repository.ListFilter, page, pageSize int32) ([]domain.ApprovableEntity, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.ApprovableEntity), args.Get(1).(int32), args.Error(2)
}
func (m *MockEntityStore) CountByStatus(ctx context.Context) (*domain.StatusCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCounts), args.Error(1)
}

// MockAuditLogRepo
type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) Create(ctx context.Context, entry *domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditLogRepo) List(ctx context.Context, page, pageSize int32) ([]domain.AuditLogEntry, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.AuditLogEntry), args.Get(1).(int32), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLandlordApproval(ctx context.Context, email, name, adminName string) error {
	args := m.Called(ctx, email, name, adminName)
	return args.Error(0)
}
func (m *MockEmailService) SendLandlordRejection(ctx context.Context, email, name, adminName, reason string) error {
	args := m.Called(ctx, email, name, adminName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPMCApproval(ctx context.Context, email, name, adminName string) error {
	args := m.Called(ctx, email, name, adminName)
	return args.Error(0)
}
func (m *MockEmailService) SendPMCRejection(ctx context.Context, email, name, adminName, reason string) error {
	args := m.Called(ctx, email, name, adminName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendTenantApproval(ctx context.Context, email, name, landlordName string) error {
	args := m.Called(ctx, email, name, landlordName)
	return args.Error(0)
}
func (m *MockEmailService) SendTenantRejection(ctx context.Context, email, name, landlordName, reason string) error {
	args := m.Called(ctx, email, name, landlordName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingApprovalsReminder(ctx context.Context, opsEmail string, pending map[domain.EntityKind]int32) error {
	args := m.Called(ctx, opsEmail, pending)
	return args.Error(0)
}
