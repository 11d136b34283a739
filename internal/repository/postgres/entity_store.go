package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository"
)

// entityStore implements repository.EntityStore over a single table. The
// tenant table additionally carries has_access and landlord_id columns; the
// landlord and PMC tables do not have them at all.
type entityStore struct {
	db        *sql.DB
	table     string
	hasAccess bool
}

func NewLandlordStore(db *sql.DB) repository.EntityStore {
	return &entityStore{db: db, table: "landlords"}
}

func NewPMCStore(db *sql.DB) repository.EntityStore {
	return &entityStore{db: db, table: "property_management_companies"}
}

func NewTenantStore(db *sql.DB) repository.EntityStore {
	return &entityStore{db: db, table: "tenants", hasAccess: true}
}

func (s *entityStore) selectColumns() string {
	cols := `id, email, first_name, last_name, COALESCE(phone, ''), COALESCE(city, ''), COALESCE(province, ''),
	         approval_status, approved_by, approved_at, rejected_by, rejected_at, rejection_reason, created_on`
	if s.hasAccess {
		cols += ", has_access, landlord_id"
	}
	return cols
}

func (s *entityStore) scanEntity(row interface{ Scan(...any) error }) (*domain.ApprovableEntity, error) {
	e := &domain.ApprovableEntity{}
	dest := []any{
		&e.ID, &e.Email, &e.FirstName, &e.LastName, &e.Phone, &e.City, &e.Province,
		&e.ApprovalStatus, &e.ApprovedBy, &e.ApprovedAt, &e.RejectedBy, &e.RejectedAt, &e.RejectionReason, &e.CreatedOn,
	}
	if s.hasAccess {
		dest = append(dest, &e.HasAccess, &e.LandlordID)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *entityStore) GetByID(ctx context.Context, id string) (*domain.ApprovableEntity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.selectColumns(), s.table)
	e, err := s.scanEntity(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *entityStore) UpdateApproval(ctx context.Context, e *domain.ApprovableEntity) error {
	query := fmt.Sprintf(`UPDATE %s SET approval_status = $1, approved_by = $2, approved_at = $3,
	          rejected_by = $4, rejected_at = $5, rejection_reason = $6 WHERE id = $7`, s.table)
	args := []any{e.ApprovalStatus, e.ApprovedBy, e.ApprovedAt, e.RejectedBy, e.RejectedAt, e.RejectionReason, e.ID}
	if s.hasAccess {
		query = fmt.Sprintf(`UPDATE %s SET approval_status = $1, approved_by = $2, approved_at = $3,
	          rejected_by = $4, rejected_at = $5, rejection_reason = $6, has_access = $7 WHERE id = $8`, s.table)
		args = []any{e.ApprovalStatus, e.ApprovedBy, e.ApprovedAt, e.RejectedBy, e.RejectedAt, e.RejectionReason, e.HasAccess, e.ID}
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}

func (s *entityStore) List(ctx context.Context, filter repository.ListFilter, page, pageSize int32) ([]domain.ApprovableEntity, int32, error) {
	where := "WHERE approval_status = $1"
	args := []any{filter.Status}
	if filter.Search != "" {
		where += " AND (email ILIKE $2 OR first_name ILIKE $2 OR last_name ILIKE $2)"
		args = append(args, "%"+filter.Search+"%")
	}

	var total int32
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, s.table, where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		s.selectColumns(), s.table, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entities []domain.ApprovableEntity
	for rows.Next() {
		e, err := s.scanEntity(rows)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (s *entityStore) CountByStatus(ctx context.Context) (*domain.StatusCounts, error) {
	counts := &domain.StatusCounts{}
	query := fmt.Sprintf(`SELECT
	          COUNT(*) FILTER (WHERE approval_status = 'PENDING'),
	          COUNT(*) FILTER (WHERE approval_status = 'APPROVED'),
	          COUNT(*) FILTER (WHERE approval_status = 'REJECTED')
	          FROM %s`, s.table)
	err := s.db.QueryRowContext(ctx, query).Scan(&counts.Pending, &counts.Approved, &counts.Rejected)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
