package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/repository"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLogEntry) error {
	before, err := json.Marshal(entry.Before)
	if err != nil {
		return err
	}
	after, err := json.Marshal(entry.After)
	if err != nil {
		return err
	}
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedOn.IsZero() {
		entry.CreatedOn = time.Now()
	}

	query := `INSERT INTO audit_log (id, actor_id, action, entity_kind, entity_id, before_state, after_state, changed_fields, details, ip_address, user_agent, success, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	logger.DatabaseCall("INSERT", "audit_log", "action", entry.Action, "entityID", entry.EntityID)

	_, err = r.db.ExecContext(ctx, query,
		entry.ID, entry.ActorID, entry.Action, entry.EntityKind, entry.EntityID,
		before, after, pq.Array(entry.ChangedFields), details,
		entry.IPAddress, entry.UserAgent, entry.Success, entry.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "auditID", entry.ID)
	return err
}

func (r *auditLogRepository) List(ctx context.Context, page, pageSize int32) ([]domain.AuditLogEntry, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, actor_id, action, entity_kind, entity_id, before_state, after_state, changed_fields, COALESCE(details, '{}'), COALESCE(ip_address, ''), COALESCE(user_agent, ''), success, created_on
	          FROM audit_log ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AuditLogEntry
	for rows.Next() {
		var (
			entry         domain.AuditLogEntry
			before, after []byte
			details       []byte
		)
		if err := rows.Scan(&entry.ID, &entry.ActorID, &entry.Action, &entry.EntityKind, &entry.EntityID,
			&before, &after, pq.Array(&entry.ChangedFields), &details,
			&entry.IPAddress, &entry.UserAgent, &entry.Success, &entry.CreatedOn); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(before, &entry.Before); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(after, &entry.After); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(details, &entry.Details); err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
