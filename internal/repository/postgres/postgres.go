package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"propertyhub-backend/internal/repository"
)

// Store aggregates the per-kind entity stores and the audit trail over one
// database handle.
type Store struct {
	db        *sql.DB
	Landlords repository.EntityStore
	PMCs      repository.EntityStore
	Tenants   repository.EntityStore
	AuditLog  repository.AuditLogRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		Landlords: NewLandlordStore(db),
		PMCs:      NewPMCStore(db),
		Tenants:   NewTenantStore(db),
		AuditLog:  NewAuditLogRepository(db),
	}
}
