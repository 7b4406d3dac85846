package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// AuditLogRepository is the append-only audit_log data-access interface.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
}

type auditLogRepo struct {
	db *gorm.DB
}

// NewAuditLogRepo creates the gorm-backed AuditLogRepository.
func NewAuditLogRepo(db *gorm.DB) AuditLogRepository {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
