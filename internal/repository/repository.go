package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every data-access interface.
type Repository struct {
	Schedule      ScheduleRepository
	Semester      SemesterRepository
	LabRoom       LabRoomRepository
	SystemSetting SystemSettingRepository
	Notification  NotificationRepository
	AuditLog      AuditLogRepository
	User          UserRepository

	db *gorm.DB
}

// NewRepository builds the aggregate over one gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Schedule:      NewScheduleRepo(db),
		Semester:      NewSemesterRepo(db),
		LabRoom:       NewLabRoomRepo(db),
		SystemSetting: NewSystemSettingRepo(db),
		Notification:  NewNotificationRepo(db),
		AuditLog:      NewAuditLogRepo(db),
		User:          NewUserRepo(db),
		db:            db,
	}
}

// Transaction runs fn inside one database transaction; the callback receives
// a Repository bound to that transaction. A Repository assembled without a
// gorm handle (in-memory test doubles) runs fn against itself directly.
func (r *Repository) Transaction(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
