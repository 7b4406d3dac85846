package service

import (
	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/config"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
	"github.com/JosiephousPierre/SELab-final/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Schedule      ScheduleService
	Semester      SemesterService
	LabRoom       LabRoomService
	SystemSetting SystemSettingService
	Notification  NotificationService
	Export        ExportService
}

// NewService wires the service layer. rdb may be nil when Redis is
// unavailable; the services degrade to database-only.
func NewService(cfg *config.Config, repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) *Service {
	notifier := NewNotificationService(repo, logger)
	settings := NewSystemSettingService(repo, rdb, logger)
	semesters := NewSemesterService(repo, logger)

	return &Service{
		Schedule:      NewScheduleService(repo, semesters, settings, notifier, logger),
		Semester:      semesters,
		LabRoom:       NewLabRoomService(repo, logger),
		SystemSetting: settings,
		Notification:  notifier,
		Export:        NewExportService(repo, logger),
	}
}
