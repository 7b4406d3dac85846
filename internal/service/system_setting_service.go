package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/model"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
	"github.com/JosiephousPierre/SELab-final/pkg/redis"
)

const displayCacheTTL = 5 * time.Minute

const displaySemesterDescription = "ID of the semester whose schedule is shown on all dashboards"

// SystemSettingService manages key/value settings, with the display-semester
// selector layered on top of the current_display_semester_id setting.
type SystemSettingService interface {
	Get(ctx context.Context, key string) (*dto.SystemSettingResponse, error)
	Update(ctx context.Context, key string, req *dto.UpdateSystemSettingRequest, actorID string) (*dto.SystemSettingResponse, error)
	// CurrentDisplaySemester resolves the display semester, repairing a
	// missing or dangling setting from the semesters table.
	CurrentDisplaySemester(ctx context.Context) (*dto.DisplaySemesterResponse, error)
	// PromoteDisplaySemester makes semesterID the display semester and
	// reports whether it already was before the call.
	PromoteDisplaySemester(ctx context.Context, semesterID int64) (bool, error)
}

type systemSettingService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewSystemSettingService creates the settings service. rdb may be nil.
func NewSystemSettingService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) SystemSettingService {
	return &systemSettingService{repo: repo, rdb: rdb, logger: logger}
}

func (s *systemSettingService) Get(ctx context.Context, key string) (*dto.SystemSettingResponse, error) {
	setting, err := s.repo.SystemSetting.Get(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return toSettingResponse(setting), nil
}

func (s *systemSettingService) Update(ctx context.Context, key string, req *dto.UpdateSystemSettingRequest, actorID string) (*dto.SystemSettingResponse, error) {
	setting := &model.SystemSetting{
		Key:         key,
		Value:       req.SettingValue,
		Description: req.Description,
		UpdatedBy:   strptr(actorID),
	}
	if err := s.repo.SystemSetting.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	if key == model.SettingDisplaySemester {
		s.invalidateCache(ctx)
	}

	return toSettingResponse(setting), nil
}

func (s *systemSettingService) CurrentDisplaySemester(ctx context.Context) (*dto.DisplaySemesterResponse, error) {
	if s.rdb != nil {
		if id, err := s.rdb.GetDisplaySemesterID(ctx); err == nil && id > 0 {
			sem, err := s.repo.Semester.GetByID(ctx, id)
			if err == nil {
				return toDisplayResponse(sem), nil
			}
			// dangling cache entry, fall through to the database
		}
	}

	sem, err := s.resolveDisplaySemester(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.SetDisplaySemesterID(ctx, sem.ID, displayCacheTTL); err != nil {
			s.logger.Warn("display semester cache write failed", zap.Error(err))
		}
	}

	return toDisplayResponse(sem), nil
}

// resolveDisplaySemester reads the setting and falls back to the semesters
// table when the setting is missing or points at a deleted row. Any fallback
// is written back so the next read is direct.
func (s *systemSettingService) resolveDisplaySemester(ctx context.Context) (*model.Semester, error) {
	setting, err := s.repo.SystemSetting.Get(ctx, model.SettingDisplaySemester)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	if err == nil {
		if id, perr := strconv.ParseInt(setting.Value, 10, 64); perr == nil {
			sem, gerr := s.repo.Semester.GetByID(ctx, id)
			if gerr == nil {
				return sem, nil
			}
			if !isNotFound(gerr) {
				return nil, gerr
			}
		}
		s.logger.Warn("display semester setting is dangling, repairing",
			zap.String("value", setting.Value))
	}

	sem, err := s.fallbackSemester(ctx)
	if err != nil {
		return nil, err
	}

	desc := displaySemesterDescription
	repaired := &model.SystemSetting{
		Key:         model.SettingDisplaySemester,
		Value:       strconv.FormatInt(sem.ID, 10),
		Description: &desc,
	}
	if err := s.repo.SystemSetting.Upsert(ctx, repaired); err != nil {
		s.logger.Warn("display semester setting repair failed", zap.Error(err))
	}

	return sem, nil
}

// fallbackSemester prefers the lowest-id active semester, then the lowest-id
// semester of any kind.
func (s *systemSettingService) fallbackSemester(ctx context.Context) (*model.Semester, error) {
	sem, err := s.repo.Semester.FirstActive(ctx)
	if err == nil {
		return sem, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	sem, err = s.repo.Semester.First(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNoSemesters
		}
		return nil, err
	}
	return sem, nil
}

func (s *systemSettingService) PromoteDisplaySemester(ctx context.Context, semesterID int64) (bool, error) {
	target := strconv.FormatInt(semesterID, 10)

	setting, err := s.repo.SystemSetting.Get(ctx, model.SettingDisplaySemester)
	if err == nil && setting.Value == target {
		return true, nil
	}
	if err != nil && !isNotFound(err) {
		return false, err
	}

	desc := displaySemesterDescription
	if err := s.repo.SystemSetting.Upsert(ctx, &model.SystemSetting{
		Key:         model.SettingDisplaySemester,
		Value:       target,
		Description: &desc,
	}); err != nil {
		return false, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("display semester promoted", zap.Int64("semester_id", semesterID))
	return false, nil
}

func (s *systemSettingService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.InvalidateDisplaySemester(ctx); err != nil {
		s.logger.Warn("display semester cache invalidation failed", zap.Error(err))
	}
}

func toSettingResponse(setting *model.SystemSetting) *dto.SystemSettingResponse {
	return &dto.SystemSettingResponse{
		SettingKey:   setting.Key,
		SettingValue: setting.Value,
		Description:  setting.Description,
		UpdatedAt:    setting.UpdatedAt.Format(time.RFC3339),
	}
}

func toDisplayResponse(sem *model.Semester) *dto.DisplaySemesterResponse {
	return &dto.DisplaySemesterResponse{
		SemesterID:   sem.ID,
		SemesterName: sem.Name,
		Semester: dto.SemesterResponse{
			ID:        sem.ID,
			Name:      sem.Name,
			IsActive:  sem.IsActive,
			CreatedAt: sem.CreatedAt.Format(time.RFC3339),
		},
	}
}
