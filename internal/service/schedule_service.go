package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/model"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
)

// bulkApprovalWindow bounds how far apart two approvals can land and still be
// treated as one bulk action for notification purposes.
const bulkApprovalWindow = 10 * time.Second

// ScheduleService implements the schedule lifecycle: draft creation, edits,
// status transitions with their side effects, and bulk operations.
type ScheduleService interface {
	List(ctx context.Context, semesterID int64) ([]dto.ScheduleResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.ScheduleResponse, error)
	Get(ctx context.Context, id int64) (*dto.ScheduleResponse, error)
	Create(ctx context.Context, req *dto.CreateScheduleRequest, actorID, clientIP string) (*dto.CreateScheduleResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateScheduleRequest, actorID, clientIP string) (*dto.ScheduleResponse, error)
	SetStatus(ctx context.Context, id int64, status, actorID, clientIP string) (*dto.StatusChangeResponse, error)
	BulkSetStatus(ctx context.Context, req *dto.BulkStatusUpdateRequest, actorID, clientIP string) (*dto.BulkStatusChangeResponse, error)
	Delete(ctx context.Context, id int64, actorID, clientIP string) error
	DeleteAll(ctx context.Context, actorID, clientIP string) (*dto.DeleteAllResponse, error)
	CheckCourseUsage(ctx context.Context, courseCode string, semesterID int64, section string, excludeID int64) (*dto.CourseUsageResponse, error)
	UsedCourses(ctx context.Context, semesterID int64, section string, excludeID int64) (*dto.UsedCoursesResponse, error)
}

type scheduleService struct {
	repo      *repository.Repository
	semesters SemesterService
	settings  SystemSettingService
	notifier  NotificationService
	logger    *zap.Logger
}

// NewScheduleService creates the schedule service.
func NewScheduleService(repo *repository.Repository, semesters SemesterService, settings SystemSettingService, notifier NotificationService, logger *zap.Logger) ScheduleService {
	return &scheduleService{
		repo:      repo,
		semesters: semesters,
		settings:  settings,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *scheduleService) List(ctx context.Context, semesterID int64) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.Schedule.List(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	return toScheduleResponses(schedules), nil
}

func (s *scheduleService) ListByStatus(ctx context.Context, status string) ([]dto.ScheduleResponse, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	schedules, err := s.repo.Schedule.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toScheduleResponses(schedules), nil
}

func (s *scheduleService) Get(ctx context.Context, id int64) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	resp := toScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest, actorID, clientIP string) (*dto.CreateScheduleResponse, error) {
	if !model.ValidClassType(req.ClassType) {
		return nil, ErrInvalidClassType
	}
	if err := ValidateTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	m, err := newMeeting(req.Day, req.SecondDay, req.StartTime, req.EndTime, 0)
	if err != nil {
		return nil, err
	}

	createdBy := actorID
	if createdBy == "" && req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	schedule := &model.Schedule{
		SemesterID:     req.SemesterID,
		Section:        req.Section,
		CourseCode:     req.CourseCode,
		CourseName:     req.CourseName,
		Day:            req.Day,
		SecondDay:      req.SecondDay,
		LabRoomID:      req.LabRoomID,
		InstructorName: req.InstructorName,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ScheduleTypes:  model.StringList(req.ScheduleTypes),
		ClassType:      req.ClassType,
		Status:         model.StatusDraft,
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if _, err := txRepo.Semester.GetByID(ctx, req.SemesterID); err != nil {
			if isNotFound(err) {
				return ErrSemesterNotFound
			}
			return err
		}
		if _, err := txRepo.LabRoom.GetByID(ctx, req.LabRoomID); err != nil {
			if isNotFound(err) {
				return ErrLabRoomNotFound
			}
			return err
		}
		schedule.CreatedBy = s.resolveActor(ctx, txRepo, createdBy)

		existing, err := txRepo.Schedule.ListBySemesterRoom(ctx, req.SemesterID, req.LabRoomID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConflictCheck, err)
		}
		conflict, err := findConflict(existing, m)
		if err != nil {
			return err
		}
		if conflict != nil {
			return conflict
		}

		return txRepo.Schedule.Create(ctx, schedule)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("schedule created",
		zap.Int64("id", schedule.ID),
		zap.String("course_code", schedule.CourseCode),
		zap.Int64("lab_room_id", schedule.LabRoomID))
	recordAudit(ctx, s.repo, s.logger, s.resolveActor(ctx, s.repo, actorID), "CREATE_SCHEDULE",
		fmt.Sprintf("Created schedule %s (%s)", schedule.CourseCode, schedule.Section), clientIP)

	return &dto.CreateScheduleResponse{ID: schedule.ID, Message: "Schedule created successfully"}, nil
}

func (s *scheduleService) Update(ctx context.Context, id int64, req *dto.UpdateScheduleRequest, actorID, clientIP string) (*dto.ScheduleResponse, error) {
	if !model.ValidClassType(req.ClassType) {
		return nil, ErrInvalidClassType
	}
	if err := ValidateTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	m, err := newMeeting(req.Day, req.SecondDay, req.StartTime, req.EndTime, id)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		current, err := txRepo.Schedule.GetByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrScheduleNotFound
			}
			return err
		}
		if _, err := txRepo.Semester.GetByID(ctx, req.SemesterID); err != nil {
			if isNotFound(err) {
				return ErrSemesterNotFound
			}
			return err
		}
		if _, err := txRepo.LabRoom.GetByID(ctx, req.LabRoomID); err != nil {
			if isNotFound(err) {
				return ErrLabRoomNotFound
			}
			return err
		}

		existing, err := txRepo.Schedule.ListBySemesterRoom(ctx, req.SemesterID, req.LabRoomID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConflictCheck, err)
		}
		conflict, err := findConflict(existing, m)
		if err != nil {
			return err
		}
		if conflict != nil {
			return conflict
		}

		current.SemesterID = req.SemesterID
		current.Section = req.Section
		current.CourseCode = req.CourseCode
		current.CourseName = req.CourseName
		current.Day = req.Day
		current.SecondDay = req.SecondDay
		current.LabRoomID = req.LabRoomID
		current.InstructorName = req.InstructorName
		current.StartTime = req.StartTime
		current.EndTime = req.EndTime
		current.ScheduleTypes = model.StringList(req.ScheduleTypes)
		current.ClassType = req.ClassType

		return txRepo.Schedule.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.repo, s.logger, s.resolveActor(ctx, s.repo, actorID), "UPDATE_SCHEDULE",
		fmt.Sprintf("Updated schedule %d (%s %s)", id, req.CourseCode, req.Section), clientIP)

	return s.Get(ctx, id)
}

func (s *scheduleService) SetStatus(ctx context.Context, id int64, status, actorID, clientIP string) (*dto.StatusChangeResponse, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	previous := schedule.Status

	rows, err := s.repo.Schedule.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrScheduleNotFound
	}

	s.logger.Info("schedule status changed",
		zap.Int64("id", id),
		zap.String("from", previous),
		zap.String("to", status))

	s.runStatusSideEffects(ctx, schedule, status, actorID, clientIP)

	recordAudit(ctx, s.repo, s.logger, s.resolveActor(ctx, s.repo, actorID), "UPDATE_SCHEDULE_STATUS",
		fmt.Sprintf("Changed schedule %d status from %s to %s", id, previous, status), clientIP)

	return &dto.StatusChangeResponse{
		ScheduleID:     id,
		PreviousStatus: previous,
		NewStatus:      status,
	}, nil
}

// runStatusSideEffects fires the notifications, display-semester promotion,
// and term roller a single status change implies. All of it is best-effort:
// the status row is already committed and stays committed.
func (s *scheduleService) runStatusSideEffects(ctx context.Context, schedule *model.Schedule, status, actorID, clientIP string) {
	creator := schedule.CreatedBy
	if creator == nil {
		creator = strptr(actorID)
	}

	switch status {
	case model.StatusPending:
		pendingCount, err := s.repo.Schedule.CountByStatus(ctx, schedule.SemesterID, model.StatusPending)
		if err != nil {
			s.logger.Warn("pending count failed", zap.Error(err))
			pendingCount = 1
		}
		if _, err := s.notifier.SchedulePending(ctx, schedule.SemesterID, creator, pendingCount); err != nil {
			s.logger.Warn("pending notification failed", zap.Error(err))
		}

	case model.StatusApproved:
		wasCurrent, err := s.settings.PromoteDisplaySemester(ctx, schedule.SemesterID)
		if err != nil {
			s.logger.Warn("display semester promotion failed", zap.Error(err))
		}

		semesterName := ""
		if schedule.Semester != nil {
			semesterName = schedule.Semester.Name
		} else if sem, err := s.repo.Semester.GetByID(ctx, schedule.SemesterID); err == nil {
			semesterName = sem.Name
		}
		if strings.Contains(semesterName, "Summer") {
			if err := s.semesters.RollForward(ctx, schedule.SemesterID, strptr(actorID), clientIP); err != nil {
				s.logger.Warn("academic term roll forward failed", zap.Error(err))
			}
		}

		recent, err := s.repo.Schedule.CountRecentlyApproved(ctx, schedule.SemesterID, schedule.ID, bulkApprovalWindow)
		if err != nil {
			s.logger.Warn("bulk approval detection failed", zap.Error(err))
			recent = 0
		}

		scheduleID := schedule.ID
		if _, err := s.notifier.ScheduleApproved(ctx, schedule.SemesterID, creator, &scheduleID, wasCurrent, recent > 0); err != nil {
			s.logger.Warn("approval notification failed", zap.Error(err))
		}
	}
}

func (s *scheduleService) BulkSetStatus(ctx context.Context, req *dto.BulkStatusUpdateRequest, actorID, clientIP string) (*dto.BulkStatusChangeResponse, error) {
	if !model.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	semesterID := int64(0)
	if req.SemesterID != nil {
		semesterID = *req.SemesterID
	}

	var updated int64
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		for _, id := range req.ScheduleIDs {
			if semesterID == 0 {
				sched, err := txRepo.Schedule.GetByID(ctx, id)
				if err != nil {
					if isNotFound(err) {
						continue
					}
					return err
				}
				semesterID = sched.SemesterID
			}
			rows, err := txRepo.Schedule.UpdateStatus(ctx, id, req.Status)
			if err != nil {
				return err
			}
			updated += rows
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("bulk schedule status changed",
		zap.Int64("updated", updated),
		zap.String("status", req.Status),
		zap.Int64("semester_id", semesterID))

	if updated > 0 && semesterID > 0 {
		actor := strptr(actorID)
		switch req.Status {
		case model.StatusPending:
			if _, err := s.notifier.SchedulePending(ctx, semesterID, actor, updated); err != nil {
				s.logger.Warn("pending notification failed", zap.Error(err))
			}
		case model.StatusApproved:
			wasCurrent, err := s.settings.PromoteDisplaySemester(ctx, semesterID)
			if err != nil {
				s.logger.Warn("display semester promotion failed", zap.Error(err))
			}
			if _, err := s.notifier.ScheduleApproved(ctx, semesterID, actor, nil, wasCurrent, true); err != nil {
				s.logger.Warn("approval notification failed", zap.Error(err))
			}
		}
	}

	recordAudit(ctx, s.repo, s.logger, s.resolveActor(ctx, s.repo, actorID), "BULK_UPDATE_SCHEDULE_STATUS",
		fmt.Sprintf("Changed %d schedules to status %s", updated, req.Status), clientIP)

	return &dto.BulkStatusChangeResponse{
		UpdatedCount: updated,
		Status:       req.Status,
		SemesterID:   semesterID,
	}, nil
}

func (s *scheduleService) Delete(ctx context.Context, id int64, actorID, clientIP string) error {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrScheduleNotFound
		}
		return err
	}

	rows, err := s.repo.Schedule.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrScheduleNotFound
	}

	recordAudit(ctx, s.repo, s.logger, s.resolveActor(ctx, s.repo, actorID), "DELETE_SCHEDULE",
		fmt.Sprintf("Deleted schedule %s (%s)", schedule.CourseCode, schedule.Section), clientIP)
	return nil
}

func (s *scheduleService) DeleteAll(ctx context.Context, actorID, clientIP string) (*dto.DeleteAllResponse, error) {
	total, err := s.repo.Schedule.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &dto.DeleteAllResponse{DeletedCount: 0, Message: "No schedules to delete"}, nil
	}

	deleted, err := s.repo.Schedule.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("all schedules deleted", zap.Int64("count", deleted))
	recordAudit(ctx, s.repo, s.logger, s.resolveActor(ctx, s.repo, actorID), "DELETE_ALL_SCHEDULES",
		fmt.Sprintf("Deleted all schedules (%d total)", deleted), clientIP)

	return &dto.DeleteAllResponse{
		DeletedCount: deleted,
		Message:      fmt.Sprintf("Successfully deleted %d schedules", deleted),
	}, nil
}

func (s *scheduleService) CheckCourseUsage(ctx context.Context, courseCode string, semesterID int64, section string, excludeID int64) (*dto.CourseUsageResponse, error) {
	count, err := s.repo.Schedule.CountCourseUsage(ctx, courseCode, semesterID, section, excludeID)
	if err != nil {
		return nil, err
	}
	return &dto.CourseUsageResponse{IsUsed: count > 0}, nil
}

func (s *scheduleService) UsedCourses(ctx context.Context, semesterID int64, section string, excludeID int64) (*dto.UsedCoursesResponse, error) {
	schedules, err := s.repo.Schedule.ListUsedCourses(ctx, semesterID, section, excludeID)
	if err != nil {
		return nil, err
	}

	resp := &dto.UsedCoursesResponse{UsedCourses: make([]dto.UsedCourse, 0, len(schedules))}
	for i := range schedules {
		resp.UsedCourses = append(resp.UsedCourses, dto.UsedCourse{
			CourseCode: schedules[i].CourseCode,
			ScheduleID: schedules[i].ID,
			Section:    schedules[i].Section,
		})
	}

	if excludeID > 0 {
		edited, err := s.repo.Schedule.GetByID(ctx, excludeID)
		if err == nil {
			resp.EditedSchedule = &dto.EditedSchedule{
				CourseCode:    edited.CourseCode,
				ScheduleID:    edited.ID,
				Section:       edited.Section,
				IsBeingEdited: true,
			}
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	return resp, nil
}

// resolveActor returns actorID only when it names an existing user, keeping
// the audit_log.user_id reference valid.
func (s *scheduleService) resolveActor(ctx context.Context, repo *repository.Repository, actorID string) *string {
	if actorID == "" {
		return nil
	}
	if _, err := repo.User.GetByID(ctx, actorID); err != nil {
		return nil
	}
	return &actorID
}

func toScheduleResponse(schedule *model.Schedule) dto.ScheduleResponse {
	resp := dto.ScheduleResponse{
		ID:             schedule.ID,
		SemesterID:     schedule.SemesterID,
		Section:        schedule.Section,
		CourseCode:     schedule.CourseCode,
		CourseName:     schedule.CourseName,
		Day:            schedule.Day,
		SecondDay:      schedule.SecondDay,
		LabRoomID:      schedule.LabRoomID,
		InstructorName: schedule.InstructorName,
		StartTime:      schedule.StartTime,
		EndTime:        schedule.EndTime,
		ScheduleTypes:  schedule.ScheduleTypes,
		ClassType:      schedule.ClassType,
		Status:         schedule.Status,
		CreatedBy:      schedule.CreatedBy,
		CreatedAt:      schedule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      schedule.UpdatedAt.Format(time.RFC3339),
	}
	if schedule.Semester != nil {
		resp.SemesterName = schedule.Semester.Name
	}
	if schedule.LabRoom != nil {
		resp.LabRoomName = schedule.LabRoom.Name
	}
	return resp
}

func toScheduleResponses(schedules []model.Schedule) []dto.ScheduleResponse {
	out := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		out = append(out, toScheduleResponse(&schedules[i]))
	}
	return out
}
