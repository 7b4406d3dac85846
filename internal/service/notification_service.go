package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/internal/model"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
)

// Notification dedup windows. Posted announcements repeat at most every ten
// minutes; per-course update/approve messages at most every two.
const (
	postedDedupWindow  = 10 * time.Minute
	updatedDedupWindow = 2 * time.Minute
	pendingDedupWindow = 5 * time.Minute
)

// NotificationService composes the schedule lifecycle notifications. Every
// method is best-effort from the caller's point of view: a composer failure
// never rolls back the status change that triggered it.
type NotificationService interface {
	// SchedulePending alerts the Dean that schedules await approval. Returns
	// the notification id, or 0 when the message was suppressed.
	SchedulePending(ctx context.Context, semesterID int64, createdBy *string, scheduleCount int64) (int64, error)
	// ScheduleApproved announces an approval to all users, choosing exactly
	// one wording based on semester state. scheduleID carries the specific
	// course when a single row was approved; nil for bulk batches.
	// wasAlreadyCurrent is the display-semester state captured before any
	// promotion ran. Returns the notification id, or 0 when suppressed.
	ScheduleApproved(ctx context.Context, semesterID int64, createdBy *string, scheduleID *int64, wasAlreadyCurrent, isBulk bool) (int64, error)
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService creates the notification composer.
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) SchedulePending(ctx context.Context, semesterID int64, createdBy *string, scheduleCount int64) (int64, error) {
	sem, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("pending notification skipped: semester not found", zap.Int64("semester_id", semesterID))
			return 0, nil
		}
		return 0, err
	}

	dean, err := s.repo.User.FirstByRole(ctx, "Dean")
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("pending notification skipped: no Dean user")
			return 0, nil
		}
		return 0, err
	}

	plural := "s"
	if scheduleCount == 1 {
		plural = ""
	}
	title := "Schedules Pending Approval"
	message := fmt.Sprintf("%d schedule%s for %s pending approval", scheduleCount, plural, sem.Name)

	existing, err := s.repo.Notification.FindRecentRelated(ctx, title, "schedule", semesterID, pendingDedupWindow)
	if err == nil {
		return existing.ID, nil
	}
	if !isNotFound(err) {
		return 0, err
	}

	n := &model.Notification{
		Title:     title,
		Message:   message,
		Type:      "alert",
		RelatedTo: strptr("schedule"),
		RelatedID: &semesterID,
		IsGlobal:  false,
		CreatedBy: s.resolveCreator(ctx, createdBy),
	}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		return 0, err
	}
	if err := s.repo.Notification.CreateUserNotification(ctx, &model.UserNotification{
		NotificationID: n.ID,
		UserID:         dean.ID,
	}); err != nil {
		return 0, err
	}

	s.logger.Info("pending approval notification created",
		zap.Int64("notification_id", n.ID),
		zap.Int64("semester_id", semesterID),
		zap.Int64("schedule_count", scheduleCount))
	return n.ID, nil
}

func (s *notificationService) ScheduleApproved(ctx context.Context, semesterID int64, createdBy *string, scheduleID *int64, wasAlreadyCurrent, isBulk bool) (int64, error) {
	sem, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("approval notification skipped: semester not found", zap.Int64("semester_id", semesterID))
			return 0, nil
		}
		return 0, err
	}

	var courseCode, section string
	if scheduleID != nil {
		sched, err := s.repo.Schedule.GetByID(ctx, *scheduleID)
		if err != nil && !isNotFound(err) {
			return 0, err
		}
		if sched != nil {
			courseCode = sched.CourseCode
			section = sched.Section
		}
	}

	exceptID := int64(0)
	if scheduleID != nil {
		exceptID = *scheduleID
	}
	approvedCount, err := s.repo.Schedule.CountApprovedExcept(ctx, semesterID, exceptID)
	if err != nil {
		return 0, err
	}

	var title, message string
	window := updatedDedupWindow

	switch {
	case isBulk && !wasAlreadyCurrent:
		title = "Schedule Posted"
		message = fmt.Sprintf("The schedule for %s is posted", sem.Name)
		window = postedDedupWindow
	case approvedCount == 0:
		title = "Schedule Posted"
		message = fmt.Sprintf("The schedule for %s is posted", sem.Name)
		window = postedDedupWindow
	case wasAlreadyCurrent && courseCode != "" && section != "":
		title = "Schedule Updated"
		message = fmt.Sprintf("The schedule for %s of %s in %s has been updated", courseCode, section, sem.Name)
	case courseCode != "" && section != "" && !wasAlreadyCurrent:
		title = "Schedule Approved"
		message = fmt.Sprintf("The schedule for %s of %s in %s has been approved", courseCode, section, sem.Name)
	default:
		s.logger.Debug("approval notification suppressed",
			zap.Int64("semester_id", semesterID),
			zap.Int64("approved_count", approvedCount),
			zap.Bool("is_bulk", isBulk))
		return 0, nil
	}

	existing, err := s.repo.Notification.FindRecentByMessage(ctx, title, message, window)
	if err == nil {
		return existing.ID, nil
	}
	if !isNotFound(err) {
		return 0, err
	}

	n := &model.Notification{
		Title:     title,
		Message:   message,
		Type:      "success",
		RelatedTo: strptr("schedule"),
		RelatedID: &semesterID,
		IsGlobal:  true,
		CreatedBy: s.resolveCreator(ctx, createdBy),
	}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		return 0, err
	}

	s.logger.Info("approval notification created",
		zap.Int64("notification_id", n.ID),
		zap.String("title", title),
		zap.Int64("semester_id", semesterID))
	return n.ID, nil
}

// resolveCreator returns createdBy only when it names an existing user, so the
// notifications.created_by foreign key never breaks an insert.
func (s *notificationService) resolveCreator(ctx context.Context, createdBy *string) *string {
	if createdBy == nil || *createdBy == "" {
		return nil
	}
	if _, err := s.repo.User.GetByID(ctx, *createdBy); err != nil {
		return nil
	}
	return createdBy
}
