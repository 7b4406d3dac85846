package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// ScheduleRepository is the schedules data-access interface.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	GetByID(ctx context.Context, id int64) (*model.Schedule, error)
	List(ctx context.Context, semesterID int64) ([]model.Schedule, error)
	ListByStatus(ctx context.Context, status string) ([]model.Schedule, error)
	// ListBySemesterRoom returns every meeting booked for a room in a
	// semester; the conflict detector works over this set.
	ListBySemesterRoom(ctx context.Context, semesterID, labRoomID int64) ([]model.Schedule, error)
	Update(ctx context.Context, schedule *model.Schedule) error
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	CountByStatus(ctx context.Context, semesterID int64, status string) (int64, error)
	CountApprovedExcept(ctx context.Context, semesterID, exceptID int64) (int64, error)
	// CountRecentlyApproved counts other approved rows in the semester whose
	// updated_at falls inside the window; used for bulk-approval detection.
	CountRecentlyApproved(ctx context.Context, semesterID, exceptID int64, window time.Duration) (int64, error)
	CountCourseUsage(ctx context.Context, courseCode string, semesterID int64, section string, excludeID int64) (int64, error)
	ListUsedCourses(ctx context.Context, semesterID int64, section string, excludeID int64) ([]model.Schedule, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates the gorm-backed ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id int64) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Semester").
		Preload("LabRoom").
		Where("id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) List(ctx context.Context, semesterID int64) ([]model.Schedule, error) {
	var schedules []model.Schedule
	q := r.db.WithContext(ctx).
		Preload("Semester").
		Preload("LabRoom")
	if semesterID > 0 {
		q = q.Where("semester_id = ?", semesterID)
	}
	err := q.Order("day, start_time").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) ListByStatus(ctx context.Context, status string) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Semester").
		Preload("LabRoom").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) ListBySemesterRoom(ctx context.Context, semesterID, labRoomID int64) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Preload("LabRoom").
		Where("semester_id = ? AND lab_room_id = ?", semesterID, labRoomID).
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("id = ?", schedule.ID).
		Updates(map[string]interface{}{
			"semester_id":     schedule.SemesterID,
			"section":         schedule.Section,
			"course_code":     schedule.CourseCode,
			"course_name":     schedule.CourseName,
			"day":             schedule.Day,
			"second_day":      schedule.SecondDay,
			"lab_room_id":     schedule.LabRoomID,
			"instructor_name": schedule.InstructorName,
			"start_time":      schedule.StartTime,
			"end_time":        schedule.EndTime,
			"schedule_types":  schedule.ScheduleTypes,
			"class_type":      schedule.ClassType,
			"updated_at":      time.Now(),
		}).Error
}

func (r *scheduleRepo) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *scheduleRepo) CountByStatus(ctx context.Context, semesterID int64, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("semester_id = ? AND status = ?", semesterID, status).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepo) CountApprovedExcept(ctx context.Context, semesterID, exceptID int64) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("semester_id = ? AND status = ?", semesterID, model.StatusApproved)
	if exceptID > 0 {
		q = q.Where("id != ?", exceptID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *scheduleRepo) CountRecentlyApproved(ctx context.Context, semesterID, exceptID int64, window time.Duration) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("semester_id = ? AND status = ? AND id != ? AND updated_at > ?",
			semesterID, model.StatusApproved, exceptID, time.Now().Add(-window)).
		Count(&count).Error
	return count, err
}

func (r *scheduleRepo) CountCourseUsage(ctx context.Context, courseCode string, semesterID int64, section string, excludeID int64) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("course_code = ? AND semester_id = ? AND section = ?", courseCode, semesterID, section)
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *scheduleRepo) ListUsedCourses(ctx context.Context, semesterID int64, section string, excludeID int64) ([]model.Schedule, error) {
	var schedules []model.Schedule
	q := r.db.WithContext(ctx).
		Where("semester_id = ?", semesterID)
	if section != "" {
		q = q.Where("section = ?", section)
	}
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Schedule{})
	return result.RowsAffected, result.Error
}

func (r *scheduleRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.Schedule{})
	return result.RowsAffected, result.Error
}

func (r *scheduleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Schedule{}).Count(&count).Error
	return count, err
}
