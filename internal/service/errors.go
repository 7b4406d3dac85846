package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to handlers; each maps to one HTTP status.
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrSemesterNotFound = errors.New("semester not found")
	ErrLabRoomNotFound  = errors.New("lab room not found")
	ErrSettingNotFound  = errors.New("system setting not found")
	ErrInvalidClassType = errors.New("class_type must be 'lab', 'lec', or 'lab/lec'")
	ErrInvalidStatus    = errors.New("status must be 'draft', 'pending', or 'approved'")
	ErrNoSemesters      = errors.New("no semesters found")
	ErrSemesterExists   = errors.New("semester already exists")
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
