package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Schedule statuses.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Schedule class types.
const (
	ClassTypeLab    = "lab"
	ClassTypeLec    = "lec"
	ClassTypeLabLec = "lab/lec"
)

// ValidStatus reports whether s is one of the three schedule statuses.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPending || s == StatusApproved
}

// ValidClassType reports whether s is an allowed class type.
func ValidClassType(s string) bool {
	return s == ClassTypeLab || s == ClassTypeLec || s == ClassTypeLabLec
}

// StringList is a []string stored as a JSON text column
// (the schedules.schedule_types column).
type StringList []string

// Scan decodes the stored JSON text into the slice.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// Value encodes the slice as JSON text.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Schedule is one scheduled class meeting in a lab room.
// Start and end times are kept as "H:MM AM/PM" display strings; comparisons
// go through pkg/timefmt, never the raw text.
type Schedule struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"                  json:"id"`
	SemesterID     int64      `gorm:"not null;index:idx_schedules_semester_room" json:"semester_id"`
	Section        string     `gorm:"type:varchar(20);not null"                 json:"section"`
	CourseCode     string     `gorm:"type:varchar(20);not null"                 json:"course_code"`
	CourseName     string     `gorm:"type:varchar(100);not null"                json:"course_name"`
	Day            string     `gorm:"type:varchar(10);not null"                 json:"day"`
	SecondDay      *string    `gorm:"type:varchar(10)"                          json:"second_day,omitempty"`
	LabRoomID      int64      `gorm:"not null;index:idx_schedules_semester_room" json:"lab_room_id"`
	InstructorName string     `gorm:"type:varchar(100);not null"                json:"instructor_name"`
	StartTime      string     `gorm:"type:varchar(10);not null"                 json:"start_time"`
	EndTime        string     `gorm:"type:varchar(10);not null"                 json:"end_time"`
	ScheduleTypes  StringList `gorm:"type:text;not null"                        json:"schedule_types"`
	ClassType      string     `gorm:"type:varchar(10);not null"                 json:"class_type"` // lab | lec | lab/lec
	Status         string     `gorm:"type:varchar(10);not null;default:'draft'" json:"status"`     // draft | pending | approved
	CreatedBy      *string    `gorm:"type:varchar(50)"                          json:"created_by,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"updated_at"`

	Semester *Semester `gorm:"foreignKey:SemesterID" json:"semester,omitempty"`
	LabRoom  *LabRoom  `gorm:"foreignKey:LabRoomID"  json:"lab_room,omitempty"`
}

func (Schedule) TableName() string { return "schedules" }

// Days returns the set of weekdays the meeting occupies.
func (s *Schedule) Days() []string {
	days := []string{s.Day}
	if s.SecondDay != nil && *s.SecondDay != "" {
		days = append(days, *s.SecondDay)
	}
	return days
}
