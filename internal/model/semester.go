package model

import "time"

// Semester is an academic term container. Names follow the patterns
// "1st Sem 2025-2026", "2nd Sem 2025-2026" and "Summer 2026"; the
// academic-term roller relies on the trailing year token.
type Semester struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"           json:"id"`
	Name      string    `gorm:"type:varchar(50);not null"          json:"name"`
	IsActive  bool      `gorm:"not null;default:false"             json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Semester) TableName() string { return "semesters" }
