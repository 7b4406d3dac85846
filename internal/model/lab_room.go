package model

import "time"

// LabRoom is a static reference entity; the scheduling core only reads it.
type LabRoom struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"           json:"id"`
	Name      string    `gorm:"type:varchar(100);not null"         json:"name"`
	Capacity  *int      `json:"capacity,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (LabRoom) TableName() string { return "lab_rooms" }
