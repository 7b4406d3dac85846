package model

import "time"

// User is the minimal identity row the scheduling core needs: resolving the
// acting user for audit entries and finding the Dean for targeted
// notifications. Account management lives outside this service.
type User struct {
	ID        string    `gorm:"type:varchar(50);primaryKey"        json:"id"`
	FullName  string    `gorm:"type:varchar(100);not null"         json:"full_name"`
	Role      string    `gorm:"type:varchar(30);not null"          json:"role"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (User) TableName() string { return "users" }
