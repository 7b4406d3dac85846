package model

import "time"

// Notification is one composed message. Global notifications fan out to
// every role; targeted ones get explicit UserNotification rows.
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"              json:"id"`
	Title     string    `gorm:"type:varchar(100);not null"            json:"title"`
	Message   string    `gorm:"type:text;not null"                    json:"message"`
	Type      string    `gorm:"type:varchar(20);not null;default:'info'" json:"type"` // info | success | alert
	RelatedTo *string   `gorm:"type:varchar(20)"                      json:"related_to,omitempty"`
	RelatedID *int64    `json:"related_id,omitempty"`
	IsGlobal  bool      `gorm:"not null;default:false"                json:"is_global"`
	CreatedBy *string   `gorm:"type:varchar(50)"                      json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// UserNotification links a targeted notification to one recipient.
type UserNotification struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"           json:"id"`
	NotificationID int64     `gorm:"not null"                           json:"notification_id"`
	UserID         string    `gorm:"type:varchar(50);not null"          json:"user_id"`
	IsRead         bool      `gorm:"not null;default:false"             json:"is_read"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (UserNotification) TableName() string { return "user_notifications" }
