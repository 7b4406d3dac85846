package model

import "time"

// AuditLog is one append-only action record. Writes are best-effort; a
// failed audit insert never fails the operation that produced it.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"           json:"id"`
	UserID    *string   `gorm:"type:varchar(50)"                   json:"user_id,omitempty"`
	Action    string    `gorm:"type:varchar(50);not null"          json:"action"`
	Details   string    `gorm:"type:text"                          json:"details"`
	IPAddress *string   `gorm:"type:varchar(45)"                   json:"ip_address,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_log" }
