package model

import "time"

// SettingDisplaySemester names the semester whose approved schedule is shown
// by default on all dashboards.
const SettingDisplaySemester = "current_display_semester_id"

// SystemSetting is one key/value configuration row.
type SystemSetting struct {
	Key         string    `gorm:"column:setting_key;type:varchar(100);primaryKey" json:"setting_key"`
	Value       string    `gorm:"column:setting_value;type:varchar(255);not null" json:"setting_value"`
	Description *string   `gorm:"type:varchar(255)"                               json:"description,omitempty"`
	UpdatedBy   *string   `gorm:"type:varchar(50)"                                json:"updated_by,omitempty"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"              json:"updated_at"`
}

func (SystemSetting) TableName() string { return "system_settings" }
