package dto

// UpdateSystemSettingRequest is the PUT /system-settings/:key body.
type UpdateSystemSettingRequest struct {
	SettingValue string  `json:"setting_value" binding:"required,max=255"`
	Description  *string `json:"description"   binding:"omitempty,max=255"`
}

// SystemSettingResponse is one setting row.
type SystemSettingResponse struct {
	SettingKey   string  `json:"setting_key"`
	SettingValue string  `json:"setting_value"`
	Description  *string `json:"description,omitempty"`
	UpdatedAt    string  `json:"updated_at"`
}

// DisplaySemesterResponse is the resolved current display semester.
type DisplaySemesterResponse struct {
	SemesterID   int64            `json:"semester_id"`
	SemesterName string           `json:"semester_name"`
	Semester     SemesterResponse `json:"current_display_semester"`
}
