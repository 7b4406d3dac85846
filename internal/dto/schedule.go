package dto

// ── requests ──

// CreateScheduleRequest is the POST /schedules body.
type CreateScheduleRequest struct {
	SemesterID     int64    `json:"semester_id"     binding:"required"`
	Section        string   `json:"section"         binding:"required,max=20"`
	CourseCode     string   `json:"course_code"     binding:"required,max=20"`
	CourseName     string   `json:"course_name"     binding:"required,max=100"`
	Day            string   `json:"day"             binding:"required,max=10"`
	SecondDay      *string  `json:"second_day"      binding:"omitempty,max=10"`
	LabRoomID      int64    `json:"lab_room_id"     binding:"required"`
	InstructorName string   `json:"instructor_name" binding:"required,max=100"`
	StartTime      string   `json:"start_time"      binding:"required,max=10"`
	EndTime        string   `json:"end_time"        binding:"required,max=10"`
	ScheduleTypes  []string `json:"schedule_types"  binding:"required"`
	ClassType      string   `json:"class_type"      binding:"required"`
	CreatedBy      *string  `json:"created_by"`
}

// UpdateScheduleRequest is the PUT /schedules/:id body (full replace).
type UpdateScheduleRequest struct {
	SemesterID     int64    `json:"semester_id"     binding:"required"`
	Section        string   `json:"section"         binding:"required,max=20"`
	CourseCode     string   `json:"course_code"     binding:"required,max=20"`
	CourseName     string   `json:"course_name"     binding:"required,max=100"`
	Day            string   `json:"day"             binding:"required,max=10"`
	SecondDay      *string  `json:"second_day"      binding:"omitempty,max=10"`
	LabRoomID      int64    `json:"lab_room_id"     binding:"required"`
	InstructorName string   `json:"instructor_name" binding:"required,max=100"`
	StartTime      string   `json:"start_time"      binding:"required,max=10"`
	EndTime        string   `json:"end_time"        binding:"required,max=10"`
	ScheduleTypes  []string `json:"schedule_types"  binding:"required"`
	ClassType      string   `json:"class_type"      binding:"required"`
}

// ScheduleStatusUpdateRequest is the PATCH /schedules/:id/status body.
type ScheduleStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// BulkStatusUpdateRequest is the PATCH /schedules/bulk-status-update body.
type BulkStatusUpdateRequest struct {
	ScheduleIDs []int64 `json:"schedule_ids" binding:"required,min=1"`
	Status      string  `json:"status"       binding:"required"`
	SemesterID  *int64  `json:"semester_id"`
}

// ── responses ──

// ScheduleResponse is one schedule row with resolved reference names.
type ScheduleResponse struct {
	ID             int64    `json:"id"`
	SemesterID     int64    `json:"semester_id"`
	SemesterName   string   `json:"semester_name,omitempty"`
	Section        string   `json:"section"`
	CourseCode     string   `json:"course_code"`
	CourseName     string   `json:"course_name"`
	Day            string   `json:"day"`
	SecondDay      *string  `json:"second_day,omitempty"`
	LabRoomID      int64    `json:"lab_room_id"`
	LabRoomName    string   `json:"lab_room_name,omitempty"`
	InstructorName string   `json:"instructor_name"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	ScheduleTypes  []string `json:"schedule_types"`
	ClassType      string   `json:"class_type"`
	Status         string   `json:"status"`
	CreatedBy      *string  `json:"created_by,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// CreateScheduleResponse reports the new draft's id.
type CreateScheduleResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// StatusChangeResponse reports a single status transition.
type StatusChangeResponse struct {
	ScheduleID     int64  `json:"schedule_id"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
}

// BulkStatusChangeResponse reports an aggregate status transition.
type BulkStatusChangeResponse struct {
	UpdatedCount int64  `json:"updated_count"`
	Status       string `json:"status"`
	SemesterID   int64  `json:"semester_id"`
}

// DeleteAllResponse reports how many rows an administrative reset removed.
type DeleteAllResponse struct {
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

// CourseUsageResponse answers the check-course-usage lookup.
type CourseUsageResponse struct {
	IsUsed bool `json:"is_used"`
}

// UsedCourse is one course code already scheduled in a semester/section.
type UsedCourse struct {
	CourseCode string `json:"course_code"`
	ScheduleID int64  `json:"schedule_id"`
	Section    string `json:"section"`
}

// EditedSchedule marks the row excluded from a used-courses lookup.
type EditedSchedule struct {
	CourseCode    string `json:"course_code"`
	ScheduleID    int64  `json:"schedule_id"`
	Section       string `json:"section"`
	IsBeingEdited bool   `json:"is_being_edited"`
}

// UsedCoursesResponse lists the already-scheduled courses for the UI.
type UsedCoursesResponse struct {
	UsedCourses    []UsedCourse    `json:"used_courses"`
	EditedSchedule *EditedSchedule `json:"edited_schedule,omitempty"`
}
