package dto

// CreateSemesterRequest is the POST /semesters body.
type CreateSemesterRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// SemesterResponse is one semester row.
type SemesterResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// LabRoomResponse is one lab room reference row.
type LabRoomResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Capacity  *int   `json:"capacity,omitempty"`
	CreatedAt string `json:"created_at"`
}
