package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/service"
	"github.com/JosiephousPierre/SELab-final/pkg/response"
)

// ScheduleHandler is the schedules HTTP handler.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates the ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ListSchedules lists schedules, optionally scoped to one semester.
// GET /api/schedules?semester_id=1
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	semesterID, ok := queryID(c, "semester_id")
	if !ok {
		return
	}

	schedules, err := h.scheduleSvc.List(c.Request.Context(), semesterID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": schedules})
}

// ListSchedulesByStatus lists schedules in one lifecycle status.
// GET /api/schedules/status/:status
func (h *ScheduleHandler) ListSchedulesByStatus(c *gin.Context) {
	schedules, err := h.scheduleSvc.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": schedules})
}

// GetSchedule returns one schedule.
// GET /api/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// CreateSchedule books a new draft meeting.
// POST /api/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.Create(c.Request.Context(), &req, callerID, c.ClientIP())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, resp)
}

// UpdateSchedule replaces a schedule's fields.
// PUT /api/schedules/:id
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.Update(c.Request.Context(), id, &req, callerID, c.ClientIP())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// UpdateScheduleStatus moves one schedule through the lifecycle.
// PATCH /api/schedules/:id/status
func (h *ScheduleHandler) UpdateScheduleStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ScheduleStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.SetStatus(c.Request.Context(), id, req.Status, callerID, c.ClientIP())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// BulkUpdateScheduleStatus moves a batch of schedules in one transaction.
// PATCH /api/schedules/bulk-status-update
func (h *ScheduleHandler) BulkUpdateScheduleStatus(c *gin.Context) {
	var req dto.BulkStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.BulkSetStatus(c.Request.Context(), &req, callerID, c.ClientIP())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// DeleteSchedule removes one schedule.
// DELETE /api/schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id, callerID, c.ClientIP()); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteAllSchedules removes every schedule. Administrative reset.
// DELETE /api/schedules/all
func (h *ScheduleHandler) DeleteAllSchedules(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.DeleteAll(c.Request.Context(), callerID, c.ClientIP())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// CheckCourseUsage reports whether a course/section combination is already
// scheduled in a semester.
// GET /api/schedules/check-course-usage?course_code=IT321&semester_id=1&section=BSIT+3A&exclude_schedule_id=5
func (h *ScheduleHandler) CheckCourseUsage(c *gin.Context) {
	courseCode := c.Query("course_code")
	section := c.Query("section")
	if courseCode == "" || section == "" {
		response.BadRequest(c, 10001, "course_code and section are required")
		return
	}
	semesterID, ok := queryID(c, "semester_id")
	if !ok {
		return
	}
	if semesterID == 0 {
		response.BadRequest(c, 10001, "semester_id is required")
		return
	}
	excludeID, ok := queryID(c, "exclude_schedule_id")
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.CheckCourseUsage(c.Request.Context(), courseCode, semesterID, section, excludeID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// ListUsedCourses lists the courses already scheduled for a semester/section.
// GET /api/schedules/used-courses?semester_id=1&section=BSIT+3A&exclude_schedule_id=5
func (h *ScheduleHandler) ListUsedCourses(c *gin.Context) {
	semesterID, ok := queryID(c, "semester_id")
	if !ok {
		return
	}
	if semesterID == 0 {
		response.BadRequest(c, 10001, "semester_id is required")
		return
	}
	excludeID, ok := queryID(c, "exclude_schedule_id")
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.UsedCourses(c.Request.Context(), semesterID, c.Query("section"), excludeID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

// handleScheduleError maps schedule business errors to HTTP responses.
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &conflict):
		response.Conflict(c, 13001, conflict.Error())
	case errors.Is(err, service.ErrTimeWindow):
		response.BadRequest(c, 13002, err.Error())
	case errors.Is(err, service.ErrInvalidClassType):
		response.BadRequest(c, 13003, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 13004, err.Error())
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 13005, "schedule not found")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, "semester not found")
	case errors.Is(err, service.ErrLabRoomNotFound):
		response.NotFound(c, 13006, "lab room not found")
	case errors.Is(err, service.ErrConflictCheck):
		response.Error(c, http.StatusInternalServerError, 13007, "could not determine schedule conflicts")
	default:
		response.InternalError(c)
	}
}
