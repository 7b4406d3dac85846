package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/service"
	"github.com/JosiephousPierre/SELab-final/pkg/response"
)

// SemesterHandler is the semesters HTTP handler.
type SemesterHandler struct {
	semesterSvc service.SemesterService
}

// NewSemesterHandler creates the SemesterHandler.
func NewSemesterHandler(semesterSvc service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc}
}

// ListSemesters lists every academic term.
// GET /api/semesters
func (h *SemesterHandler) ListSemesters(c *gin.Context) {
	semesters, err := h.semesterSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": semesters})
}

// CreateSemester adds an academic term.
// POST /api/semesters
func (h *SemesterHandler) CreateSemester(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSemesterExists) {
			response.Conflict(c, 14002, "semester already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, semester)
}
