package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/service"
	"github.com/JosiephousPierre/SELab-final/pkg/response"
)

// SystemSettingHandler is the system settings HTTP handler.
type SystemSettingHandler struct {
	settingSvc service.SystemSettingService
}

// NewSystemSettingHandler creates the SystemSettingHandler.
func NewSystemSettingHandler(settingSvc service.SystemSettingService) *SystemSettingHandler {
	return &SystemSettingHandler{settingSvc: settingSvc}
}

// GetSetting returns one setting.
// GET /api/system-settings/:key
func (h *SystemSettingHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.BadRequest(c, 10001, "setting key is required")
		return
	}

	setting, err := h.settingSvc.Get(c.Request.Context(), key)
	if err != nil {
		h.handleSettingError(c, err)
		return
	}

	response.OK(c, setting)
}

// UpdateSetting upserts one setting.
// PUT /api/system-settings/:key
func (h *SystemSettingHandler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.BadRequest(c, 10001, "setting key is required")
		return
	}

	var req dto.UpdateSystemSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	setting, err := h.settingSvc.Update(c.Request.Context(), key, &req, callerID)
	if err != nil {
		h.handleSettingError(c, err)
		return
	}

	response.OK(c, setting)
}

// GetCurrentDisplaySemester resolves the display semester for dashboards.
// GET /api/system-settings/display-semester/current
func (h *SystemSettingHandler) GetCurrentDisplaySemester(c *gin.Context) {
	resp, err := h.settingSvc.CurrentDisplaySemester(c.Request.Context())
	if err != nil {
		h.handleSettingError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *SystemSettingHandler) handleSettingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSettingNotFound):
		response.NotFound(c, 15001, "system setting not found")
	case errors.Is(err, service.ErrNoSemesters):
		response.NotFound(c, 15002, "no semesters found")
	default:
		response.InternalError(c)
	}
}
