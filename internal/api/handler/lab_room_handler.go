package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JosiephousPierre/SELab-final/internal/service"
	"github.com/JosiephousPierre/SELab-final/pkg/response"
)

// LabRoomHandler is the lab rooms HTTP handler.
type LabRoomHandler struct {
	labRoomSvc service.LabRoomService
}

// NewLabRoomHandler creates the LabRoomHandler.
func NewLabRoomHandler(labRoomSvc service.LabRoomService) *LabRoomHandler {
	return &LabRoomHandler{labRoomSvc: labRoomSvc}
}

// ListLabRooms lists the lab rooms.
// GET /api/lab-rooms
func (h *LabRoomHandler) ListLabRooms(c *gin.Context) {
	rooms, err := h.labRoomSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rooms})
}
