package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/JosiephousPierre/SELab-final/internal/service"
	"github.com/JosiephousPierre/SELab-final/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler is the export HTTP handler.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportXlsx downloads a semester's approved schedule as an Excel workbook.
// GET /api/export/schedules/xlsx?semester_id=1
func (h *ExportHandler) ExportXlsx(c *gin.Context) {
	semesterID, ok := queryID(c, "semester_id")
	if !ok {
		return
	}
	if semesterID == 0 {
		response.BadRequest(c, 10001, "semester_id is required")
		return
	}

	buf, filename, err := h.exportSvc.Xlsx(c.Request.Context(), semesterID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportICS downloads a semester's approved schedule as an iCalendar feed.
// GET /api/export/schedules/ics?semester_id=1
func (h *ExportHandler) ExportICS(c *gin.Context) {
	semesterID, ok := queryID(c, "semester_id")
	if !ok {
		return
	}
	if semesterID == 0 {
		response.BadRequest(c, 10001, "semester_id is required")
		return
	}

	content, filename, err := h.exportSvc.ICS(c.Request.Context(), semesterID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar", []byte(content))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 14001, "semester not found")
	case errors.Is(err, service.ErrExportNoSchedules):
		response.NotFound(c, 16001, "no approved schedules for this semester")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
