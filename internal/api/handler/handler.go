package handler

import "github.com/JosiephousPierre/SELab-final/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Schedule      *ScheduleHandler
	Semester      *SemesterHandler
	LabRoom       *LabRoomHandler
	SystemSetting *SystemSettingHandler
	Export        *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Schedule:      NewScheduleHandler(svc.Schedule),
		Semester:      NewSemesterHandler(svc.Semester),
		LabRoom:       NewLabRoomHandler(svc.LabRoom),
		SystemSetting: NewSystemSettingHandler(svc.SystemSetting),
		Export:        NewExportHandler(svc.Export),
	}
}
