package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/config"
	"github.com/JosiephousPierre/SELab-final/internal/api/handler"
	"github.com/JosiephousPierre/SELab-final/internal/api/middleware"
	"github.com/JosiephousPierre/SELab-final/pkg/jwt"
	"github.com/JosiephousPierre/SELab-final/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb, 100, time.Minute))
	{
		// read endpoints are open; the dashboards render without a login
		schedules := api.Group("/schedules")
		{
			schedules.GET("", h.Schedule.ListSchedules)
			schedules.GET("/status/:status", h.Schedule.ListSchedulesByStatus)
			schedules.GET("/check-course-usage", h.Schedule.CheckCourseUsage)
			schedules.GET("/used-courses", h.Schedule.ListUsedCourses)
			schedules.GET("/:id", h.Schedule.GetSchedule)
		}
		api.GET("/semesters", h.Semester.ListSemesters)
		api.GET("/lab-rooms", h.LabRoom.ListLabRooms)
		api.GET("/system-settings/display-semester/current", h.SystemSetting.GetCurrentDisplaySemester)
		api.GET("/system-settings/:key", h.SystemSetting.GetSetting)
		api.GET("/export/schedules/xlsx", h.Export.ExportXlsx)
		api.GET("/export/schedules/ics", h.Export.ExportICS)

		// mutations require a verified identity
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr))
		{
			statusRoles := middleware.RoleAuth("Dean", "Acad Coor", "System Administrator")
			adminRoles := middleware.RoleAuth("Dean", "System Administrator")

			authorized.POST("/schedules", h.Schedule.CreateSchedule)
			authorized.PUT("/schedules/:id", h.Schedule.UpdateSchedule)
			authorized.PATCH("/schedules/:id/status", statusRoles, h.Schedule.UpdateScheduleStatus)
			authorized.PATCH("/schedules/bulk-status-update", statusRoles, h.Schedule.BulkUpdateScheduleStatus)
			authorized.DELETE("/schedules/all", adminRoles, h.Schedule.DeleteAllSchedules)
			authorized.DELETE("/schedules/:id", h.Schedule.DeleteSchedule)

			authorized.POST("/semesters", adminRoles, h.Semester.CreateSemester)

			authorized.PUT("/system-settings/:key", adminRoles, h.SystemSetting.UpdateSetting)
		}
	}

	return r
}
