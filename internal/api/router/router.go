package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/config"
	"github.com/salhdl/AI-Agent/internal/api/handler"
	"github.com/salhdl/AI-Agent/internal/api/middleware"
	"github.com/salhdl/AI-Agent/pkg/jwt"
	"github.com/salhdl/AI-Agent/pkg/redis"
)

// Setup builds the gin engine and wires all routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.SetHTMLTemplate(handler.Templates())

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── public approval surface ──
	// authenticated only by knowledge of the request id; rate limited
	// because the link can leak via forwarded mail
	approvalLimit := middleware.RateLimit(rdb, 30, time.Minute)
	r.GET("/request/:request_id", approvalLimit, h.Approval.ShowRequest)
	r.POST("/process/:request_id", approvalLimit, h.Approval.ProcessRequest)

	// ── internal JSON API (service-token auth) ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.ServiceAuth(jwtMgr))
	{
		// holiday module
		v1.GET("/employees/:id/holidays", h.Holiday.GetBalance)
		v1.POST("/holiday-requests", h.Holiday.CreateRequest)

		// project module
		v1.GET("/employees/:id/project", h.Project.GetProject)
		v1.PUT("/employees/:id/project/next", h.Project.UpdateNextProject)

		// notification audit log
		v1.GET("/notifications", h.Notification.ListNotifications)

		// exports
		export := v1.Group("/export")
		{
			export.GET("/holiday-requests", h.Export.ExportRequests)
			export.GET("/leave-calendar", h.Export.ExportLeaveCalendar)
		}

		// assistant gateway
		v1.POST("/chat", h.Chat.Chat)
	}

	return r
}
