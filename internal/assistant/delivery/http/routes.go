package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The conversational endpoints are rate limited; the CRUD endpoints
// serve the management UI and share the same limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/messages", mw.RateLimit(), h.Message)
		assistant.POST("/confirm", mw.RateLimit(), h.Confirm)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.RateLimit(), h.ListTasks)
		tasks.POST("/:id/complete", mw.RateLimit(), h.CompleteTask)
		tasks.DELETE("/:id", mw.RateLimit(), h.DeleteTask)
	}

	alarms := rg.Group("/alarms")
	{
		alarms.GET("", mw.RateLimit(), h.ListAlarms)
		alarms.PUT("/:id/active", mw.RateLimit(), h.SetAlarmActive)
		alarms.DELETE("/:id", mw.RateLimit(), h.DeleteAlarm)
	}
}
