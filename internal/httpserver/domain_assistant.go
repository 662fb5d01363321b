package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "jarvis-assistant/internal/assistant/delivery/http"
	"jarvis-assistant/internal/middleware"
)

// setupAssistantDomain wires the assistant HTTP delivery and registers its
// routes under /api/v1.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC, srv.taskRepo, srv.alarmRepo)

	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
