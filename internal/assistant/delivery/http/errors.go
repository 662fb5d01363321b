package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/pkg/response"
)

// mapError translates domain errors into HTTP responses. Anything the switch
// does not recognize is a storage or programming fault and stays opaque to
// the client.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrTaskNotFound),
		errors.Is(err, assistant.ErrAlarmNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c)
	}
}
