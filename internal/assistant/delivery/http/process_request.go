package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processMessageReq binds and validates the conversational turn body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processConfirmReq binds and validates the confirmation body.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListTasksReq binds the task list query parameters.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListAlarmsReq binds the alarm list query parameters.
func (h *handler) processListAlarmsReq(c *gin.Context) (listAlarmsReq, error) {
	var req listAlarmsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetAlarmActiveReq binds the toggle body plus the URI param.
func (h *handler) processSetAlarmActiveReq(c *gin.Context) (setAlarmActiveReq, error) {
	var req setAlarmActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
