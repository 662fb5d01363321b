package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant/repository"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/response"
)

// Message godoc
// @Summary     Process a conversational turn
// @Description Parses one natural-language utterance (Portuguese) and executes or clarifies it.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Utterance and optional record references"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessUserInput(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessUserInput: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newMessageResp(out))
}

// Confirm godoc
// @Summary     Resolve the pending command
// @Description Confirms or cancels the user's last parsed command.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body confirmReq true "Confirmation decision"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ConfirmLastCommand(ctx, req.scope(), *req.Confirmed)
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmLastCommand: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newMessageResp(out))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns tasks with optional date and status filters.
// @Tags        Tasks
// @Produce     json
// @Param       date    query string false "Exact date filter (YYYY-MM-DD)"
// @Param       no_date query bool   false "Only tasks without a date"
// @Param       status  query string false "Filter by status (pending/completed)"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.taskRepo.ListTasks(ctx, repository.ListTasksOptions{
		Date:   req.Date,
		NoDate: req.NoDate,
		Status: model.TaskStatus(req.Status),
	})
	if err != nil {
		h.l.Errorf(ctx, "taskRepo.ListTasks: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newListTasksResp(tasks))
}

// CompleteTask godoc
// @Summary     Mark a task as completed
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	task, err := h.taskRepo.UpdateTask(ctx, id, repository.UpdateTaskOptions{Status: model.TaskStatusCompleted})
	if err != nil {
		h.l.Errorf(ctx, "taskRepo.UpdateTask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(task))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.taskRepo.DeleteTask(ctx, id); err != nil {
		h.l.Errorf(ctx, "taskRepo.DeleteTask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListAlarms godoc
// @Summary     List alarms
// @Description Returns alarms, optionally only the active ones.
// @Tags        Alarms
// @Produce     json
// @Param       active query bool false "Only active alarms"
// @Success     200 {object} listAlarmsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/alarms [GET]
func (h *handler) ListAlarms(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListAlarmsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	alarms, err := h.alarmRepo.ListAlarms(ctx, repository.ListAlarmsOptions{ActiveOnly: req.Active})
	if err != nil {
		h.l.Errorf(ctx, "alarmRepo.ListAlarms: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newListAlarmsResp(alarms))
}

// SetAlarmActive godoc
// @Summary     Enable or disable an alarm
// @Tags        Alarms
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Alarm ID"
// @Param       body body setAlarmActiveReq true "Desired active state"
// @Success     200 {object} alarmResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/alarms/{id}/active [PUT]
func (h *handler) SetAlarmActive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetAlarmActiveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	alarm, err := h.alarmRepo.UpdateAlarm(ctx, req.ID, repository.UpdateAlarmOptions{Active: req.Active})
	if err != nil {
		h.l.Errorf(ctx, "alarmRepo.UpdateAlarm: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newAlarmResp(alarm))
}

// DeleteAlarm godoc
// @Summary     Delete an alarm
// @Tags        Alarms
// @Produce     json
// @Param       id path string true "Alarm ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/alarms/{id} [DELETE]
func (h *handler) DeleteAlarm(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.alarmRepo.DeleteAlarm(ctx, id); err != nil {
		h.l.Errorf(ctx, "alarmRepo.DeleteAlarm: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
