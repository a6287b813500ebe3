package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/biztrackr/biz_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

// newTaskHandler creates a new taskHandler.
func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{
		taskService: ts,
	}
}

// RegisterTaskRoutes registers all task-related routes.
func RegisterTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/stream", h.streamTasks)
	}
}

// createTask godoc
// @Summary Create a task
// @Description Records a new task for the caller. Identical resubmission creates a second, distinct task.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create task"
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create task in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	logger.Info("Task created", slog.String("task_id", task.TaskID))
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// listTasks godoc
// @Summary List tasks
// @Description Returns the caller's tasks.
// @Tags tasks
// @Produce json
// @Success 200 {array} dto.TaskResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list tasks"
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list tasks from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

// streamTasks godoc
// @Summary Stream task snapshots
// @Description SSE stream of the caller's task list: a full snapshot on connect, then a complete replacement snapshot after every create. Ends when the client disconnects.
// @Tags tasks
// @Produce text/event-stream
// @Success 200 {array} dto.TaskResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to open stream"
// @Security BearerAuth
// @Router /tasks/stream [get]
func (h *taskHandler) streamTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshots, err := h.taskService.WatchTasks(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to open task stream", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open stream"})
		return
	}

	setSSEHeaders(c)
	c.Stream(func(w io.Writer) bool {
		snap, open := <-snapshots
		if !open {
			return false
		}
		c.SSEvent("snapshot", dto.ToTaskResponses(snap))
		return true
	})
}

// setSSEHeaders marks the response as a server-sent event stream.
func setSSEHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
}
