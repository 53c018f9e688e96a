package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/dto"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/middleware"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/quotes"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/service"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TaskHandler serves the account page and the task mutations.
type TaskHandler struct {
	taskService *service.TaskService
	quotesPath  string
	logger      *logrus.Logger
}

// NewTaskHandler creates a task handler.
func NewTaskHandler(taskService *service.TaskService, quotesPath string, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		quotesPath:  quotesPath,
		logger:      logger,
	}
}

// MyAccount renders the task list with a random motivational quote. A
// session whose user was deleted is sent back to the login page.
func (h *TaskHandler) MyAccount(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.Redirect(http.StatusFound, "/pieslegties")
		return
	}

	user, tasks, err := h.taskService.ListFor(username)
	if err != nil {
		if errors.Is(err, service.ErrUserGone) {
			session.ClearCookie(c, session.UserCookie)
			c.Redirect(http.StatusFound, "/pieslegties")
			return
		}
		c.String(http.StatusInternalServerError, "Servera kļūda")
		return
	}

	quote, err := quotes.Random(h.quotesPath)
	if err != nil {
		// The page still renders without a quote.
		h.logger.WithError(err).Warn("load quote")
	}

	c.HTML(http.StatusOK, "mans_konts.html", gin.H{
		"Flash":    takeFlash(c),
		"Username": user.Username,
		"Tasks":    tasks,
		"Quote":    quote,
	})
}

// AddTask creates a task from the posted form. Priority goes to the store
// as given; a value outside the closed set fails at the storage boundary.
func (h *TaskHandler) AddTask(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.Redirect(http.StatusFound, "/pieslegties")
		return
	}

	var form dto.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Nederīgs pieprasījums")
		return
	}

	_, err := h.taskService.Add(username, form.Title, form.Description, form.Priority, form.DueDate)
	if err != nil {
		if errors.Is(err, service.ErrUserGone) {
			session.ClearCookie(c, session.UserCookie)
			c.Redirect(http.StatusFound, "/pieslegties")
			return
		}
		c.String(http.StatusInternalServerError, "Servera kļūda")
		return
	}

	c.Redirect(http.StatusFound, "/mans-konts")
}

// CompleteTask marks a task done by id. Absent ids are silent no-ops.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.taskService.Complete(uint(id)); err != nil {
		c.String(http.StatusInternalServerError, "Servera kļūda")
		return
	}

	c.Redirect(http.StatusFound, "/mans-konts")
}

// DeleteTask removes a task by id. Absent ids are silent no-ops.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.taskService.Delete(uint(id)); err != nil {
		c.String(http.StatusInternalServerError, "Servera kļūda")
		return
	}

	c.Redirect(http.StatusFound, "/mans-konts")
}
