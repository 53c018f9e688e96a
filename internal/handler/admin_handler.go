package handler

import (
	"net/http"
	"strconv"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/dto"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/service"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin login and the user administration panel.
type AdminHandler struct {
	adminService *service.AdminService
	sessions     *session.Manager
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(adminService *service.AdminService, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		sessions:     sessions,
	}
}

// ShowLogin renders the admin login form.
func (h *AdminHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flash": takeFlash(c),
	})
}

// Login checks the configured admin credentials and sets the admin
// session cookie.
func (h *AdminHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "Nepareizs lietotājvārds vai parole!")
		c.Redirect(http.StatusFound, "/admin-pieslegties")
		return
	}

	if err := h.adminService.Authenticate(form.Username, form.Password); err != nil {
		setFlash(c, "Nepareizs lietotājvārds vai parole!")
		c.Redirect(http.StatusFound, "/admin-pieslegties")
		return
	}

	token, err := h.sessions.Issue(form.Username, true)
	if err != nil {
		setFlash(c, "Servera kļūda, mēģiniet vēlreiz!")
		c.Redirect(http.StatusFound, "/admin-pieslegties")
		return
	}

	h.sessions.SetCookie(c, session.AdminCookie, token)
	c.Redirect(http.StatusFound, "/admin-panelis")
}

// Panel lists every registered user.
func (h *AdminHandler) Panel(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		c.String(http.StatusInternalServerError, "Servera kļūda")
		return
	}

	c.HTML(http.StatusOK, "admin_panel.html", gin.H{
		"Flash": takeFlash(c),
		"Users": users,
	})
}

// DeleteUser removes a user row. Tasks owned by the user stay in the
// store with a dangling owner reference.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.adminService.DeleteUser(uint(id)); err != nil {
		c.String(http.StatusInternalServerError, "Servera kļūda")
		return
	}

	c.Redirect(http.StatusFound, "/admin-panelis")
}

// Logout clears the admin session unconditionally.
func (h *AdminHandler) Logout(c *gin.Context) {
	session.ClearCookie(c, session.AdminCookie)
	c.Redirect(http.StatusFound, "/")
}
