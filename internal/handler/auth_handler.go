package handler

import (
	"errors"
	"net/http"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/dto"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/service"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler serves the landing, registration and login pages.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(authService *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Home renders the landing page.
func (h *AuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flash": takeFlash(c),
	})
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flash": takeFlash(c),
	})
}

// Register performs registration and redirects back to the form on any
// failure, to the login page on success.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			setFlash(c, "Lūdzu, aizpildiet visus laukus!")
		} else {
			setFlash(c, "Nederīgs pieprasījums!")
		}
		c.Redirect(http.StatusFound, "/registrejies")
		return
	}

	_, err := h.authService.Register(form.Username, form.Email, form.Password, form.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			setFlash(c, "Lūdzu, aizpildiet visus laukus!")
		case errors.Is(err, service.ErrPasswordMismatch):
			setFlash(c, "Paroles nesakrīt!")
		case errors.Is(err, service.ErrUsernameTaken):
			setFlash(c, "Lietotājvārds jau eksistē!")
		default:
			setFlash(c, "Servera kļūda, mēģiniet vēlreiz!")
		}
		c.Redirect(http.StatusFound, "/registrejies")
		return
	}

	setFlash(c, "Reģistrācija veiksmīga!")
	c.Redirect(http.StatusFound, "/pieslegties")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": takeFlash(c),
	})
}

// Login verifies the credentials and establishes the user session.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "Lūdzu, ievadiet lietotājvārdu un paroli!")
		c.Redirect(http.StatusFound, "/pieslegties")
		return
	}

	user, err := h.authService.Login(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrFieldsRequired) {
			setFlash(c, "Lūdzu, ievadiet lietotājvārdu un paroli!")
		} else {
			setFlash(c, "Nepareizs lietotājvārds vai parole!")
		}
		c.Redirect(http.StatusFound, "/pieslegties")
		return
	}

	token, err := h.sessions.Issue(user.Username, false)
	if err != nil {
		setFlash(c, "Servera kļūda, mēģiniet vēlreiz!")
		c.Redirect(http.StatusFound, "/pieslegties")
		return
	}

	h.sessions.SetCookie(c, session.UserCookie, token)
	c.Redirect(http.StatusFound, "/mans-konts")
}

// Logout clears the user session unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.ClearCookie(c, session.UserCookie)
	c.Redirect(http.StatusFound, "/")
}
