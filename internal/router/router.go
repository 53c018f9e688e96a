package router

import (
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/config"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/handler"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/middleware"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/repository"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/service"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and handlers onto the route
// table. Paths keep the original Latvian names.
func SetupRouter(
	cfg *config.Config,
	sessions *session.Manager,
	logger *logrus.Logger,
	db *gorm.DB,
) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())

	r.LoadHTMLGlob(cfg.Templates.Glob)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := service.NewAuthService(userRepo)
	taskService := service.NewTaskService(taskRepo, userRepo)
	adminService := service.NewAdminService(userRepo, &cfg.Admin)

	authHandler := handler.NewAuthHandler(authService, sessions)
	taskHandler := handler.NewTaskHandler(taskService, cfg.Quotes.Path, logger)
	adminHandler := handler.NewAdminHandler(adminService, sessions)

	// Public pages
	r.GET("/", authHandler.Home)
	r.GET("/registrejies", authHandler.ShowRegister)
	r.POST("/registrejies", authHandler.Register)
	r.GET("/pieslegties", authHandler.ShowLogin)
	r.POST("/pieslegties", authHandler.Login)
	r.GET("/atslegties", authHandler.Logout)

	// Authenticated pages
	authorized := r.Group("")
	authorized.Use(middleware.RequireSession(sessions))
	{
		authorized.GET("/mans-konts", taskHandler.MyAccount)
		authorized.POST("/pievienot-uzdevumu", taskHandler.AddTask)
		authorized.POST("/dzest-uzdevumu/:id", taskHandler.DeleteTask)
		authorized.POST("/atzimet-izpilditu/:id", taskHandler.CompleteTask)
	}

	// Admin pages
	r.GET("/admin-pieslegties", adminHandler.ShowLogin)
	r.POST("/admin-pieslegties", adminHandler.Login)
	r.GET("/admin-atslegties", adminHandler.Logout)

	adminGroup := r.Group("")
	adminGroup.Use(middleware.RequireAdmin(sessions))
	{
		adminGroup.GET("/admin-panelis", adminHandler.Panel)
		adminGroup.POST("/dzest-lietotaju/:id", adminHandler.DeleteUser)
	}

	return r
}
