package main

import (
	"log"
	"os"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/config"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/models"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/router"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := os.Getenv("TODOME_CONFIG")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("init database: %v", err)
	}
	db := models.GetDB()

	sessions := session.NewManager(cfg.Session.SecretKey, cfg.Session.GetExpireDuration())

	r := router.SetupRouter(cfg, sessions, logger, db)

	addr := cfg.Server.GetAddress()
	logger.Infof("server listening on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
