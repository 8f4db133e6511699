package main

import (
	"fmt"
	"log"

	"uddaan/internal/api/routes"
	"uddaan/internal/config"
	"uddaan/internal/logger"
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env before config so env overrides apply
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := models.Open(cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Seed system roles and the bootstrap admin
	authService := services.NewAuthService(db, cfg)
	roleService := services.NewRoleService(db)
	if err := roleService.SeedDefaults(authService,
		cfg.DefaultAdmin.Name, cfg.DefaultAdmin.Email, cfg.DefaultAdmin.Password); err != nil {
		zlog.Warn("Failed to seed defaults", zap.Error(err))
	}

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.New()
	r.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(r, db, cfg, zlog)

	// Run server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	zlog.Info("Starting Uddaan Consultancy server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
