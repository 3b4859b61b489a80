package main

import (
	"context"
	"log"
	"time"

	"crm/config"
	"crm/routes"
	"crm/services"
	"crm/services/logger"
	"crm/services/storage"
	"crm/validator"
)

// @title CRM API
// @version 1.0
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	var appLogger logger.Logger = logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
	if cfg.LogDir != "" {
		fileLogger, err := logger.NewFileLogger(logger.ParseLevel(cfg.LogLevel), cfg.LogDir)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		appLogger = fileLogger
	}

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = services.SeedSuperAdmin(ctx, db, services.SuperAdminSeed{
		Name:     cfg.SuperAdmin.Name,
		Email:    cfg.SuperAdmin.Email,
		Password: cfg.SuperAdmin.Password,
	}, appLogger)
	cancel()
	if err != nil {
		log.Fatalf("Failed to seed superadmin: %v", err)
	}

	rdb, err := config.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	if rdb == nil {
		appLogger.Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	if err := validator.Register(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	tokens := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	revoker := services.NewRevoker(rdb)

	deps := routes.Dependencies{
		Tokens:  tokens,
		Revoker: revoker,
		Auth: services.NewAuthService(services.AuthServiceOptions{
			DB:      db,
			Tokens:  tokens,
			Revoker: revoker,
			Google:  services.NewGoogleVerifier(cfg.Auth.GoogleClientID),
			Logger:  appLogger,
		}),
		Staff: services.NewStaffService(services.StaffServiceOptions{DB: db, Logger: appLogger}),
		Users: services.NewUserService(services.UserServiceOptions{DB: db, Logger: appLogger}),
		Jobs: services.NewJobService(services.JobServiceOptions{
			DB:            db,
			Storage:       store,
			MaxResumeSize: cfg.Storage.MaxResumeSize,
			Logger:        appLogger,
		}),
		Attendance: services.NewAttendanceService(services.AttendanceServiceOptions{
			DB:       db,
			Location: cfg.Location(),
			Logger:   appLogger,
		}),
		Salary: services.NewSalaryService(services.SalaryServiceOptions{DB: db, Logger: appLogger}),
		Logger: appLogger,
	}
	if _, ok := store.(*storage.LocalProvider); ok {
		deps.UploadDir = cfg.Storage.UploadDir
	}

	router := config.NewRouter(cfg)
	routes.SetupRoutes(router, deps)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
