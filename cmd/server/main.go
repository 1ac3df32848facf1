package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"madrasa/docs"
	"madrasa/internal/auth"
	"madrasa/internal/cache"
	"madrasa/internal/config"
	"madrasa/internal/db"
	"madrasa/internal/handler"
	"madrasa/internal/model"
	"madrasa/internal/repository"
	"madrasa/internal/router"
	"madrasa/internal/service"
)

// @title Madrasa API
// @version 1.0
// @description Tutoring-center back office: authentication, tenant-scoped resource management and reporting.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Subscription{},
			&model.Subject{},
			&model.Teacher{},
			&model.Student{},
			&model.Level{},
			&model.Setting{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Teacher{},
		&model.Subject{},
		&model.Level{},
		&model.Subscription{},
		&model.Setting{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	studentRepo := repository.NewStudentRepository(gormDB)
	teacherRepo := repository.NewTeacherRepository(gormDB)
	subjectRepo := repository.NewSubjectRepository(gormDB)
	levelRepo := repository.NewLevelRepository(gormDB)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	studentService := service.NewStudentService(studentRepo)
	teacherService := service.NewTeacherService(teacherRepo)
	subjectService := service.NewSubjectService(subjectRepo)
	levelService := service.NewLevelService(levelRepo, studentRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	settingsService := service.NewSettingsService(userRepo, settingRepo)
	reportService := service.NewReportService(studentRepo, teacherRepo, subjectRepo, subscriptionRepo, cacheClient)

	// Routes
	router.Register(e, jwtService, tokenStore, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Student:      handler.NewStudentHandler(studentService),
		Teacher:      handler.NewTeacherHandler(teacherService),
		Subject:      handler.NewSubjectHandler(subjectService),
		Level:        handler.NewLevelHandler(levelService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Report:       handler.NewReportHandler(reportService),
	})

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
