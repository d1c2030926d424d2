package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/handler"
	"github.com/noah-isme/uni-portal-api/internal/middleware"
	"github.com/noah-isme/uni-portal-api/internal/seed"
	"github.com/noah-isme/uni-portal-api/internal/service"
	"github.com/noah-isme/uni-portal-api/internal/store"
	"github.com/noah-isme/uni-portal-api/pkg/config"
	"github.com/noah-isme/uni-portal-api/pkg/export"
	"github.com/noah-isme/uni-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/uni-portal-api/pkg/middleware/cors"
	latencymiddleware "github.com/noah-isme/uni-portal-api/pkg/middleware/latency"
	reqidmiddleware "github.com/noah-isme/uni-portal-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	data, err := seed.Generate(seed.Options{
		Seed:            cfg.Seed.Seed,
		StudentCount:    cfg.Seed.StudentCount,
		DefaultPassword: cfg.Seed.DefaultPassword,
	})
	if err != nil {
		log.Fatalf("failed to seed dataset: %v", err)
	}
	db := store.New(data)
	logr.Sugar().Infow("dataset seeded",
		"seed", cfg.Seed.Seed,
		"students", len(data.Students),
		"faculty", len(data.Faculty),
		"courses", len(data.Courses),
	)

	metricsSvc := service.NewMetricsService()
	metricsSvc.SetSeededEntities("students", len(data.Students))
	metricsSvc.SetSeededEntities("faculty", len(data.Faculty))
	metricsSvc.SetSeededEntities("courses", len(data.Courses))
	metricsSvc.SetSeededEntities("users", len(data.Users))

	gradeSvc := service.NewGradeService(db, db, db, db, logr)
	analyticsSvc := service.NewAnalyticsService(db, db, db, db, db, gradeSvc, logr)
	studentSvc := service.NewStudentService(db, db, gradeSvc, logr)
	courseSvc := service.NewCourseService(db, db, nil, logr)
	facultySvc := service.NewFacultyService(db, nil, logr, cfg.Seed.DefaultPassword)
	assessmentSvc := service.NewAssessmentService(db, nil, logr, "")
	attendanceSvc := service.NewAttendanceService(db, nil, logr)
	authSvc := service.NewAuthService(db, nil, logr, service.AuthConfig{
		Secret:     cfg.Auth.JWTSecret,
		Expiration: cfg.Auth.Expiration,
	})
	exportSvc := service.NewExportService(gradeSvc, attendanceSvc, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	// Simulated round-trip delay applies to API routes only, probes stay fast.
	r.Use(latencymiddleware.New(cfg.Mock.Latency))

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Services{
		Auth:        authSvc,
		Students:    studentSvc,
		Faculty:     facultySvc,
		Courses:     courseSvc,
		Assessments: assessmentSvc,
		Attendance:  attendanceSvc,
		Grades:      gradeSvc,
		Analytics:   analyticsSvc,
		Exports:     exportSvc,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "latency", cfg.Mock.Latency)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
