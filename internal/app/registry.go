package app

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/audit"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/billing"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/certificate"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/company"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/config"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/employee"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/location"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/messaging/kafka"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/middleware"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/ratelimit"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/counter"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/token"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/trainingrecord"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) (*audit.Recorder, error) {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	locationRepo := location.NewRepository(gormDB)
	trainingRecordRepo := trainingrecord.NewRepository(gormDB)
	certificateRepo := certificate.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	auditRepo := audit.NewRepository(gormDB)
	billingStore := billing.NewStore(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Cross-cutting ---
	auditRecorder := audit.NewRecorder(auditRepo, zap.L())
	tokens := token.NewService(cfg.JWTSecret)
	authLimiter := ratelimit.NewLimiter("auth", 10, 15*time.Minute)
	adminLimiter := ratelimit.NewLimiter("admin", 120, 5*time.Minute)

	// --- Services ---
	companyService := company.NewService(companyRepo)
	authService := auth.NewService(userRepo, companyService, tokens, auditRecorder)
	employeeService := employee.NewService(employeeRepo, rdb)
	locationService := location.NewService(locationRepo)
	trainingRecordService := trainingrecord.NewServiceWithOutbox(db, trainingRecordRepo, outboxRepo)
	certificateService := certificate.NewService(certificateRepo, counterRepo)
	auditService := audit.NewService(auditRepo)
	billingService := billing.NewService(billingStore, companyRepo, auditRecorder, cfg)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	employeeHandler := employee.NewHandler(employeeService)
	locationHandler := location.NewHandler(locationService)
	trainingRecordHandler := trainingrecord.NewHandler(trainingRecordService, certificateService)
	auditHandler := audit.NewHandler(auditService)
	billingHandler := billing.NewHandler(billingService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authLimiter, tokens, userRepo)

		tenantGroup := api.Group("")
		tenantGroup.Use(middleware.Auth(tokens, userRepo))
		{
			company.RegisterRoutes(tenantGroup, companyHandler)
			employee.RegisterRoutes(tenantGroup, employeeHandler)
			location.RegisterRoutes(tenantGroup, locationHandler)
			trainingrecord.RegisterRoutes(tenantGroup, trainingRecordHandler)
		}

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.FixedWindowByIP(adminLimiter))
		adminGroup.Use(middleware.Auth(tokens, userRepo))
		adminGroup.Use(middleware.RequireRoles(user.RoleSuperAdmin))
		{
			company.RegisterAdminRoutes(adminGroup, companyHandler)
			billing.RegisterAdminRoutes(adminGroup, billingHandler)
			audit.RegisterRoutes(adminGroup, auditHandler)
		}
	}

	return auditRecorder, nil
}
