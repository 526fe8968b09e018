package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v81"
	"go.uber.org/zap"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/audit"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/config"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/metrics"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/middleware"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/connection"
)

// BuildApp connects infrastructure and mounts every module on the router.
// The returned recorder must be closed on shutdown to drain pending audit
// writes.
func BuildApp(router *gin.Engine, cfg *config.Config) (*audit.Recorder, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return nil, err
	}

	if cfg.Stripe.Configured() {
		stripe.Key = cfg.Stripe.SecretKey
	} else {
		zap.L().Warn("stripe secret key not set, billing portal endpoints disabled")
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	metrics.RegisterEndpoint(router)

	return registerModules(router, cfg, sqlDB, gormDB, rdb)
}
