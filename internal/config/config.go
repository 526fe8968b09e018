package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// devJWTSecret is the fallback signing secret for local development. It is a
// known security gap for anything beyond local use; production deployments
// must set JWT_SECRET.
const devJWTSecret = "safetysync-dev-secret"

type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Stripe struct {
	SecretKey         string
	PriceStarterID    string
	PriceProID        string
	PriceEnterpriseID string
}

// Config is read once at process start. Nothing else in the codebase touches
// os.Getenv directly.
type Config struct {
	AppEnv         string
	Port           string
	AppBaseURL     string
	AllowedOrigins []string

	JWTSecret string

	DB          Database
	RedisAddr   string
	KafkaBroker string

	Stripe Stripe
}

func (s Stripe) Configured() bool {
	return s.SecretKey != ""
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() Config {
	cfg := Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "3000"),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		DB: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "safetysync"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		Stripe: Stripe{
			SecretKey:         os.Getenv("STRIPE_SECRET_KEY"),
			PriceStarterID:    os.Getenv("STRIPE_PRICE_STARTER"),
			PriceProID:        os.Getenv("STRIPE_PRICE_PRO"),
			PriceEnterpriseID: os.Getenv("STRIPE_PRICE_ENTERPRISE"),
		},
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{cfg.AppBaseURL}
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
		zap.L().Warn("JWT_SECRET not set, using development fallback secret")
	}

	if !cfg.Stripe.Configured() {
		zap.L().Warn("STRIPE_SECRET_KEY not set, billing endpoints will respond 501")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
