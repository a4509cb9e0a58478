package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "change-me-jwt-secret"

type Config struct {
	AppEnv      string        `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr    string        `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL string        `envconfig:"DATABASE_URL" default:"file:fieldbooking.db?_pragma=foreign_keys(1)"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	JWTTTL      time.Duration `envconfig:"JWT_ACCESS_TTL" default:"30m"`
	PhoneRegion string        `envconfig:"PHONE_REGION" default:"VN"`

	// Embedded so envconfig does not prefix their keys.
	RateLimitConfig
	RedisConfig
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"3s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("config: loaded .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.PhoneRegion = strings.ToUpper(strings.TrimSpace(cfg.PhoneRegion))

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.RateLimitConfig.Enabled {
		if cfg.RateLimitConfig.Capacity < 1 {
			return fmt.Errorf("RATE_LIMIT_CAPACITY must be >= 1")
		}
		if cfg.RateLimitConfig.RefillTokens < 1 {
			return fmt.Errorf("RATE_LIMIT_REFILL_TOKENS must be >= 1")
		}
		if cfg.RateLimitConfig.RefillInterval <= 0 {
			return fmt.Errorf("RATE_LIMIT_REFILL_INTERVAL must be > 0")
		}
		if minTTL := 5 * cfg.RateLimitConfig.RefillInterval; cfg.RateLimitConfig.TTL < minTTL {
			cfg.RateLimitConfig.TTL = minTTL
		}
	}

	if IsProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
