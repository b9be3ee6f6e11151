package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	Backend   BackendConfig
	Catalog   CatalogConfig
	Cache     CacheConfig
	Discount  DiscountConfig
	RateLimit RateLimitConfig
	Log       LogConfig

	// JWT Configuration
	JWTSecret        string
	JWTAccessExpire  time.Duration
	JWTRefreshExpire time.Duration

	// Redis Configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// BackendConfig points at the remote fitness backend.
type BackendConfig struct {
	BaseURL    string
	Timeout    time.Duration
	AuthScheme string
}

type CatalogConfig struct {
	PageSize      int
	SiblingCount  int
	BoundaryCount int
}

type CacheConfig struct {
	MembershipTTL time.Duration
}

// DiscountConfig drives the discount countdown. EndsAt is RFC 3339; when empty
// the offer ends Span after the service starts.
type DiscountConfig struct {
	Span   time.Duration
	EndsAt string
}

// EndTime parses EndsAt, returning the zero time when it is unset or malformed.
func (d DiscountConfig) EndTime() time.Time {
	if strings.TrimSpace(d.EndsAt) == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, d.EndsAt)
	if err != nil {
		log.Warnf("ignoring malformed discount.ends_at %q: %v", d.EndsAt, err)
		return time.Time{}
	}
	return t
}

// RateLimitConfig bounds requests per client IP on the account endpoints.
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

type LogConfig struct {
	Level string
}

const DefaultBackendURL = "https://algo-fit-backend.vercel.app/api/v1"

func setDefaults(v *viper.Viper) {
	v.SetDefault("servicehost", "0.0.0.0")
	v.SetDefault("serviceport", 8080)
	v.SetDefault("backend.baseurl", DefaultBackendURL)
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.authscheme", "JWT")
	v.SetDefault("catalog.pagesize", 10)
	v.SetDefault("catalog.siblingcount", 1)
	v.SetDefault("catalog.boundarycount", 1)
	v.SetDefault("cache.membershipttl", "5m")
	v.SetDefault("discount.span", "600h")
	v.SetDefault("discount.endsat", "")
	v.SetDefault("ratelimit.persecond", 1.0)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("log.level", "info")
}

func NewConfig() (*Config, error) {
	var err error

	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	if dir := os.Getenv("CONFIG_PATH"); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Warnf("config file %q not found, using defaults", configName)
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-default-secret-key-for-development-change-in-production"
		log.Warn("Using default JWT secret - change in production!")
	}
	cfg.JWTSecret = jwtSecret

	cfg.JWTAccessExpire = getDuration("JWT_ACCESS_EXPIRE", 24*time.Hour)
	cfg.JWTRefreshExpire = getDuration("JWT_REFRESH_EXPIRE", 168*time.Hour)

	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}
	cfg.RedisDB = redisDB

	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")

	log.Info("config parsed")

	return cfg, nil
}

// ApplyLogLevel sets the logrus level from Log.Level, keeping info on bad input.
func (c *Config) ApplyLogLevel() {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", c.Log.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			return parsed
		}
	}
	return defaultValue
}
