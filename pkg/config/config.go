package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Upstream UpstreamConfig
	Listing  ListingConfig
	Session  SessionConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Cache    CacheConfig
	Audit    AuditConfig
}

// UpstreamConfig points at the remote Cosyll REST API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ListingConfig tunes listing pages.
type ListingConfig struct {
	PageSize    int
	MaxPageSize int
}

// SessionConfig describes how API session tokens are read and stored.
type SessionConfig struct {
	Secret       string
	CookieName   string
	CookieSecure bool
	CookieMaxAge time.Duration
	LoginPath    string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig governs caching of anonymous listing fetches.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// AuditConfig toggles the mutation audit trail.
type AuditConfig struct {
	Enabled bool
}

// ErrDefaultSecret is returned by Load when a production config still carries the
// development JWT secret.
var ErrDefaultSecret = errors.New("config: JWT_SECRET must be set when ENV=production")

const defaultJWTSecret = "dev_secret"

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that are only safe outside production.
func (c *Config) Validate() error {
	if c.Env == EnvProduction && (c.Session.Secret == "" || c.Session.Secret == defaultJWTSecret) {
		return ErrDefaultSecret
	}
	return nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(v.GetString("COSYLL_API_URL"), "/"),
		Timeout: parseDuration(v.GetString("COSYLL_API_TIMEOUT"), 30*time.Second),
	}

	pageSize := v.GetInt("LISTING_PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 12
	}
	maxPageSize := v.GetInt("LISTING_MAX_PAGE_SIZE")
	if maxPageSize < pageSize {
		maxPageSize = pageSize
	}
	cfg.Listing = ListingConfig{PageSize: pageSize, MaxPageSize: maxPageSize}

	cfg.Session = SessionConfig{
		Secret:       v.GetString("JWT_SECRET"),
		CookieName:   v.GetString("SESSION_COOKIE_NAME"),
		CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		CookieMaxAge: parseDuration(v.GetString("SESSION_COOKIE_MAX_AGE"), 24*time.Hour),
		LoginPath:    v.GetString("LOGIN_PATH"),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 2*time.Minute),
	}

	cfg.Audit = AuditConfig{
		Enabled: v.GetBool("ENABLE_AUDIT"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("COSYLL_API_URL", "http://localhost:8000/api/v1")
	v.SetDefault("COSYLL_API_TIMEOUT", "30s")

	v.SetDefault("LISTING_PAGE_SIZE", 12)
	v.SetDefault("LISTING_MAX_PAGE_SIZE", 48)

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("SESSION_COOKIE_NAME", "cosyll_session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SESSION_COOKIE_MAX_AGE", "24h")
	v.SetDefault("LOGIN_PATH", "/login")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "cosyll_web")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "2m")
	v.SetDefault("ENABLE_AUDIT", false)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
