package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"

	DefaultSessionTTL = 30 * 24 * time.Hour
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	PublicDir   string `toml:"public_dir"`
	UploadsPath string `toml:"uploads_path"`
	// max accepted multipart upload, in megabytes
	MaxUploadSizeMB int64 `toml:"max_upload_size_mb"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	DBDriver         string `toml:"db_driver"`
	SQLitePath       string `toml:"sqlite_path"`
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"-"`

	// sessions
	SessionStore        string        `toml:"session_store"`
	SessionTTL          time.Duration `toml:"-"`
	SessionTTLRaw       string        `toml:"session_ttl"`
	SessionCookieSecure bool          `toml:"session_cookie_secure"`
	SessionSecret       string        `toml:"-"`
	MemorySessionsSizeB int           `toml:"memory_sessions_size_bytes"`
	BcryptCost          int           `toml:"bcrypt_cost"`

	// redis
	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"-"`

	AllowedOrigins             []string `toml:"allowed_origins"`
	AuthRateLimitAllowedPerMin int      `toml:"auth_rate_limit_per_min"`
	// reverse proxies allowed to set X-Real-Ip / X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("env %s not present in config", env)
	}
	return cfg, nil
}

// Load reads the TOML file, picks the env section, and fills the
// secrets from the environment (optionally seeded from a .env file).
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load .env file: %s", err)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) ApplyEnv() {
	c.SessionSecret = os.Getenv("WARMACHINE_SESSION_SECRET")
	c.RedisPassword = os.Getenv("WARMACHINE_REDIS_PASS")
	c.PostgresPassword = os.Getenv("WARMACHINE_POSTGRES_PASS")
}

// Validate fills defaults and rejects unknown drivers and stores.
func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}

	if c.DBDriver == "" {
		c.DBDriver = DBDriverSQLite
	}
	switch c.DBDriver {
	case DBDriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite_path not set")
		}
	case DBDriverPostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			return errors.New("postgres_host and postgres_db_name must be set")
		}
	default:
		return fmt.Errorf("unknown db driver: %s", c.DBDriver)
	}

	if c.SessionStore == "" {
		c.SessionStore = SessionStoreMemory
	}
	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("redis_host and redis_port must be set for redis session store")
		}
	default:
		return fmt.Errorf("unknown session store: %s", c.SessionStore)
	}

	c.SessionTTL = DefaultSessionTTL
	if c.SessionTTLRaw != "" {
		ttl, err := time.ParseDuration(c.SessionTTLRaw)
		if err != nil {
			return fmt.Errorf("parse session_ttl: %w", err)
		}
		c.SessionTTL = ttl
	}

	if c.UploadsPath == "" {
		c.UploadsPath = "./uploads"
	}
	if c.MaxUploadSizeMB <= 0 {
		c.MaxUploadSizeMB = 5
	}
	if c.MemorySessionsSizeB <= 0 {
		c.MemorySessionsSizeB = 10 * 1024 * 1024
	}
	if c.AuthRateLimitAllowedPerMin <= 0 {
		c.AuthRateLimitAllowedPerMin = 10
	}

	return nil
}
