package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

//go:embed default_config.toml
var defaultConfigToml string

const (
	envPostgresURL = "AGP_POSTGRES_URL"
	envRedisHost   = "AGP_REDIS_HOST"
	envRedisPort   = "AGP_REDIS_PORT"
)

type Config struct {
	Environment string `toml:"-"`

	Host                  string `toml:"host"`
	Port                  int    `toml:"port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresURL      string `toml:"postgres_url"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	RedisHost        string `toml:"redis_host"`
	RedisPort        string `toml:"redis_port"`

	// program
	ProgramTimezone    string `toml:"program_timezone"`
	StreakHistoryLimit int    `toml:"streak_history_limit"`

	// http
	SessionTTLHours             int      `toml:"session_ttl_hours"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	ProfileCacheSizeMB          int      `toml:"profile_cache_size_mb"`
	AllowedOrigins              []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
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
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML config at configPath (falling back to the embedded
// defaults when the file does not exist), picks the section for env and
// applies environment overrides. A .env file in the working dir is loaded
// first, if present.
func Load(env, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("load .env file: %s", err)
	}

	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("decode config file [%s]: %w", configPath, err)
		}
		log.Warnf("config file [%s] not found, using embedded defaults", configPath)
		if _, err := toml.Decode(defaultConfigToml, &t); err != nil {
			return nil, fmt.Errorf("decode embedded config: %w", err)
		}
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envPostgresURL); v != "" {
		c.PostgresURL = v
	}
	if v := os.Getenv(envRedisHost); v != "" {
		c.RedisHost = v
	}
	if v := os.Getenv(envRedisPort); v != "" {
		c.RedisPort = v
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("port must be positive, got %d", c.Port)
	}
	if c.PostgresURL == "" {
		return errors.New("postgres url not set")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.StreakHistoryLimit <= 0 {
		return fmt.Errorf("streak history limit must be positive, got %d", c.StreakHistoryLimit)
	}
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("session ttl must be positive, got %d", c.SessionTTLHours)
	}
	return nil
}

// Location returns the time zone program days are counted in.
func (c *Config) Location() (*time.Location, error) {
	if c.ProgramTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.ProgramTimezone)
	if err != nil {
		return nil, fmt.Errorf("load program timezone [%s]: %w", c.ProgramTimezone, err)
	}
	return loc, nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
