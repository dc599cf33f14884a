// Package config handles application configuration loading and validation using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage backend names.
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`   // "json" or "postgres"
	JSONPath string `mapstructure:"json_path"` // data file for the json backend
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig contains PostgreSQL connection and pool settings.
type PostgresConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// CacheConfig contains Redis cache settings for the stats read path.
type CacheConfig struct {
	Enabled    bool        `mapstructure:"enabled"`
	TTLSeconds int         `mapstructure:"ttl_seconds"`
	Redis      RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// CatalogConfig points at an optional YAML override for the built-in
// achievement and team catalogs.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// MetricsConfig contains Prometheus exporter settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig contains application logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/fifa-rivals/")
	}

	// Defaults cover the zero-setup path: JSON file store, no cache.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.environment", "development")
	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.json_path", "data/db.json")
	v.SetDefault("cache.ttl_seconds", 60)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	// Explicit env bindings for 12-factor deployments.
	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("server.environment", "SERVER_ENVIRONMENT")

	_ = v.BindEnv("storage.backend", "STORAGE_BACKEND")
	_ = v.BindEnv("storage.json_path", "STORAGE_JSON_PATH")

	_ = v.BindEnv("database.postgres.host", "POSTGRES_HOST")
	_ = v.BindEnv("database.postgres.port", "POSTGRES_PORT")
	_ = v.BindEnv("database.postgres.database", "POSTGRES_DB")
	_ = v.BindEnv("database.postgres.user", "POSTGRES_USER")
	_ = v.BindEnv("database.postgres.password", "POSTGRES_PASSWORD")
	_ = v.BindEnv("database.postgres.ssl_mode", "POSTGRES_SSL_MODE")
	_ = v.BindEnv("database.postgres.max_open_conns", "POSTGRES_MAX_OPEN_CONNS")
	_ = v.BindEnv("database.postgres.max_idle_conns", "POSTGRES_MAX_IDLE_CONNS")
	_ = v.BindEnv("database.postgres.conn_max_lifetime", "POSTGRES_CONN_MAX_LIFETIME")

	_ = v.BindEnv("cache.enabled", "CACHE_ENABLED")
	_ = v.BindEnv("cache.ttl_seconds", "CACHE_TTL_SECONDS")
	_ = v.BindEnv("cache.redis.host", "REDIS_HOST")
	_ = v.BindEnv("cache.redis.port", "REDIS_PORT")
	_ = v.BindEnv("cache.redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("cache.redis.db", "REDIS_DB")
	_ = v.BindEnv("cache.redis.pool_size", "REDIS_POOL_SIZE")

	_ = v.BindEnv("catalog.path", "CATALOG_PATH")

	_ = v.BindEnv("metrics.enabled", "METRICS_ENABLED")
	_ = v.BindEnv("metrics.path", "METRICS_PATH")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")
	_ = v.BindEnv("logging.output", "LOG_OUTPUT")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON:
		if c.Storage.JSONPath == "" {
			return fmt.Errorf("storage.json_path is required for the json backend")
		}
	case BackendPostgres:
		if c.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required")
		}
		if c.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required")
		}
		if c.Database.Postgres.User == "" {
			return fmt.Errorf("database.postgres.user is required")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	if c.Cache.Enabled && c.Cache.Redis.Host == "" {
		return fmt.Errorf("cache.redis.host is required when the cache is enabled")
	}

	return nil
}
