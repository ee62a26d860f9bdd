// Package config loads server settings from flags, environment, .env files
// and an optional config file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

// EnvPrefix is prepended to every environment variable, e.g. MONSTER_HTTP_ADDR
const EnvPrefix = "MONSTER"

// Config is the full server configuration
type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Ops       OpsConfig       `mapstructure:"ops"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Static    StaticConfig    `mapstructure:"static"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Log       LogConfig       `mapstructure:"log"`
}

// HTTPConfig configures the JSON API listener
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	AllowOrigins    []string      `mapstructure:"allow_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// OpsConfig configures the gRPC health listener
type OpsConfig struct {
	Addr           string        `mapstructure:"addr"`
	HealthInterval time.Duration `mapstructure:"health_interval"`
}

// RedisConfig selects the storage backend. An empty Addr keeps everything
// in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	TLS      bool   `mapstructure:"tls"`
}

// AssetsConfig points at the seed asset tree
type AssetsConfig struct {
	Dir string `mapstructure:"dir"`
}

// StaticConfig points at the front end served at /. Empty serves only the API.
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

// WorkspaceConfig tunes editor sessions
type WorkspaceConfig struct {
	Eligibility  string  `mapstructure:"eligibility"`
	PointerScale float64 `mapstructure:"pointer_scale"`
	// SessionTTL reclaims sessions left idle this long
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// CatalogConfig sizes the cropped-part cache
type CatalogConfig struct {
	CacheMB int64 `mapstructure:"cache_mb"`
}

// LogConfig configures the default logger
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File enables rotating file output instead of stderr
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// SetDefaults registers every key so env overrides resolve during Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":3232")
	v.SetDefault("http.allow_origins", []string{})
	v.SetDefault("http.shutdown_timeout", 30*time.Second)
	v.SetDefault("ops.addr", ":50051")
	v.SetDefault("ops.health_interval", 15*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.tls", false)
	v.SetDefault("assets.dir", "assets")
	v.SetDefault("static.dir", "")
	v.SetDefault("workspace.eligibility", workspace.PolicyGlobal)
	v.SetDefault("workspace.pointer_scale", 1.0)
	v.SetDefault("workspace.session_ttl", 2*time.Hour)
	v.SetDefault("catalog.cache_mb", 32)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
}

// Load reads .env files (missing ones are skipped), the optional config
// file and the environment into a validated Config.
func Load(v *viper.Viper, configFile string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load env file "+f)
		}
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late at startup
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("http.addr", c.HTTP.Addr, vb)
	errors.ValidateRequired("ops.addr", c.Ops.Addr, vb)
	if c.Ops.HealthInterval <= 0 {
		vb.Field("ops.health_interval", "must be positive")
	}
	errors.ValidateEnum("workspace.eligibility", c.Workspace.Eligibility,
		[]string{workspace.PolicyGlobal, workspace.PolicyPerSource}, vb)
	if c.Workspace.PointerScale <= 0 {
		vb.Field("workspace.pointer_scale", "must be positive")
	}
	if c.Workspace.SessionTTL <= 0 {
		vb.Field("workspace.session_ttl", "must be positive")
	}
	if c.Catalog.CacheMB <= 0 {
		vb.Field("catalog.cache_mb", "must be positive")
	}
	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", strings.ToLower(c.Log.Format), []string{"text", "json"}, vb)

	return vb.Build()
}
