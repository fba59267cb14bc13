package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"

	"github.com/forgo/users/api/internal/logging"
	"github.com/forgo/users/api/internal/model"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "APP_"

// Config holds all application configuration
type Config struct {
	Environment string        `mapstructure:"environment" env:"ENVIRONMENT" json:"environment"`
	Server      ServerConfig  `mapstructure:"server" envPrefix:"SERVER__" json:"server"`
	Logging     LoggingConfig `mapstructure:"logging" envPrefix:"LOGGING__" json:"logging"`
	CORS        CORSConfig    `mapstructure:"cors" envPrefix:"CORS__" json:"cors"`
	Seed        SeedConfig    `mapstructure:"seed" envPrefix:"SEED__" json:"seed"`
	Metrics     MetricsConfig `mapstructure:"metrics" envPrefix:"METRICS__" json:"metrics"`
	Tracing     TracingConfig `mapstructure:"tracing" envPrefix:"TRACING__" json:"tracing"`
	Stats       StatsConfig   `mapstructure:"stats" envPrefix:"STATS__" json:"stats"`

	// Files lists the config files that were merged, in order
	Files []string `mapstructure:"-" json:"files,omitempty"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host" env:"HOST" json:"host"`
	Port              int           `mapstructure:"port" env:"PORT" json:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" env:"READ_HEADER_TIMEOUT" json:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" env:"LEVEL" json:"level"`
	JSONFormat bool   `mapstructure:"json_format" env:"JSON_FORMAT" json:"json_format"`
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	Enabled bool     `mapstructure:"enabled" env:"ENABLED" json:"enabled"`
	Origins []string `mapstructure:"origins" env:"ORIGINS" envSeparator:"," json:"origins"`
}

// SeedConfig controls startup sample data
type SeedConfig struct {
	SampleData bool `mapstructure:"sample_data" env:"SAMPLE_DATA" json:"sample_data"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" env:"ENABLED" json:"enabled"`
}

// TracingConfig controls OpenTelemetry export
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled" env:"ENABLED" json:"enabled"`
	Endpoint    string `mapstructure:"endpoint" env:"ENDPOINT" json:"endpoint"`
	ServiceName string `mapstructure:"service_name" env:"SERVICE_NAME" json:"service_name"`
}

// StatsConfig controls the store size reporter
type StatsConfig struct {
	Interval time.Duration `mapstructure:"interval" env:"INTERVAL" json:"interval"`
}

// LoadOptions tells Load where to look
type LoadOptions struct {
	// Dir holds default.*, local.* and {environment}.* files. Defaults to "config".
	Dir string
	// File is an explicit config file merged after the directory files. It must exist.
	File string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.json_format", false)
	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("seed.sample_data", true)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "users-api")
	v.SetDefault("stats.interval", 30*time.Second)
}

// Load builds the configuration from defaults, config files and environment
// variables, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "config"
	}

	v := viper.New()
	setDefaults(v)

	environment := lookupEnv(opts.Environ, EnvPrefix+"ENVIRONMENT")
	if environment == "" {
		environment = v.GetString("environment")
	}

	var files []string
	v.AddConfigPath(dir)
	for _, name := range []string{"default", "local", environment} {
		v.SetConfigName(name)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return nil, model.Config(fmt.Sprintf("read %s config", name), err)
		}
		files = append(files, v.ConfigFileUsed())
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.MergeInConfig(); err != nil {
			return nil, model.Config("read "+opts.File, err)
		}
		files = append(files, opts.File)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, model.Config("decode config", err)
	}

	envOpts := env.Options{Prefix: EnvPrefix}
	if opts.Environ != nil {
		envOpts.Environment = opts.Environ
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return nil, model.Config("parse environment", err)
	}

	for i, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			files[i] = abs
		}
	}
	cfg.Files = files

	return &cfg, nil
}

func lookupEnv(environ map[string]string, key string) string {
	if environ != nil {
		return environ[key]
	}
	return os.Getenv(key)
}

// Address returns host:port for the HTTP listener
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks that all configuration values are usable.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Environment {
	case "development", "production", "test":
	default:
		errs = append(errs, fmt.Errorf("APP_ENVIRONMENT must be 'development', 'production', or 'test', got '%s'", c.Environment))
	}

	// Server validation
	if c.Server.Host == "" {
		errs = append(errs, errors.New("APP_SERVER__HOST is required"))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_SERVER__PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		errs = append(errs, errors.New("APP_SERVER__READ_HEADER_TIMEOUT must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("APP_SERVER__SHUTDOWN_TIMEOUT must be positive"))
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("APP_LOGGING__LEVEL: %w", err))
	}

	if c.CORS.Enabled && len(c.CORS.Origins) == 0 {
		errs = append(errs, errors.New("APP_CORS__ORIGINS must have at least one origin when CORS is enabled"))
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		errs = append(errs, errors.New("APP_TRACING__ENDPOINT is required when tracing is enabled"))
	}

	if c.Stats.Interval <= 0 {
		errs = append(errs, errors.New("APP_STATS__INTERVAL must be positive"))
	}

	if len(errs) == 0 {
		return nil
	}
	return model.Config("invalid configuration", errors.Join(errs...))
}
