package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"item-service/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	MongoDB MongoDBConfig
}

type EnvironmentConfig struct {
	Name string
	Mode model.Mode
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowOrigins []string
}

type MongoDBConfig struct {
	URL            string
	Database       string // empty: taken from the URL path
	ConnectTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	rawMode := v.GetString("environment.mode")
	if mode := v.GetString("mode"); mode != "" {
		rawMode = mode
	}
	mode, ok := model.ParseMode(rawMode)
	if !ok {
		return nil, fmt.Errorf("invalid environment.mode %q: must be one of TEST, DEV, LIVE", rawMode)
	}
	cfg.Environment.Mode = mode

	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")

	cfg.Logger.Level = v.GetString("logger.level")
	if level := v.GetString("log_level"); level != "" {
		cfg.Logger.Level = level
	}
	cfg.Logger.Level = strings.ToLower(cfg.Logger.Level)
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// CORS: comma separated so it can come from a single env var
	rawOrigins := v.GetString("cors.allow_origins")
	if origins := v.GetString("allow_origins"); origins != "" {
		rawOrigins = origins
	}
	cfg.CORS.AllowOrigins = splitList(rawOrigins)

	// MongoDB
	cfg.MongoDB.URL = v.GetString("mongodb.url")
	cfg.MongoDB.Database = v.GetString("mongodb.database")
	cfg.MongoDB.ConnectTimeout = v.GetDuration("mongodb.connect_timeout")
	if mongoURL := v.GetString("mongodb_url"); mongoURL != "" {
		cfg.MongoDB.URL = mongoURL
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("environment.mode", string(model.ModeDev))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 0)
	v.SetDefault("http_server.shutdown_timeout", "5s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allow_origins", "http://localhost")

	// MongoDB defaults
	v.SetDefault("mongodb.url", "mongodb://localhost:27017/mydatabase")
	v.SetDefault("mongodb.connect_timeout", "5s")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative")
	}
	if cfg.Environment.Mode != model.ModeTest && cfg.MongoDB.URL == "" {
		return fmt.Errorf("mongodb.url is required outside TEST mode")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
