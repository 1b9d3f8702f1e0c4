package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	AuthService struct {
		BaseURL        string        `mapstructure:"base_url"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"auth_service"`

	Store struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"store"`

	Prefs struct {
		PollInterval time.Duration `mapstructure:"poll_interval"`
	} `mapstructure:"prefs"`

	Monitoring struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"monitoring"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("auth_service.base_url", "http://127.0.0.1:4000")
	v.SetDefault("auth_service.request_timeout", 30*time.Second)
	v.SetDefault("store.host", "localhost")
	v.SetDefault("store.port", 6379)
	v.SetDefault("store.db", 0)
	v.SetDefault("prefs.poll_interval", 100*time.Millisecond)
	v.SetDefault("monitoring.port", 9091)
	v.SetDefault("monitoring.cors_allowed_origins", []string{"*"})
	v.SetDefault("monitoring.cors_allowed_methods", []string{"GET", "OPTIONS"})
	v.SetDefault("monitoring.cors_allowed_headers", []string{"Content-Type"})

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		logrus.Info("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logrus.Fatalf("config unmarshal error: %v", err)
	}

	// Override auth service endpoint from environment
	if base := os.Getenv("AUTH_SERVICE_URL"); base != "" {
		cfg.AuthService.BaseURL = base
	}

	// Override store settings from STORE_* environment variables
	// (K8s sets REDIS_SERVICE_HOST / REDIS_SERVICE_PORT for services)
	if host := os.Getenv("REDIS_SERVICE_HOST"); host != "" {
		cfg.Store.Host = host
	}
	if port := os.Getenv("REDIS_SERVICE_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Store.Port = n
		}
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Store.Password = pass
	}

	return &cfg
}
