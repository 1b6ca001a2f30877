package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Stylist StylistConfig `yaml:"stylist"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// GeminiConfig contains Google Gemini settings.
type GeminiConfig struct {
	APIKey        string  `yaml:"apiKey"`
	PrimaryModel  string  `yaml:"primaryModel"`
	FallbackModel string  `yaml:"fallbackModel"`
	Temperature   float32 `yaml:"temperature"`
}

// QuotaConfig is a sliding-window admission quota for one outbound call site.
type QuotaConfig struct {
	MaxCalls int           `yaml:"maxCalls"`
	Window   time.Duration `yaml:"window"`
}

// RetryConfig bounds the model attempt loop.
type RetryConfig struct {
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
}

// StylistConfig controls the recommendation pipeline.
type StylistConfig struct {
	Generation QuotaConfig `yaml:"generation"`
	Validation QuotaConfig `yaml:"validation"`
	Retry      RetryConfig `yaml:"retry"`
}

// CatalogConfig locates the static outfit catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	// Best effort: a missing .env file is fine.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_PRIMARY_MODEL"); v != "" {
		cfg.Gemini.PrimaryModel = v
	}
	if v := os.Getenv("GEMINI_FALLBACK_MODEL"); v != "" {
		cfg.Gemini.FallbackModel = v
	}
	if v := os.Getenv("GEMINI_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Gemini.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("STYLIST_GENERATION_MAX_CALLS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Stylist.Generation.MaxCalls = parsed
		}
	}
	if v := os.Getenv("STYLIST_GENERATION_WINDOW"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Stylist.Generation.Window = parsed
		}
	}
	if v := os.Getenv("STYLIST_VALIDATION_MAX_CALLS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Stylist.Validation.MaxCalls = parsed
		}
	}
	if v := os.Getenv("STYLIST_VALIDATION_WINDOW"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Stylist.Validation.Window = parsed
		}
	}
	if v := os.Getenv("STYLIST_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Stylist.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("STYLIST_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Stylist.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Gemini: GeminiConfig{
			PrimaryModel:  "gemini-1.5-pro",
			FallbackModel: "gemini-1.5-flash",
			Temperature:   0.7,
		},
		Stylist: StylistConfig{
			Generation: QuotaConfig{MaxCalls: 15, Window: time.Minute},
			Validation: QuotaConfig{MaxCalls: 20, Window: time.Minute},
			Retry: RetryConfig{
				MaxAttempts: 3,
				BaseBackoff: 2 * time.Second,
			},
		},
		Catalog: CatalogConfig{
			Path: "configs/catalog.yaml",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Gemini.PrimaryModel) == "" {
		return errors.New("gemini.primaryModel cannot be empty")
	}
	if strings.TrimSpace(c.Gemini.FallbackModel) == "" {
		return errors.New("gemini.fallbackModel cannot be empty")
	}
	if c.Stylist.Generation.MaxCalls <= 0 || c.Stylist.Generation.Window <= 0 {
		return errors.New("stylist.generation quota must be positive")
	}
	if c.Stylist.Validation.MaxCalls <= 0 || c.Stylist.Validation.Window <= 0 {
		return errors.New("stylist.validation quota must be positive")
	}
	if c.Stylist.Retry.MaxAttempts <= 0 {
		return errors.New("stylist.retry.maxAttempts must be positive")
	}
	if c.Stylist.Retry.BaseBackoff <= 0 {
		return errors.New("stylist.retry.baseBackoff must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
