// Package config loads service settings from a YAML file, .env files and
// the process environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/seo-optimizer/contentseo/rules"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "config.yaml"

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Stats     StatsConfig     `yaml:"stats"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type AnalysisConfig struct {
	Locale  string `yaml:"locale"`
	SiteURL string `yaml:"site_url"`
	Workers int    `yaml:"workers"`
}

type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	MaxCacheSize      int           `yaml:"max_cache_size"`
	ConvertToMarkdown bool          `yaml:"convert_to_markdown"`
}

type StatsConfig struct {
	DataDir      string `yaml:"data_dir"`
	RetainMonths int    `yaml:"retain_months"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8082,
			GinMode: gin.ReleaseMode,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Analysis: AnalysisConfig{
			Locale:  string(rules.DefaultLocale),
			Workers: 4,
		},
		Fetch: FetchConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "SEOAnalyzer/1.0",
			CacheTTL:     10 * time.Minute,
			MaxCacheSize: 1000,
		},
		Stats: StatsConfig{
			DataDir:      "data",
			RetainMonths: 12,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies .env
// files and environment overrides. A missing file is not an error; an
// empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	loadEnv()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnv populates the environment from .env.development, falling back to
// .env. Variables already set are left alone.
func loadEnv() {
	if err := godotenv.Load(".env.development"); err != nil {
		_ = godotenv.Load()
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("GIN_MODE"); ok && v != "" {
		c.Server.GinMode = v
	}
	if v, ok := lookup("SEO_LOCALE"); ok && v != "" {
		c.Analysis.Locale = v
	}
	if v, ok := lookup("SEO_SITE_URL"); ok {
		c.Analysis.SiteURL = v
	}
	if v, ok := lookup("SEO_DATA_DIR"); ok && v != "" {
		c.Stats.DataDir = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup("DEV_MODE"); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEV_MODE %q: %w", v, err)
		}
		c.Logging.Development = dev
	}
	return nil
}

// Validate checks settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	switch c.Server.GinMode {
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("server.gin_mode %q is not one of release, debug, test", c.Server.GinMode))
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate_limit values must be positive"))
	}
	if _, err := rules.ParseLocale(c.Analysis.Locale); err != nil {
		errs = append(errs, err)
	}
	if c.Analysis.Workers <= 0 {
		errs = append(errs, fmt.Errorf("analysis.workers must be positive, got %d", c.Analysis.Workers))
	}
	if c.Fetch.Timeout < 0 || c.Fetch.CacheTTL < 0 {
		errs = append(errs, errors.New("fetch durations must not be negative"))
	}
	if c.Fetch.MaxCacheSize < 0 {
		errs = append(errs, errors.New("fetch.max_cache_size must not be negative"))
	}
	if strings.TrimSpace(c.Stats.DataDir) == "" {
		errs = append(errs, errors.New("stats.data_dir is required"))
	}
	return errors.Join(errs...)
}

// Locale returns the validated analysis locale.
func (c *Config) Locale() rules.Locale {
	l, err := rules.ParseLocale(c.Analysis.Locale)
	if err != nil {
		return rules.DefaultLocale
	}
	return l
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
