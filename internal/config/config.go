// Package config provides configuration loading and validation for the CLI
// and server. Values layer in ascending precedence: built-in defaults, an
// optional config file, RANKER_-prefixed environment variables, and any flags
// the command layer binds through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-ranker/internal/fetch"
	"github.com/jonathan/resume-ranker/internal/scoring"
)

// EnvPrefix is the prefix for environment variable overrides
// (RANKER_WORKERS, RANKER_SERVER_PORT, ...).
const EnvPrefix = "RANKER"

// configName is the config file searched in the working directory when no
// --config path is given.
const configName = "resume-ranker"

// Config carries every tunable of the ranking engine, server, and CLI.
type Config struct {
	// Weights tune the scoring formulas.
	Weights scoring.Weights `json:"weights" mapstructure:"weights"`

	// Workers caps pipeline concurrency; zero means one worker per CPU.
	Workers int `json:"workers" mapstructure:"workers"`
	// TopN is the default shortlist length.
	TopN int `json:"top_n" mapstructure:"top_n"`
	// TopSkills is how many corpus-wide skills a result reports.
	TopSkills int `json:"top_skills" mapstructure:"top_skills"`

	Server ServerConfig `json:"server" mapstructure:"server"`
	Fetch  FetchConfig  `json:"fetch" mapstructure:"fetch"`

	Debug bool `json:"debug" mapstructure:"debug"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Port             int           `json:"port" mapstructure:"port"`
	MaxUploadBytes   int64         `json:"max_upload_bytes" mapstructure:"max_upload_bytes"`
	MaxStoredResumes int           `json:"max_stored_resumes" mapstructure:"max_stored_resumes"`
	ResultTTL        time.Duration `json:"result_ttl" mapstructure:"result_ttl"`
	ShutdownTimeout  time.Duration `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	RateLimitPerMin  int           `json:"rate_limit_per_minute" mapstructure:"rate_limit_per_minute"`
}

// FetchConfig holds job posting retrieval settings.
type FetchConfig struct {
	Timeout    time.Duration `json:"timeout" mapstructure:"timeout"`
	UserAgent  string        `json:"user_agent" mapstructure:"user_agent"`
	UseBrowser bool          `json:"use_browser" mapstructure:"use_browser"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights:   scoring.DefaultWeights(),
		Workers:   0,
		TopN:      10,
		TopSkills: 10,
		Server: ServerConfig{
			Port:             8080,
			MaxUploadBytes:   10 << 20,
			MaxStoredResumes: 500,
			ResultTTL:        time.Hour,
			ShutdownTimeout:  10 * time.Second,
			RateLimitPerMin:  120,
		},
		Fetch: FetchConfig{
			Timeout:    30 * time.Second,
			UserAgent:  fetch.DefaultUserAgent,
			UseBrowser: false,
		},
	}
}

// Load builds the configuration from defaults, an optional config file, and
// environment variables. An empty path searches the working directory for
// resume-ranker.{yaml,json,toml}; a missing file there is not an error.
// Flags bound to viper by the command layer override everything else.
func Load(path string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		viper.SetConfigName(configName)
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every config key with viper so environment overrides
// resolve and unset keys fall back to DefaultConfig values.
func setDefaults() {
	d := DefaultConfig()

	viper.SetDefault("weights.skills", d.Weights.Skills)
	viper.SetDefault("weights.experience", d.Weights.Experience)
	viper.SetDefault("weights.education", d.Weights.Education)
	viper.SetDefault("weights.required", d.Weights.Required)
	viper.SetDefault("weights.preferred", d.Weights.Preferred)
	viper.SetDefault("weights.education_penalty", d.Weights.EducationPenalty)

	viper.SetDefault("workers", d.Workers)
	viper.SetDefault("top_n", d.TopN)
	viper.SetDefault("top_skills", d.TopSkills)

	viper.SetDefault("server.port", d.Server.Port)
	viper.SetDefault("server.max_upload_bytes", d.Server.MaxUploadBytes)
	viper.SetDefault("server.max_stored_resumes", d.Server.MaxStoredResumes)
	viper.SetDefault("server.result_ttl", d.Server.ResultTTL)
	viper.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	viper.SetDefault("server.rate_limit_per_minute", d.Server.RateLimitPerMin)

	viper.SetDefault("fetch.timeout", d.Fetch.Timeout)
	viper.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	viper.SetDefault("fetch.use_browser", d.Fetch.UseBrowser)

	viper.SetDefault("debug", d.Debug)
}

// MergeWithDefaults returns a copy with zero-valued fields filled from
// DefaultConfig. Workers stays as-is because zero means auto-detect.
func (c Config) MergeWithDefaults() Config {
	d := DefaultConfig()

	if c.Weights == (scoring.Weights{}) {
		c.Weights = d.Weights
	}
	if c.TopN == 0 {
		c.TopN = d.TopN
	}
	if c.TopSkills == 0 {
		c.TopSkills = d.TopSkills
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = d.Server.MaxUploadBytes
	}
	if c.Server.MaxStoredResumes == 0 {
		c.Server.MaxStoredResumes = d.Server.MaxStoredResumes
	}
	if c.Server.ResultTTL == 0 {
		c.Server.ResultTTL = d.Server.ResultTTL
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Server.RateLimitPerMin == 0 {
		c.Server.RateLimitPerMin = d.Server.RateLimitPerMin
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = d.Fetch.Timeout
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = d.Fetch.UserAgent
	}

	return c
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative, got %d", c.Workers)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("config error: 'top_n' must be positive, got %d", c.TopN)
	}
	if c.TopSkills <= 0 {
		return fmt.Errorf("config error: 'top_skills' must be positive, got %d", c.TopSkills)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: 'server.max_upload_bytes' must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if c.Server.MaxStoredResumes <= 0 {
		return fmt.Errorf("config error: 'server.max_stored_resumes' must be positive, got %d", c.Server.MaxStoredResumes)
	}
	if c.Server.ResultTTL <= 0 {
		return fmt.Errorf("config error: 'server.result_ttl' must be positive, got %v", c.Server.ResultTTL)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config error: 'server.shutdown_timeout' must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if c.Server.RateLimitPerMin <= 0 {
		return fmt.Errorf("config error: 'server.rate_limit_per_minute' must be positive, got %d", c.Server.RateLimitPerMin)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("config error: 'fetch.timeout' must be positive, got %v", c.Fetch.Timeout)
	}
	return nil
}
