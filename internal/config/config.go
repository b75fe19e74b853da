// Package config provides configuration management for the course pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputCourses      = errors.New("analysis.input_courses is required")
	ErrMissingOutputDir         = errors.New("analysis.output_dir is required")
	ErrInvalidFuzzyThreshold    = errors.New("analysis.fuzzy.threshold must be between 0 and 100")
	ErrMissingBaseURL           = errors.New("scraper.base_url is required")
	ErrNoTerms                  = errors.New("scraper requires at least one term")
	ErrTermMissingLabel         = errors.New("term label is required")
	ErrTermMissingCode          = errors.New("term code must be positive")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidMaxDelay          = errors.New("retry.max_delay_ms must be at least initial_delay_ms")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig contains settings for the classification binaries.
type AnalysisConfig struct {
	InputCourses       string        `yaml:"input_courses"`
	InputEmptyPrefixes string        `yaml:"input_empty_prefixes"`
	OutputDir          string        `yaml:"output_dir"`
	Columns            ColumnsConfig `yaml:"columns"`
	Fuzzy              FuzzyConfig   `yaml:"fuzzy"`
}

// ColumnsConfig remaps the required course columns to non-default names.
type ColumnsConfig struct {
	Prefix      string `yaml:"prefix"`
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// FuzzyConfig controls the fuzzy matching backstop.
type FuzzyConfig struct {
	// Threshold is the minimum partial-ratio score, 0-100, that counts as
	// a fuzzy match. Lower values trade precision for recall.
	Threshold int `yaml:"threshold"`
	// Disable turns the fuzzy fallback off entirely for deterministic,
	// reproducible-without-dependency runs.
	Disable bool `yaml:"disable"`
}

// ScraperConfig contains settings for the catalog scraper.
type ScraperConfig struct {
	BaseURL        string       `yaml:"base_url"`
	Terms          []TermConfig `yaml:"terms"`
	PrefixesPath   string       `yaml:"prefixes_path"`
	OutputCSV      string       `yaml:"output_csv"`
	EmptyPrefixCSV string       `yaml:"empty_prefix_csv"`
	SleepMs        int          `yaml:"sleep_ms"`
	Retry          RetryPolicy  `yaml:"retry"`
}

// TermConfig identifies one academic term in the catalog.
type TermConfig struct {
	Label string `yaml:"label"`
	Code  int    `yaml:"code"`
}

// RetryPolicy defines retry behavior for transient scrape failures.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			InputCourses:       "outputs/courses.csv",
			InputEmptyPrefixes: "outputs/empty_prefixes.csv",
			OutputDir:          "outputs",
			Columns: ColumnsConfig{
				Prefix:      "prefix",
				Number:      "number",
				Title:       "title",
				Description: "description",
			},
			Fuzzy: FuzzyConfig{
				Threshold: 95,
			},
		},
		Scraper: ScraperConfig{
			BaseURL:        "https://catalog.nau.edu/Courses",
			PrefixesPath:   "prefixes.json",
			OutputCSV:      "outputs/courses.csv",
			EmptyPrefixCSV: "outputs/empty_prefixes.csv",
			SleepMs:        250,
			Terms: []TermConfig{
				{Label: "Fall 2025", Code: 1257},
				{Label: "Spring 2026", Code: 1261},
			},
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    500,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        30,
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Analysis.InputCourses == "" {
		return ErrMissingInputCourses
	}

	if c.Analysis.OutputDir == "" {
		return ErrMissingOutputDir
	}

	if c.Analysis.Fuzzy.Threshold < 0 || c.Analysis.Fuzzy.Threshold > 100 {
		return ErrInvalidFuzzyThreshold
	}

	if c.Scraper.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if len(c.Scraper.Terms) == 0 {
		return ErrNoTerms
	}

	for i, term := range c.Scraper.Terms {
		if term.Label == "" {
			return fmt.Errorf("%w: terms[%d]", ErrTermMissingLabel, i)
		}

		if term.Code <= 0 {
			return fmt.Errorf("%w: terms[%d]", ErrTermMissingCode, i)
		}
	}

	if c.Scraper.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Scraper.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	// A cap below the initial delay would silently zero out every backoff.
	if c.Scraper.Retry.MaxDelayMs < c.Scraper.Retry.InitialDelayMs {
		return ErrInvalidMaxDelay
	}

	if c.Scraper.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Scraper.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the HTTP timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// GetSleep returns the polite delay between catalog requests.
func (s *ScraperConfig) GetSleep() time.Duration {
	return time.Duration(s.SleepMs) * time.Millisecond
}
