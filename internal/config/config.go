package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultUserAgent    = "feednav/1.0 (+terminal)"
	defaultTimeout      = 15 * time.Second
	defaultTopBlocks    = 5
	defaultProbeWorkers = 8
	defaultWidth        = 100
)

const (
	FeedInvalidQuit     = "quit"
	FeedInvalidReprompt = "reprompt"
)

// Config holds runtime settings for the navigator.
type Config struct {
	UserAgent    string
	Timeout      time.Duration
	TopBlocks    int
	ProbeLinks   bool
	ProbeWorkers int
	FeedInvalid  string
	DebugLogPath string
	Width        int
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		UserAgent:    os.Getenv("FEEDNAV_USER_AGENT"),
		Timeout:      defaultTimeout,
		TopBlocks:    defaultTopBlocks,
		ProbeWorkers: defaultProbeWorkers,
		FeedInvalid:  os.Getenv("FEEDNAV_FEED_INVALID"),
		DebugLogPath: os.Getenv("FEEDNAV_DEBUG_LOG"),
		Width:        defaultWidth,
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.FeedInvalid == "" {
		cfg.FeedInvalid = FeedInvalidQuit
	}

	if raw := os.Getenv("FEEDNAV_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("FEEDNAV_TIMEOUT must be a duration: %w", err)
		}
		cfg.Timeout = d
	}

	var err error
	if cfg.TopBlocks, err = intFromEnv("FEEDNAV_TOP_BLOCKS", cfg.TopBlocks); err != nil {
		return Config{}, err
	}
	if cfg.ProbeWorkers, err = intFromEnv("FEEDNAV_PROBE_WORKERS", cfg.ProbeWorkers); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = intFromEnv("FEEDNAV_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}

	switch raw := os.Getenv("FEEDNAV_PROBE_LINKS"); raw {
	case "", "0", "false":
	case "1", "true":
		cfg.ProbeLinks = true
	default:
		return Config{}, fmt.Errorf("FEEDNAV_PROBE_LINKS must be 0 or 1: %s", raw)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.UserAgent == "" {
		return errors.New("UserAgent is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be positive: %s", c.Timeout)
	}
	if c.TopBlocks < 1 {
		return fmt.Errorf("TopBlocks must be at least 1: %d", c.TopBlocks)
	}
	if c.ProbeWorkers < 1 {
		return fmt.Errorf("ProbeWorkers must be at least 1: %d", c.ProbeWorkers)
	}
	if c.Width < 20 {
		return fmt.Errorf("Width must be at least 20: %d", c.Width)
	}
	if c.FeedInvalid != FeedInvalidQuit && c.FeedInvalid != FeedInvalidReprompt {
		return fmt.Errorf("FeedInvalid must be quit or reprompt: %s", c.FeedInvalid)
	}
	return nil
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %s", key, raw)
	}
	return n, nil
}
