package server

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/seafloor/model"
)

const (
	DEFAULT_PORT       = "8080"
	DEFAULT_INPUT      = model.DefaultInput
	DEFAULT_STEP_DELAY = 100 * time.Millisecond
)

type Config struct {
	Port      string
	Input     string
	StepDelay time.Duration
	// MaxSteps of zero lets a session run until the floor settles
	MaxSteps int
	LogLevel log.Level
}

// ConfigFromEnv reads PORT, SEAFLOOR_INPUT, SEAFLOOR_STEP_DELAY,
// SEAFLOOR_MAX_STEPS and LOG_LEVEL.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Port:      DEFAULT_PORT,
		Input:     DEFAULT_INPUT,
		StepDelay: DEFAULT_STEP_DELAY,
		LogLevel:  log.InfoLevel,
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	} else {
		log.Printf("Defaulting to port %s", cfg.Port)
	}
	if input := os.Getenv("SEAFLOOR_INPUT"); input != "" {
		cfg.Input = input
	}
	if delay := os.Getenv("SEAFLOOR_STEP_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return cfg, errors.Wrap(err, "SEAFLOOR_STEP_DELAY")
		}
		if d <= 0 {
			return cfg, errors.Errorf("SEAFLOOR_STEP_DELAY must be positive, got %s", d)
		}
		cfg.StepDelay = d
	}
	if limit := os.Getenv("SEAFLOOR_MAX_STEPS"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return cfg, errors.Wrap(err, "SEAFLOOR_MAX_STEPS")
		}
		if n < 0 {
			return cfg, errors.Errorf("SEAFLOOR_MAX_STEPS must not be negative, got %d", n)
		}
		cfg.MaxSteps = n
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			return cfg, errors.Wrap(err, "LOG_LEVEL")
		}
		cfg.LogLevel = l
	}
	return cfg, nil
}

// Load reads a fresh floor from the configured input.
func (c Config) Load() (*model.Floor, error) {
	f, err := model.LoadFile(c.Input)
	if err != nil {
		log.Printf("failed loading floor: %s", err)
		return nil, err
	}
	return f, nil
}
