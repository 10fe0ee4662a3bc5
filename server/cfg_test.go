package server

import (
	"os"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setenv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{"PORT", "SEAFLOOR_INPUT", "SEAFLOOR_STEP_DELAY", "SEAFLOOR_MAX_STEPS", "LOG_LEVEL"} {
		old, had := os.LookupEnv(key)
		if value, ok := env[key]; ok {
			os.Setenv(key, value)
		} else {
			os.Unsetenv(key)
		}
		key := key
		t.Cleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	setenv(t, nil)
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:      DEFAULT_PORT,
		Input:     DEFAULT_INPUT,
		StepDelay: DEFAULT_STEP_DELAY,
		LogLevel:  log.InfoLevel,
	}, cfg)
}

func TestConfigFromEnv(t *testing.T) {
	setenv(t, map[string]string{
		"PORT":                "9000",
		"SEAFLOOR_INPUT":      "floor.txt",
		"SEAFLOOR_STEP_DELAY": "250ms",
		"SEAFLOOR_MAX_STEPS":  "1000",
		"LOG_LEVEL":           "debug",
	})
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:      "9000",
		Input:     "floor.txt",
		StepDelay: 250 * time.Millisecond,
		MaxSteps:  1000,
		LogLevel:  log.DebugLevel,
	}, cfg)
}

func TestConfigInvalid(t *testing.T) {
	for key, value := range map[string]string{
		"SEAFLOOR_STEP_DELAY": "soon",
		"SEAFLOOR_MAX_STEPS":  "-1",
		"LOG_LEVEL":           "loud",
	} {
		t.Run(key, func(t *testing.T) {
			setenv(t, map[string]string{key: value})
			_, err := ConfigFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
	t.Run("zero delay", func(t *testing.T) {
		setenv(t, map[string]string{"SEAFLOOR_STEP_DELAY": "0s"})
		_, err := ConfigFromEnv()
		assert.Error(t, err)
	})
}
