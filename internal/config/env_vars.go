package config

import (
	"os"
	"strconv"
	"time"
)

const (
	baseURLEnvVar = "RECO_API_BASE_URL"
	timeoutEnvVar = "RECO_API_TIMEOUT_SECONDS"
)

type EnvConfig interface {
	GetBaseURL() string
	GetTimeout() time.Duration
	GetEnv() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetBaseURL returns the base URL of the recommendation API, including the
// versioned prefix (e.g. "https://api.recoservice.io/v1").
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLEnvVar, "https://api.recoservice.io/v1")
}

// GetTimeout returns the per-request transport timeout.
func (EnvVars) GetTimeout() time.Duration {
	seconds := GetEnv(timeoutEnvVar, "30")
	if s, err := strconv.Atoi(seconds); err == nil && s > 0 {
		return time.Duration(s) * time.Second
	}
	return 30 * time.Second
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
