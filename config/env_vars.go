package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jrsteele09/go-auth-session/autherr"
)

const (
	apiKeyEnvVar              = "AUTH_API_KEY"
	networkDelayEnvVar        = "AUTH_SIMULATED_NETWORK_DELAY"
	tokenExpiryEnvVar         = "AUTH_TOKEN_EXPIRY_SECONDS"
	disableRandomErrorsEnvVar = "AUTH_DISABLE_RANDOM_ERRORS"
)

// FromEnv builds and validates a Config from the AUTH_* environment variables.
// Durations accept either Go duration syntax ("250ms") or plain seconds ("0.25").
func FromEnv() (Config, error) {
	cfg := New(GetEnv(apiKeyEnvVar, ""))

	var err error
	if v := GetEnv(networkDelayEnvVar, ""); v != "" {
		if cfg.SimulatedNetworkDelay, err = parseSeconds(v); err != nil {
			return Config{}, autherr.Wrapf(autherr.ErrInvalidConfiguration, "%s=%q", networkDelayEnvVar, v)
		}
	}
	if v := GetEnv(tokenExpiryEnvVar, ""); v != "" {
		if cfg.TokenExpiry, err = parseSeconds(v); err != nil {
			return Config{}, autherr.Wrapf(autherr.ErrInvalidConfiguration, "%s=%q", tokenExpiryEnvVar, v)
		}
	}
	if v := GetEnv(disableRandomErrorsEnvVar, ""); v != "" {
		if cfg.DisableRandomErrors, err = strconv.ParseBool(v); err != nil {
			return Config{}, autherr.Wrapf(autherr.ErrInvalidConfiguration, "%s=%q", disableRandomErrorsEnvVar, v)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseSeconds(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
