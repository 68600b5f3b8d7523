package config

import (
	"strings"
	"time"

	"github.com/jrsteele09/go-auth-session/autherr"
)

const (
	DefaultSimulatedNetworkDelay = 1 * time.Second
	DefaultTokenExpiry           = 3600 * time.Second
)

// Config is supplied once when a session manager is built and is read-only afterwards.
type Config struct {
	APIKey                string        // Identifies the embedding application in logs; never transmitted
	SimulatedNetworkDelay time.Duration // Delay applied to each verification round trip
	TokenExpiry           time.Duration // Validity of every issued access token
	DisableRandomErrors   bool          // Turns off the simulated 5% server failure
}

// New returns a Config for apiKey with all other settings at their defaults.
func New(apiKey string) Config {
	return Config{
		APIKey:                apiKey,
		SimulatedNetworkDelay: DefaultSimulatedNetworkDelay,
		TokenExpiry:           DefaultTokenExpiry,
	}
}

// Validate reports autherr.ErrInvalidConfiguration when the config cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return autherr.Wrapf(autherr.ErrInvalidConfiguration, "api key is required")
	}
	if c.SimulatedNetworkDelay < 0 {
		return autherr.Wrapf(autherr.ErrInvalidConfiguration, "simulated network delay must not be negative, got %s", c.SimulatedNetworkDelay)
	}
	if c.TokenExpiry <= 0 {
		return autherr.Wrapf(autherr.ErrInvalidConfiguration, "token expiry must be positive, got %s", c.TokenExpiry)
	}
	return nil
}

func (c Config) GetTokenExpiry() time.Duration {
	return c.TokenExpiry
}

func (c Config) GetSimulatedNetworkDelay() time.Duration {
	return c.SimulatedNetworkDelay
}

// GetRefreshDelay is the delay used for a refresh round trip, half of a full one.
func (c Config) GetRefreshDelay() time.Duration {
	return c.SimulatedNetworkDelay / 2
}

// MaskedAPIKey keeps the last four characters of the key for log output.
func (c Config) MaskedAPIKey() string {
	const visible = 4
	if len(c.APIKey) <= visible {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-visible) + c.APIKey[len(c.APIKey)-visible:]
}
