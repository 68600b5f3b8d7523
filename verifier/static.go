package verifier

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/jrsteele09/go-auth-session/autherr"
	"github.com/jrsteele09/go-auth-session/config"
	"github.com/jrsteele09/go-auth-session/internal/utils"
)

// DefaultFailureRate is the probability of a simulated server error per verification.
const DefaultFailureRate = 0.05

// DefaultCredentials is the built-in username -> password table.
func DefaultCredentials() map[string]string {
	return map[string]string{
		"vincent": "pass123",
		"admin":   "admin123",
		"test":    "test123",
	}
}

var _ Verifier = (*StaticVerifier)(nil)

// StaticVerifier checks credentials against an in-memory table. It stands in
// for a remote identity provider: each call waits for the configured delay and
// may fail at random with a server error before the credentials are compared.
type StaticVerifier struct {
	credentials  map[string]string
	delay        time.Duration
	randomErrors bool
	failureRate  float64
	randFloat    func() float64
}

type StaticOption func(*StaticVerifier)

// WithCredentials replaces the credential table.
func WithCredentials(credentials map[string]string) StaticOption {
	return func(v *StaticVerifier) {
		v.credentials = make(map[string]string, len(credentials))
		for username, password := range credentials {
			v.credentials[username] = password
		}
	}
}

func WithDelay(delay time.Duration) StaticOption {
	return func(v *StaticVerifier) {
		v.delay = delay
	}
}

func WithRandomErrors(enabled bool) StaticOption {
	return func(v *StaticVerifier) {
		v.randomErrors = enabled
	}
}

func WithFailureRate(rate float64) StaticOption {
	return func(v *StaticVerifier) {
		v.failureRate = rate
	}
}

// WithRandFunc sets the source of uniform values in [0,1) used for fault injection (tests).
func WithRandFunc(randFloat func() float64) StaticOption {
	return func(v *StaticVerifier) {
		v.randFloat = randFloat
	}
}

// NewStaticVerifier builds a verifier over DefaultCredentials with no delay and random errors enabled.
func NewStaticVerifier(options ...StaticOption) *StaticVerifier {
	v := &StaticVerifier{
		credentials:  DefaultCredentials(),
		randomErrors: true,
		failureRate:  DefaultFailureRate,
		randFloat:    rand.Float64,
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// FromConfig builds a StaticVerifier using the delay and fault injection settings of cfg.
func FromConfig(cfg config.Config, options ...StaticOption) *StaticVerifier {
	base := []StaticOption{
		WithDelay(cfg.GetSimulatedNetworkDelay()),
		WithRandomErrors(!cfg.DisableRandomErrors),
	}
	return NewStaticVerifier(append(base, options...)...)
}

func (v *StaticVerifier) Verify(ctx context.Context, username, password string) error {
	if err := utils.Wait(ctx, v.delay); err != nil {
		return err
	}

	if v.randomErrors && v.randFloat() < v.failureRate {
		return autherr.Wrapf(autherr.ErrServerError, "simulated server error")
	}

	expected, ok := v.credentials[username]
	if !ok || expected != password {
		return autherr.ErrInvalidCredentials
	}
	return nil
}
