package token

import (
	"crypto/rand"
	"fmt"
	"time"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Bytes at or above this bound are discarded so every character is equally likely.
const unbiasedBound = 256 - (256 % len(alphanumeric))

// AccessTokenGenerator mints the access-token string for a newly issued token.
type AccessTokenGenerator interface {
	GenerateAccessToken(subject string, issuedAt time.Time, validFor time.Duration) (string, error)
}

var _ AccessTokenGenerator = RandomGenerator{}

// RandomGenerator produces opaque alphanumeric access tokens.
type RandomGenerator struct {
	Length int
}

func (g RandomGenerator) GenerateAccessToken(string, time.Time, time.Duration) (string, error) {
	length := g.Length
	if length <= 0 {
		length = AccessTokenLength
	}
	return RandomString(length)
}

// RandomString returns n characters drawn uniformly from [A-Za-z0-9] using crypto/rand.
func RandomString(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+8)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= unbiasedBound {
				continue
			}
			out = append(out, alphanumeric[int(b)%len(alphanumeric)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// NewRefreshToken returns a fresh 64 character refresh token string.
func NewRefreshToken() (string, error) {
	return RandomString(RefreshTokenLength)
}
