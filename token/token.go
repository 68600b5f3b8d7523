package token

import (
	"time"

	"github.com/google/uuid"
)

const (
	TokenTypeBearer = "Bearer"

	AccessTokenLength  = 32
	RefreshTokenLength = 64
)

// Token is an issued access/refresh pair. It is a value type and is never
// modified after creation; a refresh produces a new Token.
type Token struct {
	ID           string        // Local identifier used to correlate log lines, never sent anywhere
	Subject      string        // Username the token was issued to
	AccessToken  string        // Credential for authenticated calls
	RefreshToken string        // Credential used to mint a new access token
	TokenType    string        // Always "Bearer"
	IssuedAt     time.Time     // Creation instant
	ValidFor     time.Duration // Lifetime of the access token from IssuedAt
}

// New assembles a Bearer token issued at issuedAt.
func New(subject, accessToken, refreshToken string, issuedAt time.Time, validFor time.Duration) Token {
	return Token{
		ID:           uuid.New().String(),
		Subject:      subject,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    TokenTypeBearer,
		IssuedAt:     issuedAt,
		ValidFor:     validFor,
	}
}

// ExpiresAt is IssuedAt + ValidFor.
func (t Token) ExpiresAt() time.Time {
	return t.IssuedAt.Add(t.ValidFor)
}

// ExpiresIn is the configured lifetime in whole seconds, as reported in an OAuth2 token response.
func (t Token) ExpiresIn() int {
	return int(t.ValidFor / time.Second)
}

// IsExpiredAt reports whether now is at or past the expiry instant.
func (t Token) IsExpiredAt(now time.Time) bool {
	return !now.Before(t.ExpiresAt())
}

func (t Token) IsExpired() bool {
	return t.IsExpiredAt(time.Now())
}

// RemainingAt is the validity left at now, never negative.
func (t Token) RemainingAt(now time.Time) time.Duration {
	remaining := t.ExpiresAt().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t Token) Remaining() time.Duration {
	return t.RemainingAt(time.Now())
}

// AuthorizationHeader returns the value for an HTTP Authorization header.
func (t Token) AuthorizationHeader() string {
	return t.TokenType + " " + t.AccessToken
}
