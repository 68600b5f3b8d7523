package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-auth-session/token"
	"github.com/pkg/errors"
)

var _ token.AccessTokenGenerator = (*Minter)(nil)

// Minter issues signed JWT access tokens in place of opaque random strings.
// Every token carries a fresh jti so two tokens minted in the same second still differ.
type Minter struct {
	signer   Signer
	issuer   string
	audience string
}

type MinterOption func(*Minter)

func WithIssuer(issuer string) MinterOption {
	return func(m *Minter) {
		m.issuer = issuer
	}
}

func WithAudience(audience string) MinterOption {
	return func(m *Minter) {
		m.audience = audience
	}
}

func NewMinter(signer Signer, options ...MinterOption) *Minter {
	m := &Minter{signer: signer}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// GenerateAccessToken implements token.AccessTokenGenerator
func (m *Minter) GenerateAccessToken(subject string, issuedAt time.Time, validFor time.Duration) (string, error) {
	claims := jwtlib.MapClaims{
		"sub": subject,                       // The user the token was issued to
		"iat": issuedAt.Unix(),               // Issued At: the time at which the token was issued
		"exp": issuedAt.Add(validFor).Unix(), // Expiry: when the token will expire
		"jti": uuid.New().String(),           // Unique token ID
		"typ": token.TokenTypeBearer,         // How the token is presented
	}
	if m.issuer != "" {
		claims["iss"] = m.issuer
	}
	if m.audience != "" {
		claims["aud"] = m.audience
	}

	signed, err := m.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "Minter.GenerateAccessToken")
	}
	return signed, nil
}
