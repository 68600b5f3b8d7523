package jwt

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenIntrospection is the metadata carried by a minted access token.
// When Active is false the other fields may not be populated.
type TokenIntrospection struct {
	Active bool   `json:"active"`
	Sub    string `json:"sub,omitempty"`
	Iss    string `json:"iss,omitempty"`
	Aud    string `json:"aud,omitempty"`
	Jti    string `json:"jti,omitempty"`
	Iat    int64  `json:"iat,omitempty"`
	Exp    int64  `json:"exp,omitempty"`
}

// Introspect verifies rawToken's signature and reports whether it is still active at now.
func Introspect(rawToken string, signer Signer, now time.Time) (*TokenIntrospection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &TokenIntrospection{Active: false}, nil
	}

	// Expiry is judged against now below rather than the library's wall clock.
	parser := jwtlib.NewParser(jwtlib.WithoutClaimsValidation())
	token, err := parser.Parse(rawToken, signer.GetVerificationKey)
	if err != nil {
		return &TokenIntrospection{Active: false}, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return &TokenIntrospection{Active: false}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return &TokenIntrospection{Active: false}, errors.New("error extracting claims from token")
	}

	sub, _ := claims["sub"].(string)
	iss, _ := claims["iss"].(string)
	aud, _ := claims["aud"].(string)
	jti, _ := claims["jti"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	return &TokenIntrospection{
		Active: now.Unix() < int64(exp),
		Sub:    sub,
		Iss:    iss,
		Aud:    aud,
		Jti:    jti,
		Iat:    int64(iat),
		Exp:    int64(exp),
	}, nil
}
