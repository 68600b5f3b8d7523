package jwt

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Signer signs the claims of a minted access token and hands Introspect the
// key to check that signature with.
type Signer interface {
	Sign(claims jwtlib.MapClaims) (string, error)
	GetVerificationKey(token *jwtlib.Token) (any, error)
}

var _ Signer = (*HMACSigner)(nil)

// HMACSigner signs access tokens with HS256 using a secret shared between the
// session manager and whoever introspects its tokens.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner returns a Signer keyed by secret. The secret should come from the
// embedding application's secret store, not from the session config's API key.
func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

// Sign produces the compact serialized JWT for claims.
func (h *HMACSigner) Sign(claims jwtlib.MapClaims) (string, error) {
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return "", errors.Wrap(err, "HMACSigner.Sign")
	}
	return signed, nil
}

// GetVerificationKey is a jwt.Keyfunc. Tokens signed with anything other than
// HMAC are refused so an "alg" header cannot downgrade verification.
func (h *HMACSigner) GetVerificationKey(token *jwtlib.Token) (any, error) {
	if _, ok := token.Method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("HMACSigner: unexpected signing method %v", token.Header["alg"])
	}
	return h.secret, nil
}
