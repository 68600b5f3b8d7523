// Package verifier decides whether a username/password pair is accepted.
//
// Every implementation reports one of three outcomes: nil on success,
// autherr.ErrInvalidCredentials when the pair is rejected, or
// autherr.ErrServerError when the backend failed. Remote implementations may
// also return autherr.ErrNetworkError when the backend could not be reached.
package verifier

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-auth-session/autherr"
)

type Verifier interface {
	Verify(ctx context.Context, username, password string) error
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(ctx context.Context, username, password string) error

func (f VerifierFunc) Verify(ctx context.Context, username, password string) error {
	return f(ctx, username, password)
}

// classifyStatus maps a non-2xx HTTP status from an identity backend onto the error taxonomy.
func classifyStatus(statusCode int, source string) error {
	switch {
	case statusCode >= 200 && statusCode <= 299:
		return nil
	case statusCode == http.StatusBadRequest,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		return autherr.Wrapf(autherr.ErrInvalidCredentials, "%s rejected credentials (%d)", source, statusCode)
	default:
		return autherr.Wrapf(autherr.ErrServerError, "%s returned %d %s", source, statusCode, http.StatusText(statusCode))
	}
}
