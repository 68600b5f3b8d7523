package verifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-auth-session/autherr"
	"golang.org/x/oauth2"
)

var _ Verifier = (*PasswordGrantVerifier)(nil)

// PasswordGrantVerifier checks credentials with the OAuth2 resource owner
// password grant against an identity provider's token endpoint. The provider's
// tokens are discarded; only the outcome of the exchange is reported.
type PasswordGrantVerifier struct {
	config     *oauth2.Config
	httpClient *http.Client
}

type PasswordGrantOption func(*PasswordGrantVerifier)

// WithHTTPClient sets the client used for the token exchange.
func WithHTTPClient(client *http.Client) PasswordGrantOption {
	return func(v *PasswordGrantVerifier) {
		v.httpClient = client
	}
}

func NewPasswordGrantVerifier(config *oauth2.Config, options ...PasswordGrantOption) *PasswordGrantVerifier {
	v := &PasswordGrantVerifier{config: config}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// NewPasswordGrantVerifierFromIssuer discovers the token endpoint from the
// issuer's /.well-known/openid-configuration document.
func NewPasswordGrantVerifierFromIssuer(ctx context.Context, issuer, clientID, clientSecret string, options ...PasswordGrantOption) (*PasswordGrantVerifier, error) {
	v := NewPasswordGrantVerifier(nil, options...)
	if v.httpClient != nil {
		ctx = oidc.ClientContext(ctx, v.httpClient)
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	v.config = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID},
	}
	return v, nil
}

func (v *PasswordGrantVerifier) Verify(ctx context.Context, username, password string) error {
	if v.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, v.httpClient)
	}

	_, err := v.config.PasswordCredentialsToken(ctx, username, password)
	if err == nil {
		return nil
	}

	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) || retrieveErr.Response == nil {
		return fmt.Errorf("token exchange: %w: %w", autherr.ErrNetworkError, err)
	}

	switch retrieveErr.ErrorCode {
	case "invalid_grant":
		return autherr.Wrapf(autherr.ErrInvalidCredentials, "identity provider rejected credentials")
	case "invalid_client", "unauthorized_client":
		return autherr.Wrapf(autherr.ErrInvalidConfiguration, "identity provider rejected client %q", v.config.ClientID)
	}
	return classifyStatus(retrieveErr.Response.StatusCode, "identity provider")
}
