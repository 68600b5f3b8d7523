package verifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jrsteele09/go-auth-session/autherr"
)

const defaultVerifyPath = "/v1/credentials/verify"

var _ Verifier = (*HTTPVerifier)(nil)

// HTTPVerifier posts credentials as JSON to an identity service and maps the
// response status onto the verifier outcomes.
type HTTPVerifier struct {
	client *resty.Client
	path   string
}

type HTTPOption func(*HTTPVerifier)

func WithPath(path string) HTTPOption {
	return func(v *HTTPVerifier) {
		v.path = path
	}
}

func WithTimeout(timeout time.Duration) HTTPOption {
	return func(v *HTTPVerifier) {
		v.client.SetTimeout(timeout)
	}
}

func WithHeader(name, value string) HTTPOption {
	return func(v *HTTPVerifier) {
		v.client.SetHeader(name, value)
	}
}

func NewHTTPVerifier(baseURL string, options ...HTTPOption) *HTTPVerifier {
	v := &HTTPVerifier{
		client: resty.New().SetBaseURL(baseURL),
		path:   defaultVerifyPath,
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

type verifyRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (v *HTTPVerifier) Verify(ctx context.Context, username, password string) error {
	resp, err := v.client.R().
		SetContext(ctx).
		SetBody(verifyRequest{Username: username, Password: password}).
		Post(v.path)
	if err != nil {
		return fmt.Errorf("request %s: %w: %w", v.path, autherr.ErrNetworkError, err)
	}
	return classifyStatus(resp.StatusCode(), "identity service")
}
