package token

// Response is the RFC 6749 token-endpoint representation of a Token, for
// embedding applications that forward the session's credentials as JSON.
type Response struct {
	// AccessToken is used in the header: "Authorization: Bearer <access_token>"
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token, counted from issue.
	ExpiresIn int `json:"expires_in"`

	// RefreshToken stays the same across refreshes of one session.
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (t Token) Response() Response {
	return Response{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		ExpiresIn:    t.ExpiresIn(),
		RefreshToken: t.RefreshToken,
	}
}
