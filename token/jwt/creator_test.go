package jwt_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-auth-session/token/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretStr = "1234"

func TestMinterRoundTrip(t *testing.T) {
	signer := jwt.NewHMACSigner(secretStr)
	minter := jwt.NewMinter(signer, jwt.WithIssuer("com.testissuer"), jwt.WithAudience("api"))

	issued := time.Now().Truncate(time.Second)
	raw, err := minter.GenerateAccessToken("vincent", issued, time.Hour)
	require.NoError(t, err)

	info, err := jwt.Introspect(raw, signer, issued.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, info.Active)
	assert.Equal(t, "vincent", info.Sub)
	assert.Equal(t, "com.testissuer", info.Iss)
	assert.Equal(t, "api", info.Aud)
	assert.NotEmpty(t, info.Jti)
	assert.Equal(t, issued.Unix(), info.Iat)
	assert.Equal(t, issued.Add(time.Hour).Unix(), info.Exp)
}

func TestMinterTokensAreUnique(t *testing.T) {
	minter := jwt.NewMinter(jwt.NewHMACSigner(secretStr))
	issued := time.Now()

	first, err := minter.GenerateAccessToken("admin", issued, time.Minute)
	require.NoError(t, err)
	second, err := minter.GenerateAccessToken("admin", issued, time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestIntrospectExpired(t *testing.T) {
	signer := jwt.NewHMACSigner(secretStr)
	issued := time.Now()
	raw, err := jwt.NewMinter(signer).GenerateAccessToken("test", issued, time.Second)
	require.NoError(t, err)

	info, err := jwt.Introspect(raw, signer, issued.Add(2*time.Second))
	require.NoError(t, err)
	assert.False(t, info.Active)
}

func TestIntrospectWrongSecret(t *testing.T) {
	raw, err := jwt.NewMinter(jwt.NewHMACSigner(secretStr)).GenerateAccessToken("test", time.Now(), time.Hour)
	require.NoError(t, err)

	info, err := jwt.Introspect(raw, jwt.NewHMACSigner("other"), time.Now())
	require.Error(t, err)
	assert.False(t, info.Active)
}

func TestIntrospectEmpty(t *testing.T) {
	info, err := jwt.Introspect("  ", jwt.NewHMACSigner(secretStr), time.Now())
	require.NoError(t, err)
	assert.False(t, info.Active)
}

func TestHMACSignerRejectsOtherAlgorithms(t *testing.T) {
	_, err := jwt.NewHMACSigner(secretStr).GetVerificationKey(&jwtlib.Token{
		Method: jwtlib.SigningMethodNone,
		Header: map[string]any{"alg": "none"},
	})
	require.Error(t, err)
}

func TestIntrospectMalformedReportsError(t *testing.T) {
	info, err := jwt.Introspect("not.a.jwt", jwt.NewHMACSigner(secretStr), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
	assert.False(t, info.Active)
}
