package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/auth"
)

const testSecret = "JBSWY3DPEHPK3PXP"

func testGate(t *testing.T, now time.Time) *auth.Gate {
	t.Helper()
	return auth.New(auth.Config{
		Username:      "admin",
		Password:      "hunter2",
		TOTPSecret:    testSecret,
		SigningSecret: "signing-secret",
		TokenTTL:      30 * time.Minute,
	}, auth.WithNow(func() time.Time { return now }))
}

func TestLoginIssuesTokenWithExpectedClaims(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gate := testGate(t, now)

	code, err := auth.CodeAt(testSecret, now)
	require.NoError(t, err)

	token, err := gate.Login("admin", "hunter2", code)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Validate claims against the injected clock, not the wall clock.
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithTimeFunc(func() time.Time { return now }))
	_, err = parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("signing-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, now.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestLoginRejectsWrongFactors(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gate := testGate(t, now)

	code, err := auth.CodeAt(testSecret, now)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		code     string
		want     error
	}{
		{"wrong username", "root", "hunter2", code, auth.ErrInvalidCredentials},
		{"wrong password", "admin", "letmein", code, auth.ErrInvalidCredentials},
		{"wrong code", "admin", "hunter2", "000001", auth.ErrInvalidTOTP},
		{"empty code", "admin", "hunter2", "", auth.ErrInvalidTOTP},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := gate.Login(tc.username, tc.password, tc.code)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, token)
		})
	}
}

func TestLoginRejectsStaleCode(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gate := testGate(t, now)

	// Codes drift out of the accepted window after a couple of steps.
	stale, err := auth.CodeAt(testSecret, now.Add(-5*time.Minute))
	require.NoError(t, err)

	_, err = gate.Login("admin", "hunter2", stale)
	assert.ErrorIs(t, err, auth.ErrInvalidTOTP)
}

func TestAuthenticateRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gate := testGate(t, now)

	code, err := auth.CodeAt(testSecret, now)
	require.NoError(t, err)
	token, err := gate.Login("admin", "hunter2", code)
	require.NoError(t, err)

	identity, err := gate.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity)

	// Cookie values carry a Bearer prefix.
	identity, err = gate.Authenticate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity)
}

func TestAuthenticateMissingToken(t *testing.T) {
	gate := testGate(t, time.Now())
	_, err := gate.Authenticate("")
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	gate := testGate(t, time.Now())
	_, err := gate.Authenticate("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthenticateWrongSignature(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gate := testGate(t, now)

	other := auth.New(auth.Config{
		Username:      "admin",
		Password:      "hunter2",
		TOTPSecret:    testSecret,
		SigningSecret: "different-secret",
	}, auth.WithNow(func() time.Time { return now }))

	code, err := auth.CodeAt(testSecret, now)
	require.NoError(t, err)
	token, err := other.Login("admin", "hunter2", code)
	require.NoError(t, err)

	_, err = gate.Authenticate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	current := issued

	gate := auth.New(auth.Config{
		Username:      "admin",
		Password:      "hunter2",
		TOTPSecret:    testSecret,
		SigningSecret: "signing-secret",
		TokenTTL:      30 * time.Minute,
	}, auth.WithNow(func() time.Time { return current }))

	code, err := auth.CodeAt(testSecret, issued)
	require.NoError(t, err)
	token, err := gate.Login("admin", "hunter2", code)
	require.NoError(t, err)

	// Valid right up to the TTL, expired after.
	current = issued.Add(29 * time.Minute)
	_, err = gate.Authenticate(token)
	require.NoError(t, err)

	current = issued.Add(31 * time.Minute)
	_, err = gate.Authenticate(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestAuthenticateIdentityMismatch(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	issuer := auth.New(auth.Config{
		Username:      "someone-else",
		Password:      "hunter2",
		TOTPSecret:    testSecret,
		SigningSecret: "signing-secret",
	}, auth.WithNow(func() time.Time { return now }))

	code, err := auth.CodeAt(testSecret, now)
	require.NoError(t, err)
	token, err := issuer.Login("someone-else", "hunter2", code)
	require.NoError(t, err)

	gate := testGate(t, now)
	_, err = gate.Authenticate(token)
	assert.ErrorIs(t, err, auth.ErrIdentityMismatch)
}
