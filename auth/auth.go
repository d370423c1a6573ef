// Package auth gates admin operations behind a two-factor login and a
// stateless signed session token. A successful login yields a signed JWT
// carrying the admin identity and an expiry; every later request verifies
// the token without any server-side session state.
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidTOTP        = errors.New("invalid one-time code")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrIdentityMismatch   = errors.New("token identity mismatch")
)

// Config holds the configured admin identity and token parameters.
type Config struct {
	Username      string
	Password      string
	TOTPSecret    string // base32, no padding
	SigningSecret string
	TokenTTL      time.Duration
}

// Gate validates credentials and issues/verifies session tokens.
type Gate struct {
	cfg Config
	now func() time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithNow overrides the clock, primarily for tests.
func WithNow(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// New creates a Gate. TokenTTL defaults to 30 minutes.
func New(cfg Config, opts ...Option) *Gate {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 30 * time.Minute
	}
	g := &Gate{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// TTL returns the configured session token lifetime.
func (g *Gate) TTL() time.Duration {
	return g.cfg.TokenTTL
}

// Login checks username, password, and TOTP code, and on success returns
// a signed session token expiring TTL from now.
func (g *Gate) Login(username, password, code string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.cfg.Password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	if !VerifyCode(g.cfg.TOTPSecret, code, g.now()) {
		return "", ErrInvalidTOTP
	}

	now := g.now()
	claims := jwt.RegisteredClaims{
		Subject:   g.cfg.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.cfg.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(g.cfg.SigningSecret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Authenticate verifies a session token (with or without the "Bearer "
// prefix used in the cookie value) and returns the embedded identity.
func (g *Gate) Authenticate(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	token = strings.TrimPrefix(token, "Bearer ")

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
	)
	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(g.cfg.SigningSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if claims.Subject != g.cfg.Username {
		return "", ErrIdentityMismatch
	}
	return claims.Subject, nil
}
