package folio

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:8000")
	Description string // Site description for meta tags and JSON-LD
	Author      string // Author name for JSON-LD

	Addr      string // Listen address (default ":8000")
	DataDir   string // Article store root (default "data")
	StaticDir string // Static assets directory (default "static")
	AssetsDir string // Image assets directory (default "assets")

	ContactEmail string
	LinkedInURL  string
	GitHubURL    string
	TwitterURL   string
	MediumURL    string

	AdminUsername string        // Required: admin login username
	AdminPassword string        // Required: admin login password
	TOTPSecret    string        // Required: base32 TOTP shared secret
	TokenSecret   string        // Required: session token signing secret
	TokenTTL      time.Duration // Session token lifetime (default 30min)
	CookieSecure  bool          // Set true for HTTPS deployments

	AllowedOrigins []string // CORS origins for the JSON API

	AnalyticsEnabled      bool
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8000"
	}
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.AssetsDir == "" {
		c.AssetsDir = "assets"
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 30 * time.Minute
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the application logger (default: zerolog to stderr).
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback
// if it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or panics
// if it is unset. Used for secrets that must never fall back to a default.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic("folio: required environment variable " + key + " is not set")
	}
	return v
}
