package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/eringen/folio"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := folio.SiteConfig{
		Name:        folio.EnvOr("SITE_NAME", "Sahabaj Alam"),
		URL:         folio.EnvOr("SITE_URL", "http://localhost:8000"),
		Description: folio.EnvOr("SITE_DESCRIPTION", "Personal portfolio and blog"),
		Author:      folio.EnvOr("SITE_AUTHOR", "Sahabaj Alam"),

		Addr:      folio.EnvOr("ADDR", ":8000"),
		DataDir:   folio.EnvOr("DATA_DIR", "data"),
		StaticDir: folio.EnvOr("STATIC_DIR", "static"),
		AssetsDir: folio.EnvOr("ASSETS_DIR", "assets"),

		ContactEmail: folio.EnvOr("CONTACT_EMAIL", ""),
		LinkedInURL:  folio.EnvOr("LINKEDIN_URL", ""),
		GitHubURL:    folio.EnvOr("GITHUB_URL", ""),
		TwitterURL:   folio.EnvOr("TWITTER_URL", ""),
		MediumURL:    folio.EnvOr("MEDIUM_URL", ""),

		AdminUsername: folio.EnvOr("ADMIN_USERNAME", "admin"),
		AdminPassword: folio.MustEnv("ADMIN_PASSWORD"),
		TOTPSecret:    folio.MustEnv("ADMIN_TOTP_SECRET"),
		TokenSecret:   folio.MustEnv("TOKEN_SECRET"),
		TokenTTL:      envDuration("TOKEN_TTL_MINUTES", 30) * time.Minute,
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",

		AllowedOrigins: splitCSV(os.Getenv("ALLOWED_ORIGINS")),

		AnalyticsEnabled:      os.Getenv("ANALYTICS_ENABLED") != "false",
		AnalyticsDatabasePath: folio.EnvOr("ANALYTICS_DB", "data/analytics.db"),
	}

	app := folio.New(cfg, folio.WithLogger(log))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		app.Close()
	}
}

func envDuration(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
