// Package medium produces a best-effort structured summary of an external
// article URL for pre-filling the admin article form. Fetching tries a
// plain HTTP client first and falls back to the curl binary, which gets
// past some bot-blocking that rejects Go's default transport.
package medium

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"

	"github.com/rs/zerolog"
)

// ErrFetchFailed wraps the last transport error after both the HTTP client
// and the curl fallback have failed.
var ErrFetchFailed = errors.New("fetch failed")

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves remote HTML.
type Fetcher struct {
	client   *http.Client
	runCurl  func(ctx context.Context, url string) (string, error)
	lookPath func(file string) (string, error)
	log      zerolog.Logger
}

// NewFetcher creates a Fetcher using the given HTTP client, or
// http.DefaultClient when nil.
func NewFetcher(client *http.Client, log zerolog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, runCurl: runCurl, lookPath: exec.LookPath, log: log}
}

// Fetch retrieves the page body. A failed HTTP attempt falls back to curl
// when the binary is available; if both transports fail the last error is
// returned wrapped in ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.fetchHTTP(ctx, url)
	if err == nil {
		return body, nil
	}
	f.log.Warn().Str("url", url).Err(err).Msg("http fetch failed, trying curl")

	if _, lookErr := f.lookPath("curl"); lookErr == nil {
		if body, curlErr := f.runCurl(ctx, url); curlErr == nil {
			return body, nil
		} else {
			f.log.Warn().Str("url", url).Err(curlErr).Msg("curl fetch failed")
		}
	}
	return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func runCurl(ctx context.Context, url string) (string, error) {
	out, err := exec.CommandContext(ctx, "curl", "-L", "-A", userAgent, url).Output()
	if err != nil {
		return "", fmt.Errorf("curl: %w", err)
	}
	if len(out) == 0 {
		return "", errors.New("curl: empty response")
	}
	return string(out), nil
}
