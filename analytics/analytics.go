// Package analytics provides privacy-first page analytics for the
// portfolio site: visitors are counted via salted hashes, never raw IPs,
// and bot traffic is filtered out before it reaches the store.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Visit represents a single page view.
type Visit struct {
	ID        int64     `json:"-"`
	VisitorID string    `json:"visitor_id"` // anonymous fingerprint hash
	IPHash    string    `json:"-"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"` // Desktop, Mobile, Tablet
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitRequest is the beacon payload sent from the client.
type VisitRequest struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
}

// Stats holds aggregated analytics for a period.
type Stats struct {
	Period         string          `json:"period"`
	UniqueVisitors int             `json:"unique_visitors"`
	TotalViews     int             `json:"total_views"`
	TopPages       []PageStat      `json:"top_pages"`
	BrowserStats   []DimensionStat `json:"browsers"`
	ReferrerStats  []DimensionStat `json:"referrers"`
	DailyViews     []DailyView     `json:"daily_views"`
}

// PageStat is views per path.
type PageStat struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// DimensionStat is a count per dimension value (browser, referrer).
type DimensionStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyView is views per day.
type DailyView struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// Service hashes visitor identifiers with a per-installation salt that is
// generated once and persisted in the store's settings table.
type Service struct {
	store *Store
	salt  string
}

// NewService creates a Service, loading or generating the hash salt.
func NewService(store *Store) (*Service, error) {
	salt, err := store.GetSetting("hash_salt")
	if err != nil {
		return nil, fmt.Errorf("read hash salt: %w", err)
	}
	if salt == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		salt = hex.EncodeToString(b)
		if err := store.SetSetting("hash_salt", salt); err != nil {
			return nil, fmt.Errorf("store hash salt: %w", err)
		}
	}
	return &Service{store: store, salt: salt}, nil
}

// Store exposes the backing store for stats queries.
func (s *Service) Store() *Store {
	return s.store
}

// HashIP creates a salted SHA-256 hash of an IP address.
func (s *Service) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(s.salt + ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// VisitorID creates a salted fingerprint from IP and User-Agent.
func (s *Service) VisitorID(ip, userAgent string) string {
	h := sha256.New()
	h.Write([]byte(s.salt + ip + "|" + userAgent))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Record stores a page view unless the user agent looks like a bot.
func (s *Service) Record(ip string, req VisitRequest) error {
	if IsBot(req.UserAgent) {
		return nil
	}
	browser, osName, device := ParseUserAgent(req.UserAgent)
	return s.store.SaveVisit(&Visit{
		VisitorID: s.VisitorID(ip, req.UserAgent),
		IPHash:    s.HashIP(ip),
		Browser:   browser,
		OS:        osName,
		Device:    device,
		Path:      req.Path,
		Referrer:  CleanReferrer(req.Referrer),
		Timestamp: time.Now(),
	})
}

// ParseUserAgent extracts browser, OS, and device from a User-Agent string.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)

	// Order matters: more specific patterns before generic ones.
	switch {
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// Android before Linux since Android UAs contain "linux".
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	// iPad UAs contain "mobile", so check tablet first.
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}

	return
}

// IsBot checks if the User-Agent is likely a bot/crawler.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	bots := []string{
		"bot", "crawler", "spider", "crawl", "slurp", "scrape",
		"googlebot", "bingbot", "yandex", "baidu", "duckduckbot",
		"facebookexternalhit", "twitterbot", "linkedinbot",
	}
	for _, bot := range bots {
		if strings.Contains(ua, bot) {
			return true
		}
	}
	return false
}

var referrerDomainRe = regexp.MustCompile(`^https?://(?:www\.)?([^/]+)`)

// CleanReferrer reduces a referrer URL to a recognizable source name.
func CleanReferrer(ref string) string {
	if ref == "" {
		return "Direct"
	}
	refLower := strings.ToLower(ref)
	switch {
	case strings.Contains(refLower, "google."):
		return "Google"
	case strings.Contains(refLower, "bing."):
		return "Bing"
	case strings.Contains(refLower, "duckduckgo."):
		return "DuckDuckGo"
	case strings.Contains(refLower, "github."):
		return "GitHub"
	case strings.Contains(refLower, "linkedin."):
		return "LinkedIn"
	case strings.Contains(refLower, "medium."):
		return "Medium"
	}
	if m := referrerDomainRe.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return "Other"
}
