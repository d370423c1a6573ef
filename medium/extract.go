package medium

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const defaultReadTime = 5

// Summary is the best-effort metadata extracted from an article page.
// Extraction never fails; inconclusive fields get defaults.
type Summary struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	URL           string `json:"url"`
	ReadTime      int    `json:"read_time"`
	PublishedDate string `json:"published_date"`
}

// Extractor turns raw page HTML into a Summary.
type Extractor struct {
	now func() time.Time
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithNow overrides the clock used for the published-date fallback.
func WithNow(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	apolloStateRe = regexp.MustCompile(`(?s)window\.__APOLLO_STATE__\s*=\s*(\{.+?\})</script>`)
	urlPostIDRe   = regexp.MustCompile(`-([a-f0-9]+)$`)
	minReadRe     = regexp.MustCompile(`^(\d+)\s+min read`)
)

// Extract parses meta tags and the embedded Apollo state blob, resolving
// each field through an ordered list of strategies with a hardcoded final
// default. The fallback order is the contract:
//
//	read time:  apollo readingTime -> twitter:data1 "N min read" -> 5
//	published:  apollo firstPublishedAt -> apollo updatedAt
//	            -> article:published_time meta -> extraction time
func (e *Extractor) Extract(doc, originalURL string) Summary {
	meta := scanMeta(doc)
	post := findApolloPost(doc, originalURL, meta["og:title"])

	readTime := defaultReadTime
	if v, ok := readTimeFromPost(post); ok {
		readTime = v
	} else if v, ok := readTimeFromMeta(meta["twitter:data1"]); ok {
		readTime = v
	}

	published := ""
	if v, ok := publishedFromPost(post); ok {
		published = v
	} else if v := meta["article:published_time"]; v != "" {
		published = v
	} else {
		published = e.now().Format(time.RFC3339)
	}

	description := meta["og:description"]
	if description == "" {
		description = meta["description"]
	}
	pageURL := meta["og:url"]
	if pageURL == "" {
		pageURL = originalURL
	}

	return Summary{
		Title:         meta["og:title"],
		Description:   description,
		Image:         meta["og:image"],
		URL:           pageURL,
		ReadTime:      readTime,
		PublishedDate: published,
	}
}

// scanMeta collects og:* properties plus the description, twitter:data1,
// and article:published_time meta tags.
func scanMeta(doc string) map[string]string {
	meta := make(map[string]string)
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return meta
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		name, hasAttr := z.TagName()
		if string(name) != "meta" || !hasAttr {
			continue
		}
		attrs := make(map[string]string, 3)
		for {
			k, v, more := z.TagAttr()
			attrs[string(k)] = string(v)
			if !more {
				break
			}
		}
		if prop := attrs["property"]; strings.HasPrefix(prop, "og:") {
			meta[prop] = attrs["content"]
		} else if n := attrs["name"]; n == "description" || n == "twitter:data1" || n == "article:published_time" {
			meta[n] = attrs["content"]
		}
	}
}

// findApolloPost locates the post record inside the page's embedded
// Apollo state: first by the hex ID at the end of the URL, then by title
// equality with og:title. With duplicate titles the first match in
// iteration order wins; this is best-effort, not a guaranteed match.
func findApolloPost(doc, originalURL, ogTitle string) map[string]any {
	m := apolloStateRe.FindStringSubmatch(doc)
	if m == nil {
		return nil
	}
	var state map[string]json.RawMessage
	if err := json.Unmarshal([]byte(m[1]), &state); err != nil {
		return nil
	}

	if idm := urlPostIDRe.FindStringSubmatch(originalURL); idm != nil {
		if post := decodePost(state["Post:"+idm[1]]); post != nil {
			return post
		}
	}
	if ogTitle == "" {
		return nil
	}
	for key, raw := range state {
		if !strings.HasPrefix(key, "Post:") {
			continue
		}
		if post := decodePost(raw); post != nil {
			if title, _ := post["title"].(string); title == ogTitle {
				return post
			}
		}
	}
	return nil
}

func decodePost(raw json.RawMessage) map[string]any {
	if raw == nil {
		return nil
	}
	var post map[string]any
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil
	}
	return post
}

func readTimeFromPost(post map[string]any) (int, bool) {
	if post == nil {
		return 0, false
	}
	v, ok := post["readingTime"].(float64)
	if !ok {
		return 0, false
	}
	return int(math.Round(v)), true
}

func readTimeFromMeta(data1 string) (int, bool) {
	m := minReadRe.FindStringSubmatch(strings.TrimSpace(data1))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// publishedFromPost reads the post's epoch-millisecond timestamps,
// preferring first-published over updated.
func publishedFromPost(post map[string]any) (string, bool) {
	if post == nil {
		return "", false
	}
	for _, field := range []string{"firstPublishedAt", "updatedAt"} {
		if ms, ok := post[field].(float64); ok && ms > 0 {
			return time.UnixMilli(int64(ms)).Format(time.RFC3339), true
		}
	}
	return "", false
}
