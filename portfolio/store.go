package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrArticleNotFound is returned when a requested article record does not
// exist on disk.
var ErrArticleNotFound = errors.New("article not found")

const metadataFile = "blog_metadata.json"

// ArticleStore persists article records as individual JSON files under
// <dataDir>/articles/<category-slug>/<year>/<month>/<id>.json and keeps the
// shared categories/tags index in <dataDir>/blog_metadata.json.
//
// All mutations go through a single mutex: the store does whole-file
// read/modify/write on the metadata index, so concurrent writers must be
// serialized or updates get lost.
type ArticleStore struct {
	dataDir string
	mu      sync.Mutex
	log     zerolog.Logger
}

// NewArticleStore creates the store, ensuring the articles directory and
// the metadata index exist.
func NewArticleStore(dataDir string, log zerolog.Logger) (*ArticleStore, error) {
	s := &ArticleStore{dataDir: dataDir, log: log}
	if err := os.MkdirAll(s.articlesRoot(), 0o755); err != nil {
		return nil, fmt.Errorf("create articles dir: %w", err)
	}
	metaPath := filepath.Join(dataDir, metadataFile)
	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		if err := writeJSON(metaPath, Metadata{Categories: []string{}, Tags: []string{}}); err != nil {
			return nil, fmt.Errorf("init metadata index: %w", err)
		}
	}
	return s, nil
}

func (s *ArticleStore) articlesRoot() string {
	return filepath.Join(s.dataDir, "articles")
}

// ArticlePath returns the on-disk location for an article. The path is
// derived purely from category and publish date so that delete can
// reconstruct it without scanning.
func (s *ArticleStore) ArticlePath(a Article) string {
	return filepath.Join(
		s.articlesRoot(),
		Slugify(a.Category),
		fmt.Sprintf("%04d", a.PublishedDate.Year()),
		fmt.Sprintf("%02d", int(a.PublishedDate.Month())),
		a.ID+".json",
	)
}

// Save writes the article record and folds its category and tags into the
// metadata index. It assigns the generated PrimaryID and mirrors the ID
// into Slug, returning the stored record.
func (s *ArticleStore) Save(a Article) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.PrimaryID = uuid.New().String()
	a.Slug = a.ID

	path := s.ArticlePath(a)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Article{}, fmt.Errorf("create article dir: %w", err)
	}
	if err := writeJSON(path, a); err != nil {
		return Article{}, fmt.Errorf("write article: %w", err)
	}

	if err := s.updateMetadata(a.Category, a.Tags); err != nil {
		return Article{}, err
	}

	s.log.Info().Str("id", a.ID).Str("path", path).Msg("article saved")
	return a, nil
}

// Delete removes the article's file, reconstructing its path from category
// and publish date, and prunes month/year directories left empty. Returns
// ErrArticleNotFound when the file is already gone.
func (s *ArticleStore) Delete(a Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.ArticlePath(a)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("remove article: %w", err)
	}

	// Directory cleanup is best-effort: Remove fails on non-empty dirs.
	monthDir := filepath.Dir(path)
	if os.Remove(monthDir) == nil {
		_ = os.Remove(filepath.Dir(monthDir))
	}

	s.log.Info().Str("id", a.ID).Msg("article deleted")
	return nil
}

// LoadAll walks the articles tree and returns every parseable record.
// Files that fail to parse are logged and skipped rather than failing the
// whole load.
func (s *ArticleStore) LoadAll() ([]Article, error) {
	var articles []Article
	err := filepath.WalkDir(s.articlesRoot(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var a Article
		if err := json.Unmarshal(data, &a); err != nil {
			s.log.Warn().Str("path", path).Err(err).Msg("skipping unparseable article file")
			return nil
		}
		articles = append(articles, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	return articles, nil
}

// Metadata reads the categories/tags index. It takes the store mutex so a
// read never observes a half-written index from a concurrent Save.
func (s *ArticleStore) Metadata() (Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readMetadata()
}

func (s *ArticleStore) readMetadata() (Metadata, error) {
	var m Metadata
	data, err := os.ReadFile(filepath.Join(s.dataDir, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Metadata{Categories: []string{}, Tags: []string{}}, nil
		}
		return Metadata{}, fmt.Errorf("read metadata index: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata index: %w", err)
	}
	return m, nil
}

// updateMetadata appends unseen category/tag values and re-sorts. Callers
// must hold s.mu.
func (s *ArticleStore) updateMetadata(category string, tags []string) error {
	m, err := s.readMetadata()
	if err != nil {
		return err
	}

	updated := false
	if !contains(m.Categories, category) {
		m.Categories = append(m.Categories, category)
		sort.Strings(m.Categories)
		updated = true
	}
	for _, tag := range tags {
		if !contains(m.Tags, tag) {
			m.Tags = append(m.Tags, tag)
			updated = true
		}
	}
	if !updated {
		return nil
	}
	sort.Strings(m.Tags)
	if err := writeJSON(filepath.Join(s.dataDir, metadataFile), m); err != nil {
		return fmt.Errorf("write metadata index: %w", err)
	}
	return nil
}

func contains(vals []string, v string) bool {
	for _, val := range vals {
		if val == v {
			return true
		}
	}
	return false
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Slugify converts a title or category to a URL- and path-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ParsePublishedDate accepts the date formats the admin form and the
// metadata extractor produce.
func ParsePublishedDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
