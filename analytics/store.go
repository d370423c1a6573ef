package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists visits in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure analytics schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			path TEXT NOT NULL,
			referrer TEXT,
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_visitor_id ON visits(visitor_id);
		CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// GetSetting retrieves a setting value by key; empty string when absent.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return val, err
}

// SetSetting upserts a setting value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// SaveVisit stores a page view.
func (s *Store) SaveVisit(v *Visit) error {
	_, err := s.db.Exec(
		`INSERT INTO visits (visitor_id, ip_hash, browser, os, device, path, referrer, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.IPHash, v.Browser, v.OS, v.Device, v.Path, v.Referrer, v.Timestamp.UTC(),
	)
	return err
}

// Stats aggregates visits in [from, to).
func (s *Store) Stats(from, to time.Time) (*Stats, error) {
	stats := &Stats{
		Period: from.Format("2006-01-02") + " to " + to.Format("2006-01-02"),
	}

	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT visitor_id), COUNT(*) FROM visits WHERE timestamp >= ? AND timestamp < ?`,
		from.UTC(), to.UTC(),
	).Scan(&stats.UniqueVisitors, &stats.TotalViews)
	if err != nil {
		return nil, fmt.Errorf("visit counts: %w", err)
	}

	stats.TopPages, err = s.pageStats(from, to)
	if err != nil {
		return nil, err
	}
	stats.BrowserStats, err = s.dimensionStats("browser", from, to)
	if err != nil {
		return nil, err
	}
	stats.ReferrerStats, err = s.dimensionStats("referrer", from, to)
	if err != nil {
		return nil, err
	}
	stats.DailyViews, err = s.dailyViews(from, to)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) pageStats(from, to time.Time) ([]PageStat, error) {
	rows, err := s.db.Query(
		`SELECT path, COUNT(*) AS views FROM visits
		 WHERE timestamp >= ? AND timestamp < ?
		 GROUP BY path ORDER BY views DESC LIMIT 10`,
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("page stats: %w", err)
	}
	defer rows.Close()

	var out []PageStat
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) dimensionStats(column string, from, to time.Time) ([]DimensionStat, error) {
	// column is one of the fixed dimension names, never user input.
	rows, err := s.db.Query(
		`SELECT `+column+`, COUNT(*) AS cnt FROM visits
		 WHERE timestamp >= ? AND timestamp < ?
		 GROUP BY `+column+` ORDER BY cnt DESC LIMIT 10`,
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s stats: %w", column, err)
	}
	defer rows.Close()

	var out []DimensionStat
	for rows.Next() {
		var d DimensionStat
		if err := rows.Scan(&d.Name, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) dailyViews(from, to time.Time) ([]DailyView, error) {
	rows, err := s.db.Query(
		`SELECT date(timestamp) AS day, COUNT(*) FROM visits
		 WHERE timestamp >= ? AND timestamp < ?
		 GROUP BY day ORDER BY day`,
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("daily views: %w", err)
	}
	defer rows.Close()

	var out []DailyView
	for rows.Next() {
		var d DailyView
		if err := rows.Scan(&d.Date, &d.Views); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteOlderThan removes visits older than the retention window.
func (s *Store) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days).UTC()
	res, err := s.db.Exec(`DELETE FROM visits WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// StartCleanupScheduler periodically prunes old visits. The returned stop
// function terminates the scheduler.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_, _ = s.DeleteOlderThan(retentionDays)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
