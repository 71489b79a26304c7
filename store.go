package staticpress

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/staticpress/content"
)

// Store wraps the SQLite build index: the posts last loaded from the
// content directory and the outputs last written by Build.
type Store struct {
	db *sql.DB
}

// SyncStats reports what SyncPosts changed.
type SyncStats struct {
	Added   int
	Updated int
	Removed int
}

// Output is one file written by Build.
type Output struct {
	Route   string
	Path    string // relative to the output directory
	Hash    string
	BuiltAt string
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the dev server read while a sync writes; busy_timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT NOT NULL,
    summary TEXT NOT NULL,
    body TEXT NOT NULL,
    draft INTEGER NOT NULL DEFAULT 0,
    front_matter INTEGER NOT NULL DEFAULT 1,
    meta TEXT NOT NULL DEFAULT '{}',
    hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS outputs (
    route TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    hash TEXT NOT NULL,
    built_at TEXT NOT NULL
);
`)
	return err
}

const postColumns = `slug, path, title, date, tags, summary, body, draft, front_matter, meta, hash`

func scanPost(row interface{ Scan(...any) error }) (content.Post, error) {
	var p content.Post
	var tags, meta string
	var draft, fm int
	if err := row.Scan(&p.Slug, &p.Path, &p.Title, &p.Date, &tags, &p.Summary, &p.Body, &draft, &fm, &meta, &p.Hash); err != nil {
		return content.Post{}, err
	}
	p.Tags = ParseTags(tags)
	p.Draft = draft == 1
	p.HasFrontMatter = fm == 1
	if meta != "" && meta != "{}" {
		_ = json.Unmarshal([]byte(meta), &p.Meta)
	}
	return p, nil
}

// SyncPosts makes the posts table match posts: new slugs are inserted,
// changed hashes are replaced, and slugs no longer present are deleted.
func (s *Store) SyncPosts(posts []content.Post) (SyncStats, error) {
	var stats SyncStats
	tx, err := s.db.Begin()
	if err != nil {
		return stats, err
	}
	defer tx.Rollback()

	known := make(map[string]string)
	rows, err := tx.Query(`SELECT slug, hash FROM posts`)
	if err != nil {
		return stats, err
	}
	for rows.Next() {
		var slug, hash string
		if err := rows.Scan(&slug, &hash); err != nil {
			rows.Close()
			return stats, err
		}
		known[slug] = hash
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return stats, err
	}

	for _, p := range posts {
		hash, ok := known[p.Slug]
		delete(known, p.Slug)
		if ok && hash == p.Hash {
			continue
		}
		if err := savePost(tx, p); err != nil {
			return stats, err
		}
		if ok {
			stats.Updated++
		} else {
			stats.Added++
		}
	}
	for slug := range known {
		if _, err := tx.Exec(`DELETE FROM posts WHERE slug = ?`, slug); err != nil {
			return stats, err
		}
		stats.Removed++
	}
	return stats, tx.Commit()
}

func savePost(tx *sql.Tx, p content.Post) error {
	meta := "{}"
	if len(p.Meta) > 0 {
		if b, err := json.Marshal(p.Meta); err == nil {
			meta = string(b)
		}
	}
	_, err := tx.Exec(`INSERT OR REPLACE INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Path, p.Title, p.Date, FormatTags(p.Tags), p.Summary, p.Body,
		boolInt(p.Draft), boolInt(p.HasFrontMatter), meta, p.Hash)
	return err
}

// ListPosts returns every indexed post, newest first. Drafts are included
// only when drafts is set.
func (s *Store) ListPosts(drafts bool) ([]content.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts`
	if !drafts {
		q += ` WHERE draft = 0`
	}
	rows, err := s.db.Query(q + ` ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []content.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by slug. Drafts are found only when drafts
// is set; otherwise sql.ErrNoRows is returned.
func (s *Store) GetPost(slug string, drafts bool) (content.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts WHERE slug = ?`
	if !drafts {
		q += ` AND draft = 0`
	}
	return scanPost(s.db.QueryRow(q, slug))
}

// Outputs returns the outputs recorded by the last build, keyed by route.
func (s *Store) Outputs() (map[string]Output, error) {
	rows, err := s.db.Query(`SELECT route, path, hash, built_at FROM outputs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]Output)
	for rows.Next() {
		var o Output
		if err := rows.Scan(&o.Route, &o.Path, &o.Hash, &o.BuiltAt); err != nil {
			return nil, err
		}
		out[o.Route] = o
	}
	return out, rows.Err()
}

// SaveOutput records that route was written to path with hash.
func (s *Store) SaveOutput(route, path, hash string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO outputs (route, path, hash, built_at) VALUES (?, ?, ?, ?)`,
		route, path, hash, time.Now().UTC().Format(time.RFC3339))
	return err
}

// DeleteOutput forgets route.
func (s *Store) DeleteOutput(route string) error {
	_, err := s.db.Exec(`DELETE FROM outputs WHERE route = ?`, route)
	return err
}

// FormatTags normalizes tags into the stored ",a,b," form.
func FormatTags(tags []string) string {
	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := content.NormalizeTag(t); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return ""
	}
	return "," + strings.Join(normalized, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
