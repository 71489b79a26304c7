package staticpress

import (
	"database/sql"
	"sync"
	"time"

	"github.com/eringen/staticpress/content"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// PostCache is an in-memory cache of the indexed posts with TTL. It holds
// drafts too and filters them per call.
type PostCache struct {
	mu      sync.RWMutex
	posts   []content.Post
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached posts after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]content.Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.store.ListPosts(true)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []content.Post{}
	}
	c.posts = posts
	c.fetched = time.Now()
	return c.posts, nil
}

// Posts returns every page-producing post, drafts only if drafts is set.
func (c *PostCache) Posts(drafts bool) ([]content.Post, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var out []content.Post
	for _, p := range posts {
		if p.Draft && !drafts {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ListPosts returns the posts that belong on index pages, optionally
// filtered by tag.
func (c *PostCache) ListPosts(tag string, drafts bool) ([]content.Post, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	listed := content.Listed(posts, drafts)
	if tag == "" {
		return listed, nil
	}
	var filtered []content.Post
	for _, p := range listed {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListTags returns the unique tags of listed posts.
func (c *PostCache) ListTags(drafts bool) ([]string, error) {
	posts, err := c.ListPosts("", drafts)
	if err != nil {
		return nil, err
	}
	return content.Tags(posts), nil
}

// GetPost returns a single post by slug from the cache.
func (c *PostCache) GetPost(slug string, drafts bool) (content.Post, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return content.Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug && (drafts || !p.Draft) {
			return p, nil
		}
	}
	return content.Post{}, ErrNotFound
}
