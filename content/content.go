// Package content loads blog posts from Markdown/MDX files with YAML front
// matter.
package content

import (
	"encoding/hex"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// DateLayout is the front matter date format.
const DateLayout = "2006-01-02"

// Post is one content file.
type Post struct {
	Slug    string
	Path    string // source path relative to the content root, slash separated
	Title   string
	Date    string
	Tags    []string
	Summary string
	Draft   bool
	Body    string

	// HasFrontMatter is false for files without a front matter block. They
	// still render as pages but are left out of listings.
	HasFrontMatter bool
	Meta           map[string]any

	// Hash is the hex BLAKE3 digest of the source file.
	Hash string
}

// Route returns the unescaped site path of the post.
func (p Post) Route() string {
	return "/posts/" + p.Slug + "/"
}

// Link returns the site-relative URL of the post, escaped for use in
// markup.
func (p Post) Link() string {
	return (&url.URL{Path: p.Route()}).EscapedPath()
}

// Time parses the post date; the zero time is returned for missing or
// malformed dates.
func (p Post) Time() time.Time {
	t, _ := ParseDate(p.Date)
	return t
}

// HasTag reports whether the post carries tag, ignoring case.
func (p Post) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, t := range p.Tags {
		if NormalizeTag(t) == tag {
			return true
		}
	}
	return false
}

// Parse builds a Post from a file's bytes. rel is the slash separated path
// relative to the posts directory and determines the default slug.
func Parse(rel string, src []byte) (Post, error) {
	sum := blake3.Sum256(src)
	p := Post{
		Path: rel,
		Slug: SlugFromPath(rel),
		Hash: hex.EncodeToString(sum[:]),
	}
	front, body, err := SplitFrontMatter(src)
	if err != nil {
		return Post{}, err
	}
	p.Body = string(body)
	if front == nil {
		p.Title = titleFromSlug(p.Slug)
		return p, nil
	}

	fm, meta, err := decodeFrontMatter(front)
	if err != nil {
		return Post{}, err
	}
	p.HasFrontMatter = true
	p.Meta = meta
	p.Title = fm.Title
	if p.Title == "" {
		p.Title = titleFromSlug(p.Slug)
	}
	if s := cleanSlug(fm.Slug); s != "" {
		p.Slug = s
	}
	p.Date = fm.Date
	if t, ok := ParseDate(fm.Date); ok {
		p.Date = t.Format(DateLayout)
	}
	p.Tags = []string(fm.Tags)
	p.Summary = fm.Summary
	if p.Summary == "" {
		p.Summary = fm.Description
	}
	p.Draft = fm.Draft || (fm.Published != nil && !*fm.Published)
	return p, nil
}

// SlugFromPath derives a slug from a slash-separated path relative to the
// content root by dropping the extension. Segments keep their spelling, so
// "2024/はじめに.mdx" becomes "2024/はじめに".
func SlugFromPath(rel string) string {
	return cleanSlug(strings.TrimSuffix(rel, path.Ext(rel)))
}

// cleanSlug trims each segment and drops empty, dot and hidden ones.
func cleanSlug(s string) string {
	var parts []string
	for _, seg := range strings.Split(s, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" || strings.HasPrefix(seg, ".") {
			continue
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "/")
}

// Slugify converts a title to a URL-safe slug.
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

// ParseDate accepts YYYY-MM-DD and RFC 3339 dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02 15:04:05 -0700 MST"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeTag lowercases and trims a tag.
func NormalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// Tags returns the sorted, deduplicated, normalised tags of posts.
func Tags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			if n := NormalizeTag(t); n != "" {
				set[n] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Sort orders posts newest first; posts with equal dates by slug.
func Sort(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// Listed filters the posts that belong on index pages: those with front
// matter, and drafts only if drafts is set.
func Listed(posts []Post, drafts bool) []Post {
	var out []Post
	for _, p := range posts {
		if !p.HasFrontMatter || (p.Draft && !drafts) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func titleFromSlug(slug string) string {
	base := path.Base(slug)
	parts := strings.Split(base, "-")
	for i, p := range parts {
		if r, n := utf8.DecodeRuneInString(p); n > 0 {
			parts[i] = string(unicode.ToUpper(r)) + p[n:]
		}
	}
	return strings.Join(parts, " ")
}
