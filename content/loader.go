package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions treated as posts.
var Extensions = []string{".md", ".markdown", ".mdx"}

// Loader reads posts from a directory tree.
type Loader struct {
	root string
	skip []string
}

// NewLoader returns a Loader for root. Paths listed in skip (typically the
// build output directory) are not descended into.
func NewLoader(root string, skip ...string) *Loader {
	l := &Loader{root: root}
	for _, s := range skip {
		if abs, err := filepath.Abs(s); err == nil {
			l.skip = append(l.skip, abs)
		}
	}
	return l
}

// Root returns the directory the loader reads.
func (l *Loader) Root() string {
	return l.root
}

// Files returns every post file under the root. Hidden files and
// directories are ignored. A missing root yields no files.
func (l *Loader) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(l.root, func(p string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			if p == l.root && os.IsNotExist(err) {
				return fs.SkipDir
			}
			return err
		case p != l.root && strings.HasPrefix(d.Name(), "."):
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		case d.IsDir():
			if l.skipped(p) {
				return fs.SkipDir
			}
			return nil
		case !HasExt(p, Extensions...):
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (l *Loader) skipped(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for _, s := range l.skip {
		if abs == s {
			return true
		}
	}
	return false
}

// Load parses every post file, sorted newest first. Two files mapping to
// the same slug are an error.
func (l *Loader) Load() ([]Post, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(files))
	bySlug := make(map[string]string, len(files))
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(l.root, f)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)
		p, err := Parse(rel, src)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", rel, err)
		}
		if p.Slug == "" {
			return nil, fmt.Errorf("content: %s: empty slug", rel)
		}
		if other, dup := bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("content: %s and %s both map to slug %q", other, rel, p.Slug)
		}
		bySlug[p.Slug] = rel
		posts = append(posts, p)
	}
	Sort(posts)
	return posts, nil
}

// HasExt reports whether file has one of exts, ignoring case.
func HasExt(file string, exts ...string) bool {
	fext := strings.ToLower(filepath.Ext(file))
	for _, ext := range exts {
		if ext == fext {
			return true
		}
	}
	return false
}
