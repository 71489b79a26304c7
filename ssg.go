package staticpress

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/eringen/staticpress/views"
)

// BuildReport summarizes one Build.
type BuildReport struct {
	Posts     int // posts rendered
	Routes    int // pages and feeds rendered
	Written   int // outputs written or rewritten
	Unchanged int // outputs skipped because their hash matched
	Removed   int // stale outputs deleted
	Static    int // static files copied
	Resized   int // static images scaled down
	Duration  time.Duration
}

// buildRoute is a page to render. Path is the decoded URL path, which
// names the output file; Target is the request URI.
type buildRoute struct {
	Path   string
	Target string
}

func pageRoute(p string) buildRoute {
	return buildRoute{Path: p, Target: (&url.URL{Path: p}).EscapedPath()}
}

// generatedStatic are the /static/ names served by handlers. Files of the
// same name in the static dir are not copied.
var generatedStatic = map[string]bool{
	"style.css": true,
	"theme.css": true,
	"code.css":  true,
	"reload.js": true,
}

// Build syncs the content directory and writes every route to the output
// directory. Outputs whose content hash matches the last build and that
// still exist on disk are left alone; outputs of routes that no longer
// exist are removed.
func (a *App) Build(ctx context.Context) (BuildReport, error) {
	return a.build(ctx, false)
}

// Rebuild is Build without the unchanged-output shortcut: every route and
// static file is written again. Stale outputs are still removed.
func (a *App) Rebuild(ctx context.Context) (BuildReport, error) {
	return a.build(ctx, true)
}

func (a *App) build(ctx context.Context, force bool) (BuildReport, error) {
	start := time.Now()
	var report BuildReport

	if _, err := a.Sync(); err != nil {
		return report, err
	}
	routes, posts, err := a.routes()
	if err != nil {
		return report, err
	}
	report.Posts = posts
	report.Routes = len(routes)

	prev, err := a.Store.Outputs()
	if err != nil {
		return report, fmt.Errorf("staticpress: build: %w", err)
	}
	seen := make(map[string]bool, len(prev))

	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		body, err := a.renderRoute(ctx, r)
		if err != nil {
			return report, err
		}
		seen[r.Path] = true
		wrote, err := a.writeOutput(prev, r.Path, outputPath(r.Path), body, hashBytes(body), force)
		if err != nil {
			return report, err
		}
		if wrote {
			report.Written++
		} else {
			report.Unchanged++
		}
	}

	if err := a.copyStatic(ctx, prev, seen, force, &report); err != nil {
		return report, err
	}

	stale := make([]string, 0)
	for route := range prev {
		if !seen[route] {
			stale = append(stale, route)
		}
	}
	sort.Strings(stale)
	for _, route := range stale {
		if err := a.removeOutput(prev[route]); err != nil {
			return report, err
		}
		report.Removed++
	}

	report.Duration = time.Since(start)
	return report, nil
}

// routes lists the pages to render and how many of them are posts.
func (a *App) routes() ([]buildRoute, int, error) {
	routes := []buildRoute{
		pageRoute("/"),
		pageRoute("/components/"),
		pageRoute("/feed.xml"),
		pageRoute("/sitemap.xml"),
		pageRoute("/robots.txt"),
		pageRoute("/404.html"),
		pageRoute("/static/style.css"),
		pageRoute("/static/theme.css"),
		pageRoute("/static/code.css"),
	}
	posts, err := a.Cache.Posts(a.Config.Drafts)
	if err != nil {
		return nil, 0, fmt.Errorf("staticpress: build: %w", err)
	}
	for _, p := range posts {
		routes = append(routes, pageRoute(p.Route()))
	}
	tags, err := a.Cache.ListTags(a.Config.Drafts)
	if err != nil {
		return nil, 0, fmt.Errorf("staticpress: build: %w", err)
	}
	for _, t := range tags {
		// Tags are escaped as a single segment; the file path is the
		// decoded form a static host looks up.
		routes = append(routes, buildRoute{Path: "/tags/" + t + "/", Target: views.TagLink(t)})
	}
	return routes, len(posts), nil
}

// renderRoute serves r through the Echo instance. Any status other than
// 200 (404 for /404.html) fails the build with the handler's error.
func (a *App) renderRoute(ctx context.Context, r buildRoute) ([]byte, error) {
	var renderErr error
	req := httptest.NewRequest(http.MethodGet, r.Target, nil)
	req = req.WithContext(withRenderErr(ctx, &renderErr))
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)

	want := http.StatusOK
	if r.Path == "/404.html" {
		want = http.StatusNotFound
	}
	if rec.Code != want {
		if renderErr != nil {
			return nil, fmt.Errorf("staticpress: build %s: %w", r.Path, renderErr)
		}
		return nil, fmt.Errorf("staticpress: build %s: status %d", r.Path, rec.Code)
	}
	return rec.Body.Bytes(), nil
}

// writeOutput writes data to rel under the output directory unless the
// previous build recorded the same hash and the file is still there. It
// reports whether anything was written.
func (a *App) writeOutput(prev map[string]Output, route, rel string, data []byte, hash string, force bool) (bool, error) {
	dst := filepath.Join(a.Config.OutDir, filepath.FromSlash(rel))
	if old, ok := prev[route]; ok && !force && old.Hash == hash && old.Path == rel && a.outputsExist(dst) {
		return false, nil
	}
	if old, ok := prev[route]; ok && old.Path != rel {
		if err := a.removeFiles(old.Path); err != nil {
			return false, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("staticpress: build %s: %w", route, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return false, fmt.Errorf("staticpress: build %s: %w", route, err)
	}
	if err := a.writeSiblings(dst, data); err != nil {
		return false, fmt.Errorf("staticpress: build %s: %w", route, err)
	}
	if err := a.Store.SaveOutput(route, rel, hash); err != nil {
		return false, fmt.Errorf("staticpress: build %s: %w", route, err)
	}
	a.log.Printf("build: wrote %s", rel)
	return true, nil
}

// outputsExist reports whether dst and every configured sibling exist.
func (a *App) outputsExist(dst string) bool {
	if _, err := os.Stat(dst); err != nil {
		return false
	}
	if !compressible(dst) {
		return true
	}
	for _, m := range a.Config.Compress {
		if _, err := os.Stat(dst + compressors[m].ext); err != nil {
			return false
		}
	}
	return true
}

// writeSiblings writes the configured precompressed copies of dst and
// removes the ones no longer configured.
func (a *App) writeSiblings(dst string, data []byte) error {
	want := make(map[string]bool)
	if compressible(dst) {
		for _, m := range a.Config.Compress {
			c := compressors[m]
			enc, err := c.encode(data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(dst+c.ext, enc, 0o644); err != nil {
				return err
			}
			want[c.ext] = true
		}
	}
	for _, ext := range siblingExts() {
		if want[ext] {
			continue
		}
		if err := os.Remove(dst + ext); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// copyStatic copies the static dir to <out>/static/, scaling oversized
// images down. Each file is tracked as the route /static/<name>, hashed
// on its source bytes.
func (a *App) copyStatic(ctx context.Context, prev map[string]Output, seen map[string]bool, force bool, report *BuildReport) error {
	root := a.Config.StaticDir
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fs.WalkDir(os.DirFS(root), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if name != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || (name == d.Name() && (generatedStatic[name] || name == "robots.txt")) {
			return nil
		}

		src, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil {
			return fmt.Errorf("staticpress: static %s: %w", name, err)
		}
		route := "/static/" + name
		rel := path.Join("static", name)
		seen[route] = true
		report.Static++

		hash := hashBytes(src)
		dst := filepath.Join(a.Config.OutDir, filepath.FromSlash(rel))
		if old, ok := prev[route]; ok && !force && old.Hash == hash && a.outputsExist(dst) {
			report.Unchanged++
			return nil
		}
		data, resized, err := resizeImage(src, path.Ext(name), a.Config.MaxImageWidth)
		if err != nil {
			// Undecodable images are copied as they are.
			a.log.Printf("build: %s: %v", name, err)
		}
		if resized {
			report.Resized++
		}
		// The hash is of the source so an unchanged image is not resized
		// again.
		if _, err := a.writeOutput(prev, route, rel, data, hash, true); err != nil {
			return err
		}
		report.Written++
		return nil
	})
}

// removeOutput deletes a stale output with its siblings and forgets it.
func (a *App) removeOutput(o Output) error {
	if err := a.removeFiles(o.Path); err != nil {
		return err
	}
	if err := a.Store.DeleteOutput(o.Route); err != nil {
		return fmt.Errorf("staticpress: build: %w", err)
	}
	a.log.Printf("build: removed %s", o.Path)
	return nil
}

func (a *App) removeFiles(rel string) error {
	dst := filepath.Join(a.Config.OutDir, filepath.FromSlash(rel))
	files := []string{dst}
	for _, ext := range siblingExts() {
		files = append(files, dst+ext)
	}
	for _, p := range files {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("staticpress: remove %s: %w", rel, err)
		}
	}
	pruneEmptyDirs(a.Config.OutDir, filepath.Dir(dst))
	return nil
}

// pruneEmptyDirs removes dir and its parents while they are empty,
// stopping at root.
func pruneEmptyDirs(root, dir string) {
	root = filepath.Clean(root)
	for dir = filepath.Clean(dir); dir != root && strings.HasPrefix(dir, root+string(filepath.Separator)); dir = filepath.Dir(dir) {
		if os.Remove(dir) != nil {
			return
		}
	}
}

func hashBytes(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
