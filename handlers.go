package staticpress

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/staticpress/content"
	"github.com/eringen/staticpress/markdown"
	"github.com/eringen/staticpress/theme"
	"github.com/eringen/staticpress/views"
)

// showDrafts reports whether the request may see drafts: builds with
// Drafts set, and preview sessions on the dev server.
func (a *App) showDrafts(c echo.Context) bool {
	return a.Config.Drafts || IsPreview(c)
}

func (a *App) handleHome(c echo.Context) error {
	drafts := a.showDrafts(c)
	posts, err := a.Cache.ListPosts("", drafts)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags(drafts)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(a.site(), posts, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := strings.TrimSuffix(c.Param("*"), "/")
	// The router matches the raw path when the request carries one.
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(slug)
		if err != nil {
			return echo.ErrNotFound
		}
		slug = unescaped
	}
	if !strings.HasSuffix(c.Request().URL.Path, "/") {
		return c.Redirect(http.StatusMovedPermanently, content.Post{Slug: slug}.Link())
	}
	drafts := a.showDrafts(c)
	post, err := a.Cache.GetPost(slug, drafts)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	posts, err := a.Cache.ListPosts("", drafts)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(a.site(), post, views.FilterRelatedPosts(post, posts)))
}

func (a *App) handleTag(c echo.Context) error {
	tag, err := url.PathUnescape(c.Param("tag"))
	if err != nil {
		return echo.ErrNotFound
	}
	tag = content.NormalizeTag(tag)
	posts, err := a.Cache.ListPosts(tag, a.showDrafts(c))
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return echo.ErrNotFound
	}
	return Render(c, a.Views.Tag(a.site(), tag, posts))
}

func (a *App) handleComponents(c echo.Context) error {
	return Render(c, a.Views.Components(a.site()))
}

func (a *App) handleNotFoundPage(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
}

func (a *App) handleSitemap(c echo.Context) error {
	drafts := a.showDrafts(c)
	posts, err := a.Cache.Posts(drafts)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags(drafts)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts, tags)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("", a.showDrafts(c))
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

// handleRobots serves the user's robots.txt, or one pointing at the
// sitemap.
func (a *App) handleRobots(c echo.Context) error {
	if data, err := fs.ReadFile(a.staticFS(), "robots.txt"); err == nil {
		return renderBlob(c, echo.MIMETextPlainCharsetUTF8, data)
	}
	body := "User-agent: *\nAllow: /\n\nSitemap: " + BuildURL(a.Config.URL) + "sitemap.xml\n"
	return renderBlob(c, echo.MIMETextPlainCharsetUTF8, []byte(body))
}

func (a *App) handleStyleCSS(c echo.Context) error {
	data, err := EmbeddedAssets.ReadFile("embedded/style.css")
	if err != nil {
		return err
	}
	return renderBlob(c, "text/css; charset=utf-8", data)
}

func (a *App) handleThemeCSS(c echo.Context) error {
	var buf bytes.Buffer
	if err := theme.Default().CSS(&buf); err != nil {
		return err
	}
	return renderBlob(c, "text/css; charset=utf-8", buf.Bytes())
}

func (a *App) handleCodeCSS(c echo.Context) error {
	var buf bytes.Buffer
	if err := markdown.StyleCSS(&buf, a.Config.CodeStyle); err != nil {
		return err
	}
	return renderBlob(c, "text/css; charset=utf-8", buf.Bytes())
}

func (a *App) handleReloadJS(c echo.Context) error {
	if !a.dev {
		return echo.ErrNotFound
	}
	data, err := EmbeddedAssets.ReadFile("embedded/reload.js")
	if err != nil {
		return err
	}
	return renderBlob(c, "text/javascript; charset=utf-8", data)
}

// handleReload returns the current sync generation for the live-reload
// script.
func (a *App) handleReload(c echo.Context) error {
	if !a.dev {
		return echo.ErrNotFound
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.String(http.StatusOK, strconv.FormatUint(a.Generation(), 10))
}

type renderErrKey struct{}

// withRenderErr returns a context whose request errors are stored in slot
// by the error handler. Build uses it to report why a route failed.
func withRenderErr(ctx context.Context, slot *error) context.Context {
	return context.WithValue(ctx, renderErrKey{}, slot)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if slot, ok := c.Request().Context().Value(renderErrKey{}).(*error); ok {
		*slot = err
	}
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
