package staticpress

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const sessionName = "preview_session"

// setupMiddleware installs the dev server middleware. Build renders
// through the bare routes and never runs it.
func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/__reload"
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/__reload"
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self'",
	}))

	if a.previewEnabled() {
		e.Use(session.Middleware(a.newSessionStore()))
	}

	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			return isFileRoute(c.Request().URL.Path)
		},
	}))

	e.Use(cacheControlMiddleware)
}

// isFileRoute reports whether path names a file rather than a directory
// page, so it gets no trailing slash.
func isFileRoute(path string) bool {
	if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/__reload") {
		return true
	}
	last := path[strings.LastIndex(path, "/")+1:]
	return strings.Contains(last, ".")
}

// cacheControlMiddleware keeps the dev server from caching pages; only
// the generated stylesheets get a short lifetime.
func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasSuffix(path, ".css"):
			c.Response().Header().Set("Cache-Control", "public, max-age=60")
		case strings.HasPrefix(path, "/__"):
			c.Response().Header().Set("Cache-Control", "no-store")
		default:
			c.Response().Header().Set("Cache-Control", "no-cache")
		}
		return next(c)
	}
}

func (a *App) previewEnabled() bool {
	return a.Config.PreviewSecret != "" && a.Config.SessionSecret != ""
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 12,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// IsPreview checks if the current session may see drafts.
func IsPreview(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	ok, _ := sess.Values["preview"].(bool)
	return ok
}

func setPreviewSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values["preview"] = true
	return sess.Save(c.Request(), c.Response())
}

func clearPreviewSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// handlePreview turns draft preview on for the session when ?secret=
// matches, or off with ?exit=1. Failed attempts are rate limited per IP.
func (a *App) handlePreview(c echo.Context) error {
	if !a.previewEnabled() || a.limiter == nil {
		return echo.ErrNotFound
	}
	if c.QueryParam("exit") != "" {
		if err := clearPreviewSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	ip := c.RealIP()
	if !a.limiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many attempts, try again later")
	}
	secret := c.QueryParam("secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.Config.PreviewSecret)) != 1 {
		a.limiter.Record(ip)
		return c.String(http.StatusForbidden, "Forbidden")
	}
	if err := setPreviewSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// enablePreview prepares the preview limiter; 5 failed attempts per minute
// per IP.
func (a *App) enablePreview() {
	if a.previewEnabled() && a.limiter == nil {
		a.limiter = NewLoginLimiter(5, time.Minute)
	}
}
