// Package staticpress is a static blog generator built with Go, Echo, and
// templ. Every page is served by an Echo route; Build renders each route
// into the output directory and Serve runs the same routes as a dev server
// that follows content changes.
//
// Page templates are supplied through ViewFuncs; DefaultViews uses the
// views package.
package staticpress

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/staticpress/content"
	"github.com/eringen/staticpress/views"
)

// ViewFuncs holds the templ components the app calls when rendering
// pages. This is the inversion-of-control mechanism that lets users own
// and customize all templates.
type ViewFuncs struct {
	Home        func(site views.SiteConfig, posts []content.Post, tags []string) templ.Component
	Post        func(site views.SiteConfig, post content.Post, related []content.Post) templ.Component
	Tag         func(site views.SiteConfig, tag string, posts []content.Post) templ.Component
	Components  func(site views.SiteConfig) templ.Component
	NotFound    func(site views.SiteConfig) templ.Component
	ServerError func(site views.SiteConfig) templ.Component
}

// DefaultViews returns the templates of the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Post:        views.Post,
		Tag:         views.Tag,
		Components:  views.Components,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// Logger receives progress messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// App is the central staticpress application. It wires together the
// store, cache, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Views  ViewFuncs

	log          Logger
	limiter      *LoginLimiter
	customRoutes []func(*App)
	dev          bool

	mu         sync.Mutex
	generation uint64
}

// New creates an App and opens its build index. Call Close when done.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
		log:    log.Default(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("staticpress: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)

	a.Echo.HTTPErrorHandler = a.httpErrorHandler
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Sync loads the content directory into the build index and invalidates
// the post cache.
func (a *App) Sync() (SyncStats, error) {
	posts, err := content.NewLoader(a.Config.ContentDir, a.Config.OutDir, a.Config.StaticDir).Load()
	if err != nil {
		return SyncStats{}, err
	}
	stats, err := a.Store.SyncPosts(posts)
	if err != nil {
		return SyncStats{}, fmt.Errorf("staticpress: sync: %w", err)
	}
	a.Cache.Invalidate()
	a.touch()
	return stats, nil
}

func (a *App) touch() {
	a.mu.Lock()
	a.generation++
	a.mu.Unlock()
}

// Generation counts content changes seen by the app. The live-reload
// script polls it.
func (a *App) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/static/style.css", a.handleStyleCSS)
	e.GET("/static/theme.css", a.handleThemeCSS)
	e.GET("/static/code.css", a.handleCodeCSS)
	e.GET("/static/reload.js", a.handleReloadJS)
	e.Static("/static", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/posts/*", a.handlePost)
	e.GET("/tags/:tag/", a.handleTag)
	e.GET("/components/", a.handleComponents)
	e.GET("/404.html", a.handleNotFoundPage)

	e.GET("/__preview/", a.handlePreview)
	e.GET("/__reload", a.handleReload)
}

// site converts the configuration into what the views need.
func (a *App) site() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		Lang:        a.Config.Lang,
		Dev:         a.dev,
	}
}

func (a *App) staticFS() fs.FS {
	return os.DirFS(a.Config.StaticDir)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("staticpress: required environment variable %s is not set", key)
	}
	return v
}
