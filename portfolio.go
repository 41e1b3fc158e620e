// Package portfolio serves a personal portfolio site whose blog posts live
// in an Airtable table. It renders the public pages, a password-gated admin
// area for editing posts, and a small JSON API over the same operations.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/inpirtalent/portfolio/airtable"
	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/profile"
)

// App wires together the post service, cache, contact store, handlers and
// middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Posts   *posts.Service
	Cache   *PostCache
	Store   *Store
	Profile profile.Profile
	Views   ViewFuncs

	recordStore    posts.RecordStore
	validate       *validator.Validate
	loginLimiter   *LoginLimiter
	contactLimiter *LoginLimiter
	customRoutes   []func(*App)
	profileSet     bool
	ready          bool
}

// New creates an App with the given configuration. Call Setup (or Start)
// before serving requests.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(parseLogLevel(cfg.LogLevel))

	a := &App{
		Config:   cfg,
		Echo:     e,
		Views:    defaultViews(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup opens the contact store, builds the post service and cache, and
// registers middleware and routes.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}

	if !a.profileSet {
		p, err := profile.Load(a.Config.ProfilePath)
		if err != nil {
			return fmt.Errorf("portfolio: load profile: %w", err)
		}
		a.Profile = p
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init store: %w", err)
	}
	a.Store = store

	if a.recordStore == nil && a.Config.AirtableConfigured() {
		client, err := airtable.NewClient(airtable.Config{
			Token:   a.Config.AirtableToken,
			BaseID:  a.Config.AirtableBaseID,
			Table:   a.Config.AirtableTable,
			BaseURL: a.Config.AirtableAPIURL,
		}, a.Echo.Logger)
		if err != nil {
			return fmt.Errorf("portfolio: init airtable: %w", err)
		}
		a.recordStore = posts.NewAirtableStore(client)
	}
	if a.recordStore == nil {
		a.Echo.Logger.Warn("AIRTABLE_TOKEN or AIRTABLE_BASE_ID is not set; blog posts are unavailable")
	}
	a.Posts = posts.NewService(a.recordStore)
	a.Cache = NewPostCache(a.Posts, a.Config.PostCacheTTL)

	if a.Config.AdminUsername == "" || a.Config.AdminPassword == "" {
		a.Echo.Logger.Warn("ADMIN_USERNAME or ADMIN_PASSWORD is not set; admin login is disabled")
	}
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.contactLimiter = NewLoginLimiter(contactMaxPerHour, time.Hour)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up if needed and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.StaticFS("/public", echo.MustSubFS(PublicAssets, "public"))
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/manifest.webmanifest", a.handleManifest)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/writings/:slug", a.handleWriting)
	e.POST("/contact", a.handleContactForm)

	// Admin pages
	e.GET("/admin/login", a.handleAdminLoginPage)
	e.POST("/admin/login", a.handleAdminLogin)
	e.POST("/admin/logout", handleAdminLogout)
	admin := e.Group("/admin", requireAdmin)
	admin.GET("", a.handleAdminDashboard)
	admin.GET("/blog/add", a.handleAdminAddPage)
	admin.POST("/blog/add", a.handleAdminAdd)
	admin.GET("/blog/edit/:slug", a.handleAdminEditPage)
	admin.POST("/blog/edit/:slug", a.handleAdminEdit)
	admin.POST("/blog/delete", a.handleAdminDelete)
	admin.POST("/messages/delete", a.handleAdminDeleteMessage)

	// JSON API
	api := e.Group("/api")
	api.GET("/posts", a.handleAPIListPosts)
	api.POST("/posts", a.handleAPICreatePost, requireAdminAPI)
	api.GET("/posts/:slug", a.handleAPIGetPost)
	api.PUT("/posts/:slug", a.handleAPIUpdatePost, requireAdminAPI)
	api.DELETE("/posts/:slug", a.handleAPIDeletePost, requireAdminAPI)
	api.POST("/auth/login", a.handleAPILogin)
	api.POST("/auth/logout", handleAPILogout)
	api.GET("/auth/check", handleAPIAuthCheck)
	api.POST("/contact", a.handleAPIContact)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func parseLogLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off", "none":
		return log.OFF
	default:
		return log.INFO
	}
}
