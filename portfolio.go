// Package portfolio is a personal portfolio site engine built with Go,
// Echo, and templ. It serves a public page assembled from sections, content
// blocks, images, and skills stored in SQLite, with images held in a
// disk-backed object store, plus an admin console for managing all of it.
//
// Users provide their own templ components via the ViewFuncs struct, and
// the engine handles handler logic, middleware, and data access. When no
// database is configured the public page serves a static fallback payload.
package portfolio

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates.
type ViewFuncs struct {
	Portfolio      func(data Payload, highlightSlug string, siteURL string) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(sections []Section, skills []Skill, message string, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central application. It wires together the store, object
// store, catalog, cache, handlers, middleware, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Catalog *Catalog
	Cache   *PayloadCache
	Views   ViewFuncs

	objects      ObjectStore
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new portfolio App with the given configuration and view
// functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the backend, middleware, and routes, and runs the
// server until it shuts down.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init wires everything short of listening. Split from Start so tests can
// drive the Echo instance directly.
func (a *App) init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("portfolio: SessionSecret is required")
	}

	// A missing database path is not an error: reads degrade to the
	// static fallback and writes are rejected.
	if a.Config.DatabasePath != "" {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("portfolio: init store: %w", err)
		}
		a.Store = store

		if a.Config.AdminEmail != "" && a.Config.AdminPassword != "" {
			if err := store.SetCredentials(a.Config.AdminEmail, a.Config.AdminPassword); err != nil {
				return fmt.Errorf("portfolio: seed credentials: %w", err)
			}
		}
	} else {
		log.Printf("portfolio: no database configured, serving fallback content")
	}

	if a.objects == nil {
		objects, err := NewDiskStore(a.Config.StorageDir, a.Config.URL)
		if err != nil {
			return fmt.Errorf("portfolio: init object store: %w", err)
		}
		a.objects = objects
	}

	a.Catalog = NewCatalog(a.Store, a.objects)
	a.Cache = NewPayloadCache(a.Catalog, a.Config.PayloadCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets (slideshow.js, highlight.js) are served
	// under /public/ and fall through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/slideshow.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/highlight.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Bucket objects are public: image URLs recorded in the database
	// point here.
	if disk, ok := a.objects.(*DiskStore); ok {
		e.Static("/object/public/"+BucketName, disk.BucketDir())
	}

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/sections/:slug/", a.handleSection)

	// Public JSON reads
	e.GET("/api/portfolio", a.handleAPIPortfolio)
	e.GET("/api/skills", a.handleAPISkillList)

	// Admin console
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/sections/", a.handleSectionCreate)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:id/", a.handleImageDelete)

	// Authenticated JSON writes
	e.POST("/api/sections/update", a.handleAPISectionUpdate)
	e.POST("/api/skills", a.handleAPISkillCreate)
	e.PUT("/api/skills/:id", a.handleAPISkillUpdate)
	e.DELETE("/api/skills/:id", a.handleAPISkillDelete)
	e.GET("/api/storage/stats", a.handleAPIStorageStats)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("portfolio: required environment variable %s is not set", key)
	}
	return v
}
