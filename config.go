package portfolio

import "time"

// SiteConfig holds all configuration for a portfolio site.
//
// DatabasePath may be left empty: the site then serves the static fallback
// payload for reads and rejects all writes. This mirrors running without
// backend credentials.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags
	Author      string // Portfolio owner, used in JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path; empty means no backend configured
	StorageDir   string // Object storage root (default "data/storage")

	AdminEmail    string // Admin login email
	AdminPassword string // Admin login password, hashed into the store at startup
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	PayloadCacheTTL time.Duration // Published payload cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StorageDir == "" {
		c.StorageDir = "data/storage"
	}
	if c.PayloadCacheTTL == 0 {
		c.PayloadCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithObjectStore replaces the default disk-backed object store.
func WithObjectStore(store ObjectStore) Option {
	return func(a *App) {
		a.objects = store
	}
}
