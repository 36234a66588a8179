package brandstudio

import "time"

// Config holds all configuration for a Brand Studio instance.
type Config struct {
	Name       string // App name shown in the header (default "Content Manager")
	Addr       string // Listen address (default ":3000")
	APIBaseURL string // Backend API base URL (default "http://localhost:5000")

	SessionSecret string // Required: session cookie encryption secret
	CookieSecure  bool   // Set true behind HTTPS

	StashTTL      time.Duration // Idle lifetime of per-session transient state (default 1h)
	MaxUploadSize int64         // Per-file upload cap in bytes (default 10MB)

	// DisableCSRF turns off CSRF token checks. Only for tests and local
	// tooling that posts forms directly.
	DisableCSRF bool
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "Content Manager"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:5000"
	}
	if c.StashTTL == 0 {
		c.StashTTL = time.Hour
	}
	if c.MaxUploadSize == 0 {
		c.MaxUploadSize = 10 << 20
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithBackend replaces the default API client. Handler tests use this to
// point the app at a stub backend.
func WithBackend(b Backend) Option {
	return func(a *App) {
		a.Backend = b
	}
}

// WithStaticDir sets the directory served under /public (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
