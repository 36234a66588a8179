// Package brandstudio is a marketing content manager built with Go and Echo.
// It fronts a remote brand API with server-rendered pages for company
// onboarding, brand guidelines, and AI-assisted content creation.
package brandstudio

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/topbox/brandstudio/api"
	"github.com/topbox/brandstudio/views"
)

// App is the central application. It wires together the API client,
// session-scoped stash, views, handlers, and middleware.
type App struct {
	Config  Config
	Echo    *echo.Echo
	Backend Backend
	Views   *views.Renderer

	stash        *Stash
	genLimiter   *RateLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Bootstrap initializes the backend client, views, stash, middleware, and
// routes without starting the listener. Tests call this and then drive
// a.Echo.ServeHTTP directly.
func (a *App) Bootstrap() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("brandstudio: SessionSecret is required")
	}

	if a.Backend == nil {
		a.Backend = api.NewClient(a.Config.APIBaseURL)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("brandstudio: init views: %w", err)
	}
	a.Views = renderer

	a.stash = NewStash(a.Config.StashTTL)

	// Guideline generation and the content pipeline hit slow model
	// endpoints upstream. Cap bursts per client.
	a.genLimiter = NewRateLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	return nil
}

// Start bootstraps the app and starts the HTTP server.
func (a *App) Start() error {
	if err := a.Bootstrap(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/healthz", handleHealthz)

	// Company directory and onboarding
	e.GET("/", a.handleHome)
	e.POST("/companies/select", a.handleSelectCompany)
	e.POST("/companies", a.handleQuickCreate)
	e.GET("/companies/new", a.handleWizard)
	e.POST("/companies/new", a.handleWizardPost)

	// Everything past the directory needs a selected company.
	g := e.Group("", requireCompany)
	g.GET("/brand-guidelines", a.handleGuidelines)
	g.POST("/brand-guidelines/upload", a.handleGuidelinesUpload)
	g.POST("/brand-guidelines/generate", a.handleGuidelinesGenerate)
	g.POST("/brand-guidelines/save", a.handleGuidelinesSave)

	g.GET("/content", a.handleContent)
	g.POST("/content/images", a.handleImageAdd)
	g.POST("/content/images/:index/delete", a.handleImageRemove)
	g.POST("/content/create", a.handleContentCreate)

	g.GET("/content/review", a.handleReview)
	g.POST("/content/save", a.handleReviewSave)
}

func handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Close stops background sweepers. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stash != nil {
		a.stash.Stop()
	}
	if a.genLimiter != nil {
		a.genLimiter.Stop()
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
		log.Fatalf("brandstudio: required environment variable %s is not set", key)
	}
	return v
}
