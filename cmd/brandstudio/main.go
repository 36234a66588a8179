package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	brandstudio "github.com/topbox/brandstudio"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("brandstudio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := brandstudio.Config{
		Name:          brandstudio.EnvOr("APP_NAME", "Content Manager"),
		Addr:          brandstudio.EnvOr("ADDR", ":3000"),
		APIBaseURL:    brandstudio.EnvOr("API_BASE_URL", "http://localhost:5000"),
		SessionSecret: brandstudio.MustEnv("SESSION_SECRET"),
		CookieSecure:  envBool("COOKIE_SECURE"),
	}
	if v := os.Getenv("STASH_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid STASH_TTL %q: %w", v, err)
		}
		cfg.StashTTL = d
	}

	app := brandstudio.New(cfg,
		brandstudio.WithStaticDir(brandstudio.EnvOr("STATIC_DIR", "public")),
	)
	defer app.Close()

	log.Printf("brandstudio listening on %s (backend %s)", cfg.Addr, cfg.APIBaseURL)
	return app.Start()
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func printUsage() {
	fmt.Println(`brandstudio - marketing content manager for small businesses

Usage:
  brandstudio <command>

Commands:
  serve         Start the web server (default)
  version       Print the brandstudio version
  help          Show this help message

Environment:
  ADDR            Listen address (default :3000)
  API_BASE_URL    Backend API base URL (default http://localhost:5000)
  SESSION_SECRET  Required session cookie secret
  COOKIE_SECURE   Set true behind HTTPS
  STASH_TTL       Idle lifetime of per-session state (default 1h)`)
}
