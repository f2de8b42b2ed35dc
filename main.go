// vitrine is a terminal storefront browser.
//
// It loads a product catalog from an HTTP endpoint (or a bundled fixture
// set), caches it on disk, and presents it as an interactive Bubbletea TUI
// with search, product details, inline image previews, and themes.
//
// Usage:
//
//	vitrine [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: XDG search)
//	-open string    Route path to open on startup (e.g. /settings)
//	-theme string   Theme override
//	-use-mocks      Browse the bundled fixture catalog instead of an endpoint
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vitrine/pkg/app"
	"gitlab.com/tinyland/lab/vitrine/pkg/cache"
	"gitlab.com/tinyland/lab/vitrine/pkg/catalog"
	"gitlab.com/tinyland/lab/vitrine/pkg/config"
	"gitlab.com/tinyland/lab/vitrine/pkg/image"
	"gitlab.com/tinyland/lab/vitrine/pkg/screens"
	"gitlab.com/tinyland/lab/vitrine/pkg/terminal"
	"gitlab.com/tinyland/lab/vitrine/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		openPath    = flag.String("open", "", "Route path to open on startup (e.g. /settings)")
		themeName   = flag.String("theme", "", "Theme override")
		useMocks    = flag.Bool("use-mocks", false, "Browse the bundled fixture catalog instead of an endpoint")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vitrine %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the config file.
	if *useMocks {
		cfg.Catalog.UseMocks = true
	}
	if *themeName != "" {
		cfg.UI.Theme = *themeName
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging - stderr plus the configured log file, if any
	logLevel := parseLogLevel(cfg.General.LogLevel)
	if *verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := io.Writer(os.Stderr)
	if cfg.General.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
			os.Exit(1)
		}
		logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logWriter = io.MultiWriter(os.Stderr, logFile)
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Custom themes live next to the config file.
	home, _ := os.UserHomeDir()
	themeDir := filepath.Join(xdgConfigHome(home), "vitrine", "themes")
	if err := theme.LoadDir(themeDir); err != nil {
		logger.Warn("some custom themes failed to load", "dir", themeDir, "error", err)
	}

	// Disk cache for catalog data and images; drop expired entries now
	// rather than letting them linger until first access.
	store, err := cache.NewStore(cache.Options{
		Dir:        filepath.Join(cfg.General.CacheDir, "catalog"),
		DefaultTTL: cfg.Catalog.CacheTTL.Duration,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open cache: %v\n", err)
		os.Exit(1)
	}
	if swept := store.Sweep(); swept > 0 {
		logger.Debug("swept expired cache entries", "count", swept)
	}

	// Catalog source: remote client or bundled fixtures
	var (
		source  catalog.Source
		fetcher screens.ImageFetcher
	)
	if cfg.Catalog.UseMocks {
		fixtures, err := catalog.NewFixtureSource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load fixture catalog: %v\n", err)
			os.Exit(1)
		}
		source = fixtures
		logger.Info("using fixture catalog")
	} else {
		client := catalog.NewClient(catalog.ClientOptions{
			Endpoint: cfg.Catalog.Endpoint,
			Timeout:  cfg.Catalog.Timeout.Duration,
			CacheTTL: cfg.Catalog.CacheTTL.Duration,
			Store:    store,
			Logger:   logger,
		})
		source = client
		fetcher = client
	}

	// Probe the terminal once; the image renderer keys off it.
	caps := terminal.Probe()
	var renderer *image.Renderer
	if cfg.UI.ImagePreviews {
		renderer = image.NewRenderer(caps, cfg.UI.ImageProtocol)
		logger.Debug("image previews", "protocol", renderer.Protocol().String())
	}

	// Theme state shared by all screens; the settings screen swaps it.
	current := theme.Get(cfg.UI.Theme)
	deps := &screens.Deps{
		Source:  source,
		Fetcher: fetcher,
		Images:  renderer,
		Theme:   func() theme.Theme { return current },
		SetTheme: func(name string) {
			current = theme.Get(name)
		},
		Cache:  store,
		Config: cfg,
		Logger: logger,
	}

	root, err := app.New(app.Options{
		Deps:        deps,
		Logger:      logger,
		InitialPath: *openPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	zone.NewGlobal()
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(root, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vitrine exited with error: %v\n", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// xdgConfigHome mirrors the lookup the config package uses for its search
// paths.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
