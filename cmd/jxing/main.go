package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/jxt-gindran/jxingwebsite/internal/catalog"
	"github.com/jxt-gindran/jxingwebsite/internal/cli"
	"github.com/jxt-gindran/jxingwebsite/internal/db"
	"github.com/jxt-gindran/jxingwebsite/internal/quote"
	"github.com/jxt-gindran/jxingwebsite/internal/repository"
	"github.com/jxt-gindran/jxingwebsite/internal/submit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; missing files are fine.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.jxing/jxing.db
	dbPath := os.Getenv("JXING_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".jxing", "jxing.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Load the catalog: external file if configured, built-in otherwise.
	// A broken external catalog must not take the builder down, so it
	// falls back to the built-in list with a warning.
	categories := catalog.Default()
	if path := os.Getenv("JXING_CATALOG"); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring catalog %s: %v\n", path, err)
		} else {
			categories = loaded
		}
	}

	// Optional translation overlay. Prices are never translated.
	if lang := os.Getenv("JXING_LANG"); lang != "" && lang != "en" {
		bundlePath := os.Getenv("JXING_I18N")
		if bundlePath != "" {
			bundle, err := catalog.LoadBundle(bundlePath)
			if err != nil {
				return fmt.Errorf("loading translations %s: %w", bundlePath, err)
			}
			categories = catalog.Localized(categories, bundle, lang)
		}
	}

	stateRepo := repository.NewSQLiteQuoteStateRepo(database)
	requestRepo := repository.NewSQLiteQuoteRequestRepo(database)

	store := quote.NewStore(context.Background(), stateRepo)

	cfg := submit.LoadConfig()

	var observer submit.Observer = submit.NoopObserver{}
	if cfg.LogDeliveries {
		observer = submit.NewLogObserver(os.Stderr)
	}

	var submitter submit.Submitter
	if cfg.WebhookURL != "" {
		submitter = submit.NewWebhook(cfg, observer)
	} else {
		submitter = &submit.Simulated{Delay: cfg.SubmitDelay(), Observer: observer}
	}

	app := &cli.App{
		Catalog:   categories,
		Quote:     store,
		Requests:  requestRepo,
		Submitter: submitter,
		Config:    cfg,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
