// Command seed fills a SurrealDB database with fixture records.
//
// Usage:
//
//	SEED_COUNT=25 SEED_FACTORIES=user,admin,guild seed [-dump] [-n count] [-f names]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/forgo/forge/internal/config"
	"github.com/forgo/forge/internal/database"
	"github.com/forgo/forge/internal/record"
	"github.com/forgo/forge/internal/testing/fixtures"
	"github.com/forgo/forge/pkg/factory"
)

func main() {
	dump := flag.Bool("dump", false, "Print every created record")
	count := flag.Int("n", 0, "Records per factory (overrides SEED_COUNT)")
	names := flag.String("f", "", "Comma separated factory names (overrides SEED_FACTORIES)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg.Seed, *count, *names)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logging
	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Seed.Timeout)
	defer cancel()

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("namespace", cfg.Database.Namespace),
		slog.String("database", cfg.Database.Database),
	)

	catalog := fixtures.New(db, factory.WithLogger(logger))
	if err := run(ctx, catalog, cfg.Seed, *dump); err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// applyFlags overrides the seed settings loaded from the environment with
// any command line values that were given.
func applyFlags(seed *config.SeedConfig, count int, names string) {
	if count > 0 {
		seed.Count = count
	}
	if names != "" {
		seed.Factories = config.SplitList(names)
	}
}

func run(ctx context.Context, catalog *fixtures.Catalog, cfg config.SeedConfig, dump bool) error {
	for _, name := range cfg.Factories {
		start := time.Now()
		records, err := catalog.SeedMany(ctx, name, cfg.Count)
		if err != nil {
			return err
		}

		slog.Info("seeded factory",
			slog.String("factory", name),
			slog.Int("created", len(records)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		if dump {
			dumpRecords(records)
		}
	}
	return nil
}

func dumpRecords(records []*record.Record) {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	for _, r := range records {
		fmt.Fprintf(os.Stderr, "%s\n%s", r.ID, cfg.Sdump(r.Data))
	}
}
