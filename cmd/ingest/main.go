// cmd/ingest/main.go

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"trendsite/internal/adapter/storage"
	"trendsite/internal/config"
	"trendsite/internal/service/ingest"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if len(cfg.Ingest.Sources) == 0 {
		log.Fatalf("No sources configured, set INGEST_SOURCES (e.g. data/youtube.csv=youtube)")
	}

	ctx := context.Background()

	// Initialize dependencies
	db, err := initDatabase(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	trendStore := storage.NewTrendStore(db)
	if err := trendStore.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Import events are advisory, so an unreachable event bus degrades
	// to a warning instead of aborting the run.
	natsConn, err := initNATS(cfg.NATS)
	if err != nil {
		log.Printf("WARNING: event bus unavailable, import events disabled: %v", err)
		natsConn = nil
	} else {
		defer natsConn.Close()
	}

	sources := make([]ingest.SourceFile, 0, len(cfg.Ingest.Sources))
	for _, s := range cfg.Ingest.Sources {
		sources = append(sources, ingest.SourceFile{Path: s.Path, Tag: s.Tag})
	}

	importer := ingest.NewImporter(
		trendStore,
		ingest.NewSynthesizer(nil),
		natsConn,
		ingest.ImporterConfig{EventsTopic: cfg.Ingest.EventsTopic},
	)

	report, err := importer.Run(ctx, sources)
	if err != nil {
		log.Fatalf("Import run failed: %v", err)
	}

	printReport(ctx, trendStore, report)
}

// printReport logs the per-run summary alongside the persisted totals.
func printReport(ctx context.Context, store *storage.TrendStore, report *ingest.Report) {
	for source, count := range report.Imported {
		log.Printf("INFO: run %s: source %s imported %d", report.RunID, source, count)
	}
	for _, source := range report.Skipped {
		log.Printf("INFO: run %s: source %s skipped (missing file)", report.RunID, source)
	}
	for _, source := range report.Failed {
		log.Printf("INFO: run %s: source %s failed", report.RunID, source)
	}

	counts, total, err := store.SourceStats(ctx)
	if err != nil {
		log.Printf("WARNING: error reading source stats: %v", err)
		return
	}
	for source, count := range counts {
		log.Printf("INFO: store: source %s holds %d trends", source, count)
	}
	log.Printf("INFO: store: %d trends total", total)
}

// Initialize database connection
func initDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime

	db, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Test connection
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return db, nil
}

// Initialize NATS connection
func initNATS(cfg config.NATSConfig) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}
