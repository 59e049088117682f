// Command server is the entry point of the live game service. It loads the
// configuration, opens the player store, wires the live game pipeline and
// serves it over HTTP until it receives a shutdown signal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/Guliveer/livegame-go/internal/config"
	"github.com/Guliveer/livegame-go/internal/livegame"
	"github.com/Guliveer/livegame-go/internal/logger"
	"github.com/Guliveer/livegame-go/internal/metrics"
	"github.com/Guliveer/livegame-go/internal/riot"
	"github.com/Guliveer/livegame-go/internal/server"
	"github.com/Guliveer/livegame-go/internal/store"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to the configuration file")
	port := flag.String("port", "", "Port for the HTTP server (overrides server.addr)")
	logLevel := flag.String("log-level", "", "Log level: DEBUG, INFO, WARN, ERROR (overrides config and LOG_LEVEL env)")
	noColor := flag.Bool("no-color", false, "Disable colored output (overrides TTY detection)")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.Server.Addr = ":" + *port
	} else if envPort := os.Getenv("PORT"); envPort != "" {
		cfg.Server.Addr = ":" + envPort
	}

	level := slog.LevelInfo
	if *logLevel != "" {
		level = logger.ParseLevel(*logLevel)
	} else if cfg.Log.Level != "" {
		level = logger.ParseLevel(cfg.Log.Level)
	}

	colored := !*noColor && term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""

	rootLog, err := logger.Setup(logger.Config{
		Level:     level,
		FileLevel: slog.LevelDebug,
		Colored:   colored,
		LogDir:    cfg.Log.Dir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		os.Exit(1)
	}

	if err := config.Validate(cfg); err != nil {
		rootLog.Error("Invalid config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	if err := run(cfg, rootLog); err != nil {
		rootLog.Error("Service failed", "error", err)
		os.Exit(1)
	}
	rootLog.Info("👋 Shutdown complete. Goodbye!")
}

func run(cfg *config.Config, rootLog *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootLog.Info("🚀 Starting live game service", "addr", cfg.Server.Addr)

	db, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	rootLog.Info("📂 Player store ready", "path", cfg.Database.Path)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	cache := livegame.NewCache(cfg.LiveCache, rootLog, m)
	metrics.RegisterCacheSize(reg, cache.Len)

	svc := livegame.NewService(livegame.Deps{
		Cache:      cache,
		Source:     riot.NewClient(cfg.Riot, rootLog),
		Players:    db,
		Stats:      db,
		Encounters: db,
		Metrics:    m,
	}, cfg.Stats, rootLog)

	srv := server.New(cfg.Server, server.Options{
		Service:      svc,
		CacheStats:   cache.Stats,
		CacheLen:     cache.Len,
		Gatherer:     reg,
		FeedInterval: cfg.LiveFeed.PollInterval,
	}, rootLog)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return cache.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	go func() {
		<-ctx.Done()
		rootLog.Info("Received shutdown signal")
		time.AfterFunc(30*time.Second, func() {
			rootLog.Error("Graceful shutdown timed out, forcing exit")
			os.Exit(1)
		})
	}()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
