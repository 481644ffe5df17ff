package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"livepoll/cliparse"
	"livepoll/db"
	"livepoll/hub"
	"livepoll/middleware"
	"livepoll/observer"
	"livepoll/router"
	"livepoll/store"
	"livepoll/vote"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured engine
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Wire the core: stores -> coordinator -> hub
	broadcast := hub.New()
	polls := store.NewPolls(dbConn)
	ledger := store.NewLedger(dbConn)
	coord := vote.NewCoordinator(ledger, polls, broadcast)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Change-feed backstop: postgres only, best-effort.
	if cfg.DatabaseType == "postgres" {
		if err := db.CreateChangeFeed(dbConn); err != nil {
			slog.Warn("change feed setup failed, running without backstop", "error", err)
		} else {
			obs := observer.New(cfg.DatabaseURL, polls, broadcast)
			if err := obs.Start(ctx); err != nil {
				slog.Warn("change feed observer unavailable, running without backstop", "error", err)
			}
		}
	}

	// Create router
	mux := router.NewRouter(coord, broadcast, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
