package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tfrwatch/tfrwatch/app/advisory"
	"github.com/tfrwatch/tfrwatch/app/api"
	"github.com/tfrwatch/tfrwatch/app/cfg"
	"github.com/tfrwatch/tfrwatch/app/config"
	"github.com/tfrwatch/tfrwatch/app/faa"
	"github.com/tfrwatch/tfrwatch/app/pipeline"
	"github.com/tfrwatch/tfrwatch/app/store"
	"github.com/tfrwatch/tfrwatch/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting tfrwatch", "version", appCfg.Version)

	watchProfile, err := config.Load(appCfg.WatchFile)
	if err != nil {
		slog.Error("Failed to load watch profile", "error", err)
		os.Exit(1)
	}
	config.Apply(appCfg, watchProfile)

	keywords := advisory.LoadKeywords(appCfg.KeywordsFile)
	if watchProfile != nil {
		keywords = append(keywords, advisory.NormalizeKeywords(watchProfile.Criteria.Keywords)...)
	}
	if len(keywords) == 0 {
		slog.Info("No keywords configured, every advisory in category will match", "category", appCfg.Category)
	} else {
		slog.Info("Keyword criteria loaded", "count", len(keywords), "category", appCfg.Category)
	}

	cache, err := openStore(appCfg)
	if err != nil {
		slog.Error("Failed to open cache store", "storage", appCfg.Storage, "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	client := faa.NewClient(&http.Client{}, appCfg.ListURL, appCfg.DetailURL,
		appCfg.UserAgent, time.Duration(appCfg.FetchTimeout)*time.Second)

	matcher := advisory.NewMatcher(keywords)
	ingest := pipeline.New(client, cache, matcher,
		pipeline.NewLogNotifier(), appCfg.Category)

	scheduler := tasks.NewScheduler(ingest, time.Duration(appCfg.PollInterval)*time.Second)
	scheduler.Start()
	defer scheduler.Stop()

	apiHandler := api.NewHandler(cache, scheduler, appCfg.Category, matcher.KeywordCount())
	server := api.NewServer(apiHandler, appCfg.APIAccessKey, appCfg.Version)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler and store are stopped via defer
	slog.Info("Shutdown complete")
}

func openStore(appCfg *cfg.Cfg) (store.Store, error) {
	switch appCfg.Storage {
	case "sqlite":
		return store.NewSQLiteStore(appCfg.DBPath)
	default:
		return store.NewFileStore(appCfg.SnapshotPath, appCfg.HistoryPath), nil
	}
}
