package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/outliner/internal/api"
	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/pipeline"
	"github.com/dgallion1/outliner/internal/render"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	ext := outline.NewExtractor(outline.DefaultClassifierConfig())

	// Mode selection: "serve" runs the HTTP API; otherwise a batch run
	// over the input directory when it exists, or a single file given
	// as an argument.
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServe(cfg, ext, log)
		return
	}

	if len(os.Args) > 1 {
		if err := runFile(cfg, ext, os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, "outliner:", err)
			os.Exit(1)
		}
		return
	}

	if _, err := os.Stat(cfg.InputDir); err == nil {
		if _, err := pipeline.RunBatch(cfg, ext, log); err != nil {
			log.Error("batch run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintln(os.Stderr, "usage: outliner serve | outliner <file> | INPUT_DIR batch mode")
	os.Exit(2)
}

// runFile extracts one document and prints its outline JSON to stdout.
func runFile(cfg config.Config, ext *outline.Extractor, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := render.ForFile(path)
	if err != nil {
		return err
	}
	frags, err := r.Render(f, path)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	res := ext.Extract(frags)
	if res.ProcessingTime > cfg.TimeBudget.Seconds() {
		fmt.Fprintf(os.Stderr, "warning: processing took %.2fs (budget %.0fs)\n",
			res.ProcessingTime, cfg.TimeBudget.Seconds())
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runServe(cfg config.Config, ext *outline.Extractor, log *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orch := pipeline.NewOrchestrator(cfg, ext, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting outliner", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
