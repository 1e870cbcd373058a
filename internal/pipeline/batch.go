package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/render"
)

// BatchSummary reports the outcome of a directory run.
type BatchSummary struct {
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// RunBatch processes every supported file in cfg.InputDir with the
// worker pool, writing one JSON outline per input into cfg.OutputDir.
// A failed document is reported and skipped; it never stops its
// siblings.
func RunBatch(cfg config.Config, ext *outline.Extractor, log *slog.Logger) (BatchSummary, error) {
	start := time.Now()

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("create output dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !render.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		log.Warn("no supported files in input directory", "dir", cfg.InputDir)
		return BatchSummary{Elapsed: time.Since(start)}, nil
	}

	type fileResult struct {
		name string
		err  error
	}
	work := make(chan string)
	results := make(chan fileResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := NewWorker(ext, log, cfg.TimeBudget)
			for name := range work {
				results <- fileResult{name: name, err: processFile(cfg, w, name)}
			}
		}()
	}

	for _, name := range files {
		work <- name
	}
	close(work)
	wg.Wait()
	close(results)

	summary := BatchSummary{Elapsed: time.Since(start)}
	for r := range results {
		if r.err != nil {
			log.Error("batch file failed", "file", r.name, "error", r.err)
			summary.Failed++
			continue
		}
		summary.Processed++
	}

	log.Info("batch complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
		"seconds", summary.Elapsed.Seconds(),
	)
	return summary, nil
}

// processFile runs one document through a worker and writes the JSON
// result next to its name in the output directory.
func processFile(cfg config.Config, w *Worker, name string) error {
	data, err := os.ReadFile(filepath.Join(cfg.InputDir, name))
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	job := NewJob(name, data)
	w.Process(job)

	snap := job.Snapshot()
	if snap.Result == nil {
		return fmt.Errorf("no result: %s", strings.Join(snap.Errors, "; "))
	}

	outName := strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	out, err := json.MarshalIndent(snap.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, outName), out, 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
