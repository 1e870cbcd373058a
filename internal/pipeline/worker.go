package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/render"
)

// Worker processes a single document job: render the file into
// fragments, run the outline extractor, attach the result.
type Worker struct {
	extractor *outline.Extractor
	log       *slog.Logger
	budget    time.Duration
}

func NewWorker(ext *outline.Extractor, log *slog.Logger, budget time.Duration) *Worker {
	return &Worker{extractor: ext, log: log, budget: budget}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusRendering, "rendering")
	r, err := render.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "rendering")
		return
	}

	frags, err := r.Render(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("render failed", "error", err)
		job.AddError(fmt.Sprintf("render: %s", err))
		job.SetStatus(StatusFailed, "rendering")
		return
	}

	job.SetStatus(StatusClassify, "classifying")
	res := w.extractor.Extract(frags)
	job.SetResult(&res)

	if res.Error != "" {
		log.Error("extraction fault", "error", res.Error)
		job.AddError(res.Error)
		job.SetStatus(StatusFailed, "classifying")
		return
	}

	if res.ProcessingTime > w.budget.Seconds() {
		log.Warn("processing exceeded budget",
			"seconds", res.ProcessingTime,
			"budget", w.budget.Seconds(),
		)
	}

	log.Info("outline extracted",
		"title", res.Title,
		"headings", len(res.Outline),
		"seconds", res.ProcessingTime,
	)
	job.SetStatus(StatusCompleted, "done")
}
