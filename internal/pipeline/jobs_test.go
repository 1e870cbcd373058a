package pipeline

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestNewJob(t *testing.T) {
	job := NewJob("report.pdf", []byte("data"))
	if job.ID == "" {
		t.Fatal("expected a job ID")
	}
	if len(job.ID) != 26 {
		t.Errorf("expected a 26-character ULID, got %d chars", len(job.ID))
	}
	if job.Status != StatusQueued {
		t.Errorf("expected queued status, got %s", job.Status)
	}
	if string(job.FileData()) != "data" {
		t.Errorf("expected file data to round-trip")
	}
}

func TestGenerateULID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := generateULID()
		if seen[id] {
			t.Fatalf("duplicate ULID: %s", id)
		}
		seen[id] = true
		if len(id) != 26 {
			t.Fatalf("bad ULID length: %s", id)
		}
		for _, c := range id {
			if !strings.ContainsRune(crockford, c) {
				t.Fatalf("character %q outside the Crockford alphabet in %s", c, id)
			}
		}
	}
}

func TestJobSnapshot(t *testing.T) {
	job := NewJob("doc.txt", nil)
	job.SetStatus(StatusFailed, "rendering")
	job.AddError("boom")

	snap := job.Snapshot()
	if snap.Status != StatusFailed || snap.Phase != "rendering" {
		t.Errorf("unexpected snapshot state: %+v", snap)
	}
	if len(snap.Errors) != 1 || snap.Errors[0] != "boom" {
		t.Errorf("expected recorded error, got %v", snap.Errors)
	}
	if snap.Result != nil {
		t.Errorf("expected no result, got %+v", snap.Result)
	}
}

func TestJobStore_Cleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	old := NewJob("old.txt", nil)
	old.UpdatedAt = time.Now().Add(-time.Minute)
	store.Put(old)

	fresh := NewJob("fresh.txt", nil)
	store.Put(fresh)

	store.Cleanup()

	if store.Get(old.ID) != nil {
		t.Error("expected the expired job to be evicted")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("expected the fresh job to survive")
	}
}

func TestWorker_ProcessTextDocument(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ext := outline.NewExtractor(outline.DefaultClassifierConfig())
	w := NewWorker(ext, log, 10*time.Second)

	job := NewJob("notes.txt", []byte("Meeting Notes Archive\n\nitems discussed during the planning session\n"))
	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (errors: %v)", snap.Status, snap.Errors)
	}
	if snap.Result == nil {
		t.Fatal("expected a result")
	}
	if snap.Result.Title == "" {
		t.Error("expected a title, even the placeholder")
	}
}

func TestWorker_UnsupportedFormat(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ext := outline.NewExtractor(outline.DefaultClassifierConfig())
	w := NewWorker(ext, log, 10*time.Second)

	job := NewJob("archive.zip", []byte("not a document"))
	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", snap.Status)
	}
	if len(snap.Errors) == 0 {
		t.Error("expected an error to be recorded")
	}
}
