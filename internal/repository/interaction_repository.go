package repository

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"story-platform/internal/domain"
	"story-platform/internal/logger"
	"story-platform/internal/metrics"
)

// FileInteractionRepository implements InteractionRepository on a single
// JSON document holding the nested likes/ratings maps.
type FileInteractionRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileInteractionRepository creates a FileInteractionRepository backed by
// dataDir/filename.
func NewFileInteractionRepository(dataDir, filename string) *FileInteractionRepository {
	return &FileInteractionRepository{path: filepath.Join(dataDir, filename)}
}

// Load returns the interaction ledger, degrading to the seed dataset when
// the file is missing or unreadable. Load never fails.
func (r *FileInteractionRepository) Load(ctx context.Context) (domain.InteractionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// Save overwrites the interaction document.
func (r *FileInteractionRepository) Save(ctx context.Context, set domain.InteractionSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(set)
}

// Update runs one load-mutate-save cycle with the mutex held throughout.
func (r *FileInteractionRepository) Update(ctx context.Context, fn func(domain.InteractionSet) (domain.InteractionSet, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated, err := fn(r.load())
	if err != nil {
		return err
	}
	return r.save(updated)
}

func (r *FileInteractionRepository) load() domain.InteractionSet {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.WithLabelValues("interactions", "load").Observe(time.Since(start).Seconds())
	}()

	var set domain.InteractionSet
	err := readJSONFile(r.path, &set)
	switch {
	case err == nil:
		set.Normalize()
		metrics.StoreOperationsTotal.WithLabelValues("interactions", "load", "ok").Inc()
		return set
	case os.IsNotExist(err):
		metrics.StoreSeedFallbacksTotal.WithLabelValues("interactions", "missing").Inc()
		return SeedInteractions()
	default:
		logger.Warn("interactions file unreadable, serving seed dataset",
			slog.String("path", r.path),
			slog.String("error", err.Error()))
		metrics.StoreSeedFallbacksTotal.WithLabelValues("interactions", "corrupt").Inc()
		return SeedInteractions()
	}
}

func (r *FileInteractionRepository) save(set domain.InteractionSet) error {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.WithLabelValues("interactions", "save").Observe(time.Since(start).Seconds())
	}()

	if err := writeJSONFile(r.path, set); err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("interactions", "save", "error").Inc()
		return err
	}
	metrics.StoreOperationsTotal.WithLabelValues("interactions", "save", "ok").Inc()
	return nil
}
