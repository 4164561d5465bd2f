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

// FileStoryRepository implements StoryRepository on a single JSON file
// holding the whole collection. A per-store mutex serializes load-mutate-save
// cycles within the process; writers in other processes are not coordinated.
type FileStoryRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileStoryRepository creates a FileStoryRepository backed by
// dataDir/filename.
func NewFileStoryRepository(dataDir, filename string) *FileStoryRepository {
	return &FileStoryRepository{path: filepath.Join(dataDir, filename)}
}

// Load returns the full story collection. A missing, unreadable, or corrupt
// file degrades to the seed dataset; Load never fails.
func (r *FileStoryRepository) Load(ctx context.Context) ([]domain.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// Save overwrites the full story collection. The caller must have merged its
// change into the complete list. I/O failures propagate untouched.
func (r *FileStoryRepository) Save(ctx context.Context, stories []domain.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(stories)
}

// Update runs one load-mutate-save cycle with the mutex held throughout.
func (r *FileStoryRepository) Update(ctx context.Context, fn func([]domain.Story) ([]domain.Story, error)) error {
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

func (r *FileStoryRepository) load() []domain.Story {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.WithLabelValues("stories", "load").Observe(time.Since(start).Seconds())
	}()

	var stories []domain.Story
	err := readJSONFile(r.path, &stories)
	switch {
	case err == nil:
		metrics.StoreOperationsTotal.WithLabelValues("stories", "load", "ok").Inc()
		return stories
	case os.IsNotExist(err):
		metrics.StoreSeedFallbacksTotal.WithLabelValues("stories", "missing").Inc()
		return SeedStories()
	default:
		logger.Warn("stories file unreadable, serving seed dataset",
			slog.String("path", r.path),
			slog.String("error", err.Error()))
		metrics.StoreSeedFallbacksTotal.WithLabelValues("stories", "corrupt").Inc()
		return SeedStories()
	}
}

func (r *FileStoryRepository) save(stories []domain.Story) error {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.WithLabelValues("stories", "save").Observe(time.Since(start).Seconds())
	}()

	if err := writeJSONFile(r.path, stories); err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("stories", "save", "error").Inc()
		return err
	}
	metrics.StoreOperationsTotal.WithLabelValues("stories", "save", "ok").Inc()
	return nil
}
