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

// FileCommentRepository implements CommentRepository on a single JSON file,
// with the same whole-collection contract as FileStoryRepository.
type FileCommentRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileCommentRepository creates a FileCommentRepository backed by
// dataDir/filename.
func NewFileCommentRepository(dataDir, filename string) *FileCommentRepository {
	return &FileCommentRepository{path: filepath.Join(dataDir, filename)}
}

// Load returns the full comment collection, degrading to the seed dataset
// when the file is missing or unreadable. Load never fails.
func (r *FileCommentRepository) Load(ctx context.Context) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// Save overwrites the full comment collection.
func (r *FileCommentRepository) Save(ctx context.Context, comments []domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(comments)
}

// Update runs one load-mutate-save cycle with the mutex held throughout.
func (r *FileCommentRepository) Update(ctx context.Context, fn func([]domain.Comment) ([]domain.Comment, error)) error {
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

func (r *FileCommentRepository) load() []domain.Comment {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.WithLabelValues("comments", "load").Observe(time.Since(start).Seconds())
	}()

	var comments []domain.Comment
	err := readJSONFile(r.path, &comments)
	switch {
	case err == nil:
		metrics.StoreOperationsTotal.WithLabelValues("comments", "load", "ok").Inc()
		return comments
	case os.IsNotExist(err):
		metrics.StoreSeedFallbacksTotal.WithLabelValues("comments", "missing").Inc()
		return SeedComments()
	default:
		logger.Warn("comments file unreadable, serving seed dataset",
			slog.String("path", r.path),
			slog.String("error", err.Error()))
		metrics.StoreSeedFallbacksTotal.WithLabelValues("comments", "corrupt").Inc()
		return SeedComments()
	}
}

func (r *FileCommentRepository) save(comments []domain.Comment) error {
	start := time.Now()
	defer func() {
		metrics.StoreOperationDuration.WithLabelValues("comments", "save").Observe(time.Since(start).Seconds())
	}()

	if err := writeJSONFile(r.path, comments); err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("comments", "save", "error").Inc()
		return err
	}
	metrics.StoreOperationsTotal.WithLabelValues("comments", "save", "ok").Inc()
	return nil
}
