package repository

import (
	"context"

	"story-platform/internal/domain"
)

// StoryRepository defines whole-collection access to stories.
//
// Load never fails with "not found": when no durable state exists, or the
// backing medium is unreadable or corrupt, it degrades to the seed dataset
// so callers always get a usable collection. Save is a full-collection
// overwrite; the caller must have merged its change into the complete list
// first. Update runs a load-mutate-save cycle under the store's mutex,
// which serializes writers within one process; concurrent writers in other
// processes remain last-writer-wins at whole-collection granularity.
type StoryRepository interface {
	Load(ctx context.Context) ([]domain.Story, error)
	Save(ctx context.Context, stories []domain.Story) error
	Update(ctx context.Context, fn func([]domain.Story) ([]domain.Story, error)) error
}

// CommentRepository defines whole-collection access to comments, with the
// same Load/Save/Update contract as StoryRepository.
type CommentRepository interface {
	Load(ctx context.Context) ([]domain.Comment, error)
	Save(ctx context.Context, comments []domain.Comment) error
	Update(ctx context.Context, fn func([]domain.Comment) ([]domain.Comment, error)) error
}

// InteractionRepository defines whole-document access to the interaction
// ledger (ratings + likes), with the same Load/Save/Update contract.
type InteractionRepository interface {
	Load(ctx context.Context) (domain.InteractionSet, error)
	Save(ctx context.Context, set domain.InteractionSet) error
	Update(ctx context.Context, fn func(domain.InteractionSet) (domain.InteractionSet, error)) error
}
