package service

import (
	"context"

	"story-platform/internal/domain"
)

// StoryServiceInterface defines the gateway operations over stories and
// comments. Used for dependency injection in handlers and tests.
type StoryServiceInterface interface {
	ListStories(ctx context.Context) ([]domain.Story, error)
	GetStory(ctx context.Context, id string) (*domain.Story, error)
	CreateStory(ctx context.Context, story domain.Story) (*domain.Story, error)
	UpdateStory(ctx context.Context, id string, story domain.Story) (*domain.Story, error)
	DeleteStory(ctx context.Context, id string) error
	TogglePublish(ctx context.Context, id string) (*domain.Story, error)

	GetStoryComments(ctx context.Context, storyID string) ([]domain.Comment, error)
	AddComment(ctx context.Context, storyID, userID, username, content string) (*domain.Comment, error)
	EditComment(ctx context.Context, commentID, content string) (*domain.Comment, error)

	// Caller-driven cascade helpers; the core never cascades implicitly.
	RemoveStoryComments(ctx context.Context, storyID string) error
	RemoveStoryInteractions(ctx context.Context, storyID string) error
}

// InteractionServiceInterface defines the interaction ledger operations.
type InteractionServiceInterface interface {
	ToggleLike(ctx context.Context, storyID, userID string) (bool, error)
	RateStory(ctx context.Context, storyID, userID string, score float64) (*domain.Rating, error)
	GetLikes(ctx context.Context, storyID string) ([]domain.Like, error)
	GetUserInteraction(ctx context.Context, storyID, userID string) (*domain.UserInteraction, error)
}

// StatsServiceInterface defines the aggregate maintainer operations.
type StatsServiceInterface interface {
	UpdateStoryStats(ctx context.Context, storyID string) error
	UpdateCommentCount(ctx context.Context, storyID string) error
	IncrementViewCount(ctx context.Context, storyID string) error
	GetStoryStats(ctx context.Context, storyID string) (*domain.StoryStats, error)
}
