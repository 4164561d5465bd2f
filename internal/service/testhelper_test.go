package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"story-platform/internal/domain"
	"story-platform/internal/repository"
	"story-platform/internal/service"
	"story-platform/internal/validator"
)

// testEnv wires real file-backed repositories in a temp directory to the
// services under test. Collections start empty, not seeded, so tests state
// their own fixtures.
type testEnv struct {
	storyRepo       repository.StoryRepository
	commentRepo     repository.CommentRepository
	interactionRepo repository.InteractionRepository

	stats        *service.StatsService
	interactions *service.InteractionService
	stories      *service.StoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	storyRepo := repository.NewFileStoryRepository(dir, "stories.json")
	commentRepo := repository.NewFileCommentRepository(dir, "comments.json")
	interactionRepo := repository.NewFileInteractionRepository(dir, "interactions.json")

	require.NoError(t, storyRepo.Save(ctx, []domain.Story{}))
	require.NoError(t, commentRepo.Save(ctx, []domain.Comment{}))
	require.NoError(t, interactionRepo.Save(ctx, domain.NewInteractionSet()))

	v := validator.NewValidator()
	stats := service.NewStatsService(storyRepo, commentRepo, interactionRepo)

	return &testEnv{
		storyRepo:       storyRepo,
		commentRepo:     commentRepo,
		interactionRepo: interactionRepo,
		stats:           stats,
		interactions:    service.NewInteractionService(interactionRepo, stats, v),
		stories:         service.NewStoryService(storyRepo, commentRepo, interactionRepo, stats, v),
	}
}

// createStory persists a minimal valid story and returns it.
func (e *testEnv) createStory(t *testing.T, title string) *domain.Story {
	t.Helper()
	story, err := e.stories.CreateStory(context.Background(), domain.Story{
		Title:       title,
		Content:     "content of " + title,
		Author:      "tester",
		AccessLevel: "free",
	})
	require.NoError(t, err)
	return story
}

// getStory reloads one story from the store.
func (e *testEnv) getStory(t *testing.T, id string) *domain.Story {
	t.Helper()
	story, err := e.stories.GetStory(context.Background(), id)
	require.NoError(t, err)
	return story
}
