package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"story-platform/internal/domain"
	"story-platform/internal/handler"
	"story-platform/internal/repository"
	"story-platform/internal/service"
	"story-platform/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testAPI is a full router over real file-backed stores in a temp dir.
type testAPI struct {
	router *gin.Engine

	stories      *service.StoryService
	interactions *service.InteractionService
	stats        *service.StatsService
}

func newTestAPI(t *testing.T) *testAPI {
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
	interactions := service.NewInteractionService(interactionRepo, stats, v)
	stories := service.NewStoryService(storyRepo, commentRepo, interactionRepo, stats, v)

	storyHandler := handler.NewStoryHandler(stories, stats)
	commentHandler := handler.NewCommentHandler(stories)
	interactionHandler := handler.NewInteractionHandler(interactions)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/stories", storyHandler.ListStories)
		api.POST("/stories", storyHandler.CreateStory)
		api.GET("/stories/:id", storyHandler.GetStory)
		api.PUT("/stories/:id", storyHandler.UpdateStory)
		api.DELETE("/stories/:id", storyHandler.DeleteStory)
		api.POST("/stories/:id/publish", storyHandler.TogglePublish)
		api.POST("/stories/:id/view", storyHandler.IncrementView)
		api.GET("/stories/:id/stats", storyHandler.GetStoryStats)

		api.GET("/stories/:id/comments", commentHandler.ListComments)
		api.POST("/stories/:id/comments", commentHandler.AddComment)
		api.PUT("/comments/:id", commentHandler.EditComment)

		api.POST("/stories/:id/like", interactionHandler.ToggleLike)
		api.GET("/stories/:id/likes", interactionHandler.GetLikes)
		api.POST("/stories/:id/rating", interactionHandler.RateStory)
		api.GET("/stories/:id/interaction", interactionHandler.GetUserInteraction)
	}

	return &testAPI{
		router:       router,
		stories:      stories,
		interactions: interactions,
		stats:        stats,
	}
}

// do performs a request with an optional JSON body and returns the recorder.
func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// createStory posts a minimal valid story through the API and returns its id.
func (a *testAPI) createStory(t *testing.T, title string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/stories", gin.H{
		"title":        title,
		"content":      "content of " + title,
		"author":       "tester",
		"access_level": "free",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.StoryResponse
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}
