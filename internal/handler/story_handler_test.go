package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story-platform/internal/domain"
	"story-platform/internal/handler"
)

func TestStoryHandler_CreateStory(t *testing.T) {
	t.Run("valid payload returns 201 with zeroed aggregates", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/stories", gin.H{
			"title":        "The Lighthouse",
			"content":      "body",
			"author":       "ana",
			"access_level": "premium",
			"tags":         []string{"sea"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp handler.StoryResponse
		decode(t, rec, &resp)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "premium", resp.AccessLevel)
		assert.Equal(t, 0.0, resp.Rating)
		assert.Equal(t, 0, resp.ViewCount)
		assert.False(t, resp.IsPublished)
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/stories", gin.H{
			"content": "body",
			"author":  "ana",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/stories", "not an object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStoryHandler_GetStory(t *testing.T) {
	api := newTestAPI(t)
	id := api.createStory(t, "Readable")

	t.Run("existing story returns 200", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/v1/stories/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.StoryResponse
		decode(t, rec, &resp)
		assert.Equal(t, "Readable", resp.Title)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/v1/stories/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStoryHandler_ListStories(t *testing.T) {
	api := newTestAPI(t)
	api.createStory(t, "One")
	api.createStory(t, "Two")

	rec := api.do(t, http.MethodGet, "/api/v1/stories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Stories []handler.StoryResponse `json:"stories"`
	}
	decode(t, rec, &resp)
	assert.Len(t, resp.Stories, 2)
}

func TestStoryHandler_UpdateStory(t *testing.T) {
	api := newTestAPI(t)
	id := api.createStory(t, "Before")

	t.Run("edit succeeds", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/api/v1/stories/"+id, gin.H{
			"title":        "After",
			"content":      "new body",
			"author":       "ana",
			"access_level": "free",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.StoryResponse
		decode(t, rec, &resp)
		assert.Equal(t, "After", resp.Title)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/api/v1/stories/missing", gin.H{
			"title":        "x",
			"content":      "y",
			"author":       "z",
			"access_level": "free",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid access level returns 400", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/api/v1/stories/"+id, gin.H{
			"title":        "After",
			"content":      "new body",
			"author":       "ana",
			"access_level": "gold",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStoryHandler_DeleteStory(t *testing.T) {
	t.Run("delete cascades over comments and interactions", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createStory(t, "Doomed")

		rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/comments", gin.H{
			"user_id": "u1", "username": "alice", "content": "bye",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/like", gin.H{"user_id": "u1"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = api.do(t, http.MethodDelete, "/api/v1/stories/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = api.do(t, http.MethodGet, "/api/v1/stories/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = api.do(t, http.MethodGet, "/api/v1/stories/"+id+"/comments", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var comments struct {
			Comments []handler.CommentResponse `json:"comments"`
		}
		decode(t, rec, &comments)
		assert.Empty(t, comments.Comments)

		rec = api.do(t, http.MethodGet, "/api/v1/stories/"+id+"/likes", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var likes struct {
			Count int `json:"count"`
		}
		decode(t, rec, &likes)
		assert.Equal(t, 0, likes.Count)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		api := newTestAPI(t)
		rec := api.do(t, http.MethodDelete, "/api/v1/stories/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStoryHandler_TogglePublish(t *testing.T) {
	api := newTestAPI(t)
	id := api.createStory(t, "Draft")

	rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/publish", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.StoryResponse
	decode(t, rec, &resp)
	assert.True(t, resp.IsPublished)

	rec = api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/publish", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.False(t, resp.IsPublished)
}

func TestStoryHandler_IncrementView(t *testing.T) {
	api := newTestAPI(t)
	id := api.createStory(t, "Watched")

	for i := 0; i < 3; i++ {
		rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/view", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := api.do(t, http.MethodGet, "/api/v1/stories/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.StoryResponse
	decode(t, rec, &resp)
	assert.Equal(t, 3, resp.ViewCount)

	// vanished story: the view is silently dropped
	rec = api.do(t, http.MethodPost, "/api/v1/stories/missing/view", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoryHandler_GetStoryStats(t *testing.T) {
	api := newTestAPI(t)
	id := api.createStory(t, "Measured")

	rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/rating", gin.H{"user_id": "u1", "score": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/rating", gin.H{"user_id": "u2", "score": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/like", gin.H{"user_id": "u1"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/comments", gin.H{
		"user_id": "u1", "username": "alice", "content": "nice",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/stories/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.StoryStats
	decode(t, rec, &stats)
	assert.Equal(t, 4.5, stats.AverageRating)
	assert.Equal(t, 2, stats.TotalRatings)
	assert.Equal(t, 1, stats.TotalLikes)
	assert.Equal(t, 1, stats.TotalComments)

	rec = api.do(t, http.MethodGet, "/api/v1/stories/missing/stats", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentHandler(t *testing.T) {
	t.Run("add and list newest first", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createStory(t, "Threaded")

		rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/comments", gin.H{
			"user_id": "u1", "username": "alice", "content": "first",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/comments", gin.H{
			"user_id": "u2", "username": "bob", "content": "second",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = api.do(t, http.MethodGet, "/api/v1/stories/"+id+"/comments", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Comments []handler.CommentResponse `json:"comments"`
		}
		decode(t, rec, &resp)
		require.Len(t, resp.Comments, 2)
		assert.Equal(t, "second", resp.Comments[0].Content)
		assert.Equal(t, "first", resp.Comments[1].Content)

		rec = api.do(t, http.MethodGet, "/api/v1/stories/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var story handler.StoryResponse
		decode(t, rec, &story)
		assert.Equal(t, 2, story.CommentCount)
	})

	t.Run("missing user_id returns 400", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createStory(t, "Strict")

		rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/comments", gin.H{
			"username": "alice", "content": "anonymous",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank content returns 400", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createStory(t, "Guarded")

		rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/comments", gin.H{
			"user_id": "u1", "username": "alice", "content": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("edit marks the comment edited", func(t *testing.T) {
		api := newTestAPI(t)
		id := api.createStory(t, "Edited")

		rec := api.do(t, http.MethodPost, "/api/v1/stories/"+id+"/comments", gin.H{
			"user_id": "u1", "username": "alice", "content": "typo'd",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created handler.CommentResponse
		decode(t, rec, &created)

		rec = api.do(t, http.MethodPut, "/api/v1/comments/"+created.ID, gin.H{"content": "fixed"})
		require.Equal(t, http.StatusOK, rec.Code)

		var edited handler.CommentResponse
		decode(t, rec, &edited)
		assert.Equal(t, "fixed", edited.Content)
		assert.True(t, edited.IsEdited)
	})

	t.Run("edit of unknown comment returns 404", func(t *testing.T) {
		api := newTestAPI(t)
		rec := api.do(t, http.MethodPut, "/api/v1/comments/missing", gin.H{"content": "anything"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
