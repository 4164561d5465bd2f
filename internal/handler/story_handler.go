package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"story-platform/internal/domain"
	"story-platform/internal/service"
)

// StoryHandler handles story-related HTTP requests.
type StoryHandler struct {
	storyService service.StoryServiceInterface
	statsService service.StatsServiceInterface
}

// NewStoryHandler creates a new StoryHandler.
func NewStoryHandler(storyService service.StoryServiceInterface, statsService service.StatsServiceInterface) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		statsService: statsService,
	}
}

// StoryRequest is the write payload for creating or updating a story.
type StoryRequest struct {
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	AccessLevel string   `json:"access_level"`
	Image       *string  `json:"image"`
}

// StoryResponse represents a story in the API response.
type StoryResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	Author       string   `json:"author"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags,omitempty"`
	AccessLevel  string   `json:"access_level"`
	IsPublished  bool     `json:"is_published"`
	Rating       float64  `json:"rating"`
	RatingCount  int      `json:"rating_count"`
	ViewCount    int      `json:"view_count"`
	CommentCount int      `json:"comment_count"`
	Image        *string  `json:"image,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// toStoryResponse converts a domain.Story to a StoryResponse.
func toStoryResponse(s *domain.Story) StoryResponse {
	return StoryResponse{
		ID:           s.ID,
		Title:        s.Title,
		Excerpt:      s.Excerpt,
		Content:      s.Content,
		Author:       s.Author,
		Category:     s.Category,
		Tags:         s.Tags,
		AccessLevel:  s.AccessLevel,
		IsPublished:  s.IsPublished,
		Rating:       s.Rating,
		RatingCount:  s.RatingCount,
		ViewCount:    s.ViewCount,
		CommentCount: s.CommentCount,
		Image:        s.Image,
		CreatedAt:    s.CreatedAt.Format(TimeFormat),
		UpdatedAt:    s.UpdatedAt.Format(TimeFormat),
	}
}

func (r StoryRequest) toDomain() domain.Story {
	return domain.Story{
		Title:       r.Title,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Author:      r.Author,
		Category:    r.Category,
		Tags:        r.Tags,
		AccessLevel: r.AccessLevel,
		Image:       r.Image,
	}
}

// ListStories handles GET /api/v1/stories
func (h *StoryHandler) ListStories(c *gin.Context) {
	stories, err := h.storyService.ListStories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]StoryResponse, 0, len(stories))
	for i := range stories {
		responses = append(responses, toStoryResponse(&stories[i]))
	}
	c.JSON(http.StatusOK, gin.H{"stories": responses})
}

// GetStory handles GET /api/v1/stories/:id
func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.storyService.GetStory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStoryResponse(story))
}

// CreateStory handles POST /api/v1/stories
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	story, err := h.storyService.CreateStory(c.Request.Context(), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toStoryResponse(story))
}

// UpdateStory handles PUT /api/v1/stories/:id
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	story, err := h.storyService.UpdateStory(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStoryResponse(story))
}

// DeleteStory handles DELETE /api/v1/stories/:id
//
// The cascade over comments and interactions happens here, caller-side: the
// core removes only the story record itself.
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.storyService.DeleteStory(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.storyService.RemoveStoryComments(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.storyService.RemoveStoryInteractions(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "story deleted"})
}

// TogglePublish handles POST /api/v1/stories/:id/publish
func (h *StoryHandler) TogglePublish(c *gin.Context) {
	story, err := h.storyService.TogglePublish(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStoryResponse(story))
}

// IncrementView handles POST /api/v1/stories/:id/view
//
// Always succeeds: a view of a story that vanished is silently dropped.
func (h *StoryHandler) IncrementView(c *gin.Context) {
	if err := h.statsService.IncrementViewCount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "view recorded"})
}

// GetStoryStats handles GET /api/v1/stories/:id/stats
func (h *StoryHandler) GetStoryStats(c *gin.Context) {
	stats, err := h.statsService.GetStoryStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
