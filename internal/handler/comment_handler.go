package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"story-platform/internal/domain"
	"story-platform/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	storyService service.StoryServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(storyService service.StoryServiceInterface) *CommentHandler {
	return &CommentHandler{storyService: storyService}
}

// AddCommentRequest is the payload for posting a comment.
type AddCommentRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

// EditCommentRequest is the payload for editing a comment.
type EditCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        string `json:"id"`
	StoryID   string `json:"story_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	IsEdited  bool   `json:"is_edited"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// toCommentResponse converts a domain.Comment to a CommentResponse.
func toCommentResponse(cm *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        cm.ID,
		StoryID:   cm.StoryID,
		UserID:    cm.UserID,
		Username:  cm.Username,
		Content:   cm.Content,
		IsEdited:  cm.IsEdited,
		CreatedAt: cm.CreatedAt.Format(TimeFormat),
		UpdatedAt: cm.UpdatedAt.Format(TimeFormat),
	}
}

// ListComments handles GET /api/v1/stories/:id/comments - newest first.
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.storyService.GetStoryComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"comments": responses})
}

// AddComment handles POST /api/v1/stories/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	comment, err := h.storyService.AddComment(c.Request.Context(), c.Param("id"), req.UserID, req.Username, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// EditComment handles PUT /api/v1/comments/:id
func (h *CommentHandler) EditComment(c *gin.Context) {
	var req EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.storyService.EditComment(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCommentResponse(comment))
}
