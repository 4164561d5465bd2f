package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"story-platform/internal/service"
)

// InteractionHandler handles like and rating HTTP requests.
type InteractionHandler struct {
	interactionService service.InteractionServiceInterface
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(interactionService service.InteractionServiceInterface) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// LikeRequest is the payload for toggling a like.
type LikeRequest struct {
	UserID string `json:"user_id"`
}

// RatingRequest is the payload for submitting a rating.
type RatingRequest struct {
	UserID string  `json:"user_id"`
	Score  float64 `json:"score"`
}

// ToggleLike handles POST /api/v1/stories/:id/like
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	liked, err := h.interactionService.ToggleLike(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// RateStory handles POST /api/v1/stories/:id/rating
func (h *InteractionHandler) RateStory(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	rating, err := h.interactionService.RateStory(c.Request.Context(), c.Param("id"), req.UserID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// GetLikes handles GET /api/v1/stories/:id/likes
func (h *InteractionHandler) GetLikes(c *gin.Context) {
	likes, err := h.interactionService.GetLikes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes, "count": len(likes)})
}

// GetUserInteraction handles GET /api/v1/stories/:id/interaction?user_id=
func (h *InteractionHandler) GetUserInteraction(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	interaction, err := h.interactionService.GetUserInteraction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, interaction)
}
