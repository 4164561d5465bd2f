package domain

import "time"

// Story represents a story entity in the system. Rating, RatingCount and
// CommentCount are aggregate fields cached from the interaction ledger and
// the comment collection; ViewCount is a plain monotonic counter.
type Story struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	AccessLevel  string    `json:"access_level"`
	IsPublished  bool      `json:"is_published"`
	Rating       float64   `json:"rating"`
	RatingCount  int       `json:"rating_count"`
	ViewCount    int       `json:"view_count"`
	CommentCount int       `json:"comment_count"`
	Image        *string   `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidAccessLevels contains all valid story access levels.
var ValidAccessLevels = []string{"free", "premium"}

// IsValidAccessLevel checks if an access level is valid.
func IsValidAccessLevel(level string) bool {
	for _, l := range ValidAccessLevels {
		if l == level {
			return true
		}
	}
	return false
}

// StoryStats holds the derived statistics for a single story, computed from
// the interaction ledger and the comment collection.
type StoryStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
	TotalLikes    int     `json:"total_likes"`
	TotalComments int     `json:"total_comments"`
}
