package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story-platform/internal/domain"
	"story-platform/internal/validator"
)

func validStory() domain.Story {
	return domain.Story{
		Title:       "The Lighthouse Keeper's Daughter",
		Content:     "The tide brought the bottle in...",
		Author:      "Elena Voss",
		AccessLevel: "free",
	}
}

func TestValidateStory(t *testing.T) {
	v := validator.NewValidator()

	t.Run("valid story passes", func(t *testing.T) {
		s := validStory()
		require.NoError(t, v.ValidateStory(&s))
	})

	t.Run("missing title fails", func(t *testing.T) {
		s := validStory()
		s.Title = ""
		err := v.ValidateStory(&s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title_required")
	})

	t.Run("missing content fails", func(t *testing.T) {
		s := validStory()
		s.Content = ""
		require.Error(t, v.ValidateStory(&s))
	})

	t.Run("invalid access level fails", func(t *testing.T) {
		s := validStory()
		s.AccessLevel = "vip"
		err := v.ValidateStory(&s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_access_level")
	})
}

func TestValidateComment(t *testing.T) {
	v := validator.NewValidator()

	t.Run("valid comment passes", func(t *testing.T) {
		c := domain.Comment{StoryID: "s1", UserID: "u1", Content: "great story"}
		require.NoError(t, v.ValidateComment(&c))
	})

	t.Run("empty content fails", func(t *testing.T) {
		c := domain.Comment{StoryID: "s1", UserID: "u1", Content: ""}
		require.Error(t, v.ValidateComment(&c))
	})

	t.Run("whitespace-only content fails", func(t *testing.T) {
		c := domain.Comment{StoryID: "s1", UserID: "u1", Content: "   \t\n"}
		err := v.ValidateComment(&c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content_blank")
	})

	t.Run("missing story reference fails", func(t *testing.T) {
		c := domain.Comment{UserID: "u1", Content: "hello"}
		require.Error(t, v.ValidateComment(&c))
	})
}

func TestValidateScore(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		name  string
		score float64
		valid bool
	}{
		{"minimum", 1, true},
		{"maximum", 5, true},
		{"middle", 3.5, true},
		{"zero", 0, false},
		{"above range", 7, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateScore(tt.score)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	v := validator.NewValidator()

	assert.True(t, validator.IsValidationError(v.ValidateScore(9)))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("disk full")))
	assert.False(t, validator.IsValidationError(domain.ErrNotFound))
}
