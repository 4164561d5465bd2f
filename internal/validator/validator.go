package validator

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"story-platform/internal/domain"
)

var validAccessLevels = []interface{}{"free", "premium"}

const (
	// MinScore and MaxScore bound a rating score.
	MinScore = 1
	MaxScore = 5
)

// Validator provides validation methods for domain entities. All methods
// reject bad input before any store mutation happens.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStory validates a Story entity.
func (v *Validator) ValidateStory(s *domain.Story) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&s.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&s.Author,
			validation.Required.Error("author_required"),
		),
		validation.Field(&s.AccessLevel,
			validation.Required.Error("access_level_required"),
			validation.In(validAccessLevels...).Error("invalid_access_level"),
		),
	)
}

// ValidateComment validates a Comment entity. Content must be non-empty
// after trimming whitespace.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.StoryID,
			validation.Required.Error("story_id_required"),
		),
		validation.Field(&c.UserID,
			validation.Required.Error("user_id_required"),
		),
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
		),
	)
	if err != nil {
		return err
	}

	if strings.TrimSpace(c.Content) == "" {
		return validation.Errors{
			"content": validation.NewError("content_blank", "content must not be blank"),
		}
	}

	return nil
}

// ValidateScore validates a rating score against the [1,5] range.
func (v *Validator) ValidateScore(score float64) error {
	if score < MinScore || score > MaxScore {
		return validation.Errors{
			"score": validation.NewError("score_out_of_range", "score must be between 1 and 5"),
		}
	}
	return nil
}

// IsValidationError reports whether err originated from one of the
// validation methods above, as opposed to a storage failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
