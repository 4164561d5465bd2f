package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"story-platform/internal/domain"
	"story-platform/internal/metrics"
	"story-platform/internal/repository"
	"story-platform/internal/validator"
)

// StoryService is the read/write gateway over stories and comments. Every
// mutation leaves cached aggregates consistent with their source records
// before returning. Referential integrity is not enforced: a comment may be
// added for a story that no longer exists, and cascade cleanup on story
// deletion is the caller's responsibility via the Remove* helpers.
type StoryService struct {
	storyRepo       repository.StoryRepository
	commentRepo     repository.CommentRepository
	interactionRepo repository.InteractionRepository
	stats           StatsServiceInterface
	validator       *validator.Validator
}

// NewStoryService creates a new StoryService.
func NewStoryService(
	storyRepo repository.StoryRepository,
	commentRepo repository.CommentRepository,
	interactionRepo repository.InteractionRepository,
	stats StatsServiceInterface,
	v *validator.Validator,
) *StoryService {
	return &StoryService{
		storyRepo:       storyRepo,
		commentRepo:     commentRepo,
		interactionRepo: interactionRepo,
		stats:           stats,
		validator:       v,
	}
}

// ListStories returns the full story collection.
func (s *StoryService) ListStories(ctx context.Context) ([]domain.Story, error) {
	return s.storyRepo.Load(ctx)
}

// GetStory returns one story by ID, or ErrNotFound.
func (s *StoryService) GetStory(ctx context.Context, id string) (*domain.Story, error) {
	stories, err := s.storyRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stories: %w", err)
	}
	i := findStory(stories, id)
	if i < 0 {
		return nil, fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
	}
	story := stories[i]
	return &story, nil
}

// CreateStory validates and persists a new story. ID, timestamps, and
// aggregate fields are assigned here; whatever the caller set is discarded.
func (s *StoryService) CreateStory(ctx context.Context, story domain.Story) (*domain.Story, error) {
	if story.AccessLevel == "" {
		story.AccessLevel = "free"
	}
	if err := s.validator.ValidateStory(&story); err != nil {
		return nil, err
	}

	now := time.Now()
	story.ID = uuid.New().String()
	story.Rating = 0
	story.RatingCount = 0
	story.ViewCount = 0
	story.CommentCount = 0
	story.CreatedAt = now
	story.UpdatedAt = now

	err := s.storyRepo.Update(ctx, func(stories []domain.Story) ([]domain.Story, error) {
		return append(stories, story), nil
	})
	if err != nil {
		return nil, fmt.Errorf("save story: %w", err)
	}
	return &story, nil
}

// UpdateStory applies the editable fields of in to the stored story.
// Aggregate fields and publication state are not editable through here.
func (s *StoryService) UpdateStory(ctx context.Context, id string, in domain.Story) (*domain.Story, error) {
	if in.AccessLevel == "" {
		in.AccessLevel = "free"
	}
	if err := s.validator.ValidateStory(&in); err != nil {
		return nil, err
	}

	var updated domain.Story
	err := s.storyRepo.Update(ctx, func(stories []domain.Story) ([]domain.Story, error) {
		i := findStory(stories, id)
		if i < 0 {
			return nil, fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
		}
		stories[i].Title = in.Title
		stories[i].Excerpt = in.Excerpt
		stories[i].Content = in.Content
		stories[i].Author = in.Author
		stories[i].Category = in.Category
		stories[i].Tags = in.Tags
		stories[i].AccessLevel = in.AccessLevel
		stories[i].Image = in.Image
		stories[i].UpdatedAt = time.Now()
		updated = stories[i]
		return stories, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteStory removes the story record. Its comments, ratings, and likes
// are left behind; callers that want them gone use the Remove* helpers.
func (s *StoryService) DeleteStory(ctx context.Context, id string) error {
	return s.storyRepo.Update(ctx, func(stories []domain.Story) ([]domain.Story, error) {
		i := findStory(stories, id)
		if i < 0 {
			return nil, fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
		}
		return append(stories[:i], stories[i+1:]...), nil
	})
}

// TogglePublish flips the story between draft and published.
func (s *StoryService) TogglePublish(ctx context.Context, id string) (*domain.Story, error) {
	var updated domain.Story
	err := s.storyRepo.Update(ctx, func(stories []domain.Story) ([]domain.Story, error) {
		i := findStory(stories, id)
		if i < 0 {
			return nil, fmt.Errorf("story %s: %w", id, domain.ErrNotFound)
		}
		stories[i].IsPublished = !stories[i].IsPublished
		stories[i].UpdatedAt = time.Now()
		updated = stories[i]
		return stories, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetStoryComments returns the story's comments, newest first.
func (s *StoryService) GetStoryComments(ctx context.Context, storyID string) ([]domain.Comment, error) {
	comments, err := s.commentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	out := make([]domain.Comment, 0)
	for _, c := range comments {
		if c.StoryID == storyID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// AddComment validates and persists a new comment, then refreshes the
// story's comment count. The story is not required to exist; the count
// refresh no-ops for a vanished story and the comment write still succeeds.
func (s *StoryService) AddComment(ctx context.Context, storyID, userID, username, content string) (*domain.Comment, error) {
	now := time.Now()
	comment := domain.Comment{
		ID:        uuid.New().String(),
		StoryID:   storyID,
		UserID:    userID,
		Username:  username,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.validator.ValidateComment(&comment); err != nil {
		return nil, err
	}

	err := s.commentRepo.Update(ctx, func(comments []domain.Comment) ([]domain.Comment, error) {
		return append(comments, comment), nil
	})
	if err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	metrics.CommentsCreatedTotal.Inc()

	if err := s.stats.UpdateCommentCount(ctx, storyID); err != nil {
		return nil, fmt.Errorf("refresh comment count: %w", err)
	}
	return &comment, nil
}

// EditComment replaces the comment's content and marks it edited. IsEdited
// is one-way: once set it never clears.
func (s *StoryService) EditComment(ctx context.Context, commentID, content string) (*domain.Comment, error) {
	var updated domain.Comment
	err := s.commentRepo.Update(ctx, func(comments []domain.Comment) ([]domain.Comment, error) {
		for i := range comments {
			if comments[i].ID != commentID {
				continue
			}
			probe := comments[i]
			probe.Content = content
			if err := s.validator.ValidateComment(&probe); err != nil {
				return nil, err
			}
			comments[i].Content = content
			comments[i].IsEdited = true
			comments[i].UpdatedAt = time.Now()
			updated = comments[i]
			return comments, nil
		}
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveStoryComments drops every comment referencing the story. Cascade
// helper for callers deleting a story.
func (s *StoryService) RemoveStoryComments(ctx context.Context, storyID string) error {
	return s.commentRepo.Update(ctx, func(comments []domain.Comment) ([]domain.Comment, error) {
		kept := comments[:0]
		for _, c := range comments {
			if c.StoryID != storyID {
				kept = append(kept, c)
			}
		}
		return kept, nil
	})
}

// RemoveStoryInteractions drops the story's ratings and likes from the
// ledger. Cascade helper for callers deleting a story.
func (s *StoryService) RemoveStoryInteractions(ctx context.Context, storyID string) error {
	return s.interactionRepo.Update(ctx, func(set domain.InteractionSet) (domain.InteractionSet, error) {
		delete(set.Likes, storyID)
		delete(set.Ratings, storyID)
		return set, nil
	})
}
