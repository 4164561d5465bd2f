package service

import (
	"context"
	"fmt"

	"story-platform/internal/domain"
	"story-platform/internal/metrics"
	"story-platform/internal/repository"
	"story-platform/internal/validator"
)

// InteractionService is the interaction ledger: per-(story,user) rating
// scores and like flags with upsert/toggle semantics. Every mutation
// triggers the aggregate maintainer synchronously before returning, so
// cached story statistics are never observably stale relative to the write
// that changed them.
type InteractionService struct {
	interactionRepo repository.InteractionRepository
	stats           StatsServiceInterface
	validator       *validator.Validator
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(
	interactionRepo repository.InteractionRepository,
	stats StatsServiceInterface,
	v *validator.Validator,
) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		stats:           stats,
		validator:       v,
	}
}

// ToggleLike flips the like record for (storyID, userID): present becomes
// absent and vice versa. Returns the resulting state. Repeated calls
// alternate; the read-check-write cycle is serialized per process by the
// store mutex.
func (s *InteractionService) ToggleLike(ctx context.Context, storyID, userID string) (bool, error) {
	var liked bool
	err := s.interactionRepo.Update(ctx, func(set domain.InteractionSet) (domain.InteractionSet, error) {
		users := set.Likes[storyID]
		if users != nil && users[userID] {
			delete(users, userID)
			if len(users) == 0 {
				delete(set.Likes, storyID)
			}
			liked = false
			return set, nil
		}
		if users == nil {
			users = make(map[string]bool)
			set.Likes[storyID] = users
		}
		users[userID] = true
		liked = true
		return set, nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	if liked {
		metrics.LikeTogglesTotal.WithLabelValues("liked").Inc()
	} else {
		metrics.LikeTogglesTotal.WithLabelValues("unliked").Inc()
	}

	if err := s.stats.UpdateStoryStats(ctx, storyID); err != nil {
		return liked, fmt.Errorf("refresh story stats: %w", err)
	}
	return liked, nil
}

// RateStory upserts the user's rating for the story. Scores outside [1,5]
// are rejected before any mutation. The story itself is not required to
// exist: a rating for a vanished story is written to the ledger and the
// aggregate refresh no-ops.
func (s *InteractionService) RateStory(ctx context.Context, storyID, userID string, score float64) (*domain.Rating, error) {
	if err := s.validator.ValidateScore(score); err != nil {
		return nil, err
	}

	err := s.interactionRepo.Update(ctx, func(set domain.InteractionSet) (domain.InteractionSet, error) {
		users := set.Ratings[storyID]
		if users == nil {
			users = make(map[string]float64)
			set.Ratings[storyID] = users
		}
		users[userID] = score
		return set, nil
	})
	if err != nil {
		return nil, fmt.Errorf("save rating: %w", err)
	}
	metrics.RatingsSubmittedTotal.Inc()

	if err := s.stats.UpdateStoryStats(ctx, storyID); err != nil {
		return nil, fmt.Errorf("refresh story stats: %w", err)
	}
	return &domain.Rating{StoryID: storyID, UserID: userID, Score: score}, nil
}

// GetLikes returns all like records for the story. Pure read.
func (s *InteractionService) GetLikes(ctx context.Context, storyID string) ([]domain.Like, error) {
	set, err := s.interactionRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	return set.StoryLikes(storyID), nil
}

// GetUserInteraction returns one user's standing toward a story: their
// rating (0 when unrated) and whether they currently like it. Pure read.
func (s *InteractionService) GetUserInteraction(ctx context.Context, storyID, userID string) (*domain.UserInteraction, error) {
	set, err := s.interactionRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	out := &domain.UserInteraction{}
	if users := set.Ratings[storyID]; users != nil {
		out.Rating = users[userID]
	}
	if users := set.Likes[storyID]; users != nil {
		out.Liked = users[userID]
	}
	return out, nil
}
