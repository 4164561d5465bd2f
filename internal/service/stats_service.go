package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"story-platform/internal/domain"
	"story-platform/internal/metrics"
	"story-platform/internal/repository"
)

// StatsService is the aggregate maintainer: the single recomputation routine
// every ledger and comment mutation path goes through. Cached story
// statistics are always refreshed synchronously, in the same logical
// operation as the write that made them stale.
//
// All refresh operations are no-ops when the target story does not exist.
// A rating or comment written moments after its story was deleted is a
// normal, tolerated state; the triggering write itself still succeeds.
type StatsService struct {
	storyRepo       repository.StoryRepository
	commentRepo     repository.CommentRepository
	interactionRepo repository.InteractionRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	storyRepo repository.StoryRepository,
	commentRepo repository.CommentRepository,
	interactionRepo repository.InteractionRepository,
) *StatsService {
	return &StatsService{
		storyRepo:       storyRepo,
		commentRepo:     commentRepo,
		interactionRepo: interactionRepo,
	}
}

// UpdateStoryStats recomputes the cached rating average and count from the
// ledger. With no ratings on record the rating fields keep their last-known
// values rather than resetting to zero. UpdatedAt is always refreshed.
func (s *StatsService) UpdateStoryStats(ctx context.Context, storyID string) error {
	set, err := s.interactionRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load interactions: %w", err)
	}
	ratings := set.StoryRatings(storyID)

	return s.storyRepo.Update(ctx, func(stories []domain.Story) ([]domain.Story, error) {
		i := findStory(stories, storyID)
		if i < 0 {
			return stories, nil
		}
		if len(ratings) > 0 {
			var sum float64
			for _, r := range ratings {
				sum += r.Score
			}
			stories[i].Rating = roundToTenth(sum / float64(len(ratings)))
			stories[i].RatingCount = len(ratings)
		}
		stories[i].UpdatedAt = time.Now()
		return stories, nil
	})
}

// UpdateCommentCount recounts the story's comments and refreshes UpdatedAt.
func (s *StatsService) UpdateCommentCount(ctx context.Context, storyID string) error {
	comments, err := s.commentRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}
	count := 0
	for _, c := range comments {
		if c.StoryID == storyID {
			count++
		}
	}

	return s.storyRepo.Update(ctx, func(stories []domain.Story) ([]domain.Story, error) {
		i := findStory(stories, storyID)
		if i < 0 {
			return stories, nil
		}
		stories[i].CommentCount = count
		stories[i].UpdatedAt = time.Now()
		return stories, nil
	})
}

// IncrementViewCount adds one to the story's view counter. The counter is
// not ledger-derived; the whole-collection write model applies to it too.
func (s *StatsService) IncrementViewCount(ctx context.Context, storyID string) error {
	err := s.storyRepo.Update(ctx, func(stories []domain.Story) ([]domain.Story, error) {
		i := findStory(stories, storyID)
		if i < 0 {
			return stories, nil
		}
		stories[i].ViewCount++
		return stories, nil
	})
	if err != nil {
		return err
	}
	metrics.StoryViewsTotal.Inc()
	return nil
}

// GetStoryStats derives the story's statistics from the ledger and the
// comment collection, not from the cached fields. Returns ErrNotFound when
// the story does not exist; with no ratings on record the cached rating
// fields stand in as the last-known values.
func (s *StatsService) GetStoryStats(ctx context.Context, storyID string) (*domain.StoryStats, error) {
	stories, err := s.storyRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stories: %w", err)
	}
	i := findStory(stories, storyID)
	if i < 0 {
		return nil, fmt.Errorf("story %s: %w", storyID, domain.ErrNotFound)
	}

	set, err := s.interactionRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	comments, err := s.commentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	stats := &domain.StoryStats{
		AverageRating: stories[i].Rating,
		TotalRatings:  stories[i].RatingCount,
		TotalLikes:    len(set.StoryLikes(storyID)),
	}
	if ratings := set.StoryRatings(storyID); len(ratings) > 0 {
		var sum float64
		for _, r := range ratings {
			sum += r.Score
		}
		stats.AverageRating = roundToTenth(sum / float64(len(ratings)))
		stats.TotalRatings = len(ratings)
	}
	for _, c := range comments {
		if c.StoryID == storyID {
			stats.TotalComments++
		}
	}
	return stats, nil
}

// CollectionSizes reports current record counts per collection for the
// store stats collector.
func (s *StatsService) CollectionSizes() map[string]int {
	ctx := context.Background()
	sizes := make(map[string]int, 4)

	if stories, err := s.storyRepo.Load(ctx); err == nil {
		sizes["stories"] = len(stories)
	}
	if comments, err := s.commentRepo.Load(ctx); err == nil {
		sizes["comments"] = len(comments)
	}
	if set, err := s.interactionRepo.Load(ctx); err == nil {
		likes, ratings := 0, 0
		for _, users := range set.Likes {
			likes += len(users)
		}
		for _, users := range set.Ratings {
			ratings += len(users)
		}
		sizes["likes"] = likes
		sizes["ratings"] = ratings
	}
	return sizes
}

// findStory returns the index of the story with the given ID, or -1.
func findStory(stories []domain.Story, id string) int {
	for i := range stories {
		if stories[i].ID == id {
			return i
		}
	}
	return -1
}

// roundToTenth rounds to one decimal place, the precision the cached rating
// field carries.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
