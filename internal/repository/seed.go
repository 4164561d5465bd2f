package repository

import (
	"time"

	"story-platform/internal/domain"
)

// Seed story IDs, exported for tests and tooling that need to reference the
// bootstrap dataset.
const (
	SeedStoryLighthouse = "7c9a1f0e-4b2d-4c8e-9a31-5d6f8e2b7a10"
	SeedStoryCarnival   = "2e51b8d3-9f07-4a6c-b4e2-c83d19f0a655"
	SeedStoryPaperBoats = "c04d7a92-63e8-47f1-8b5a-1e9f2c3d4b87"
)

const (
	seedUserAda   = "5f1e2d3c-4b5a-4687-9c8d-7e6f5a4b3c21"
	seedUserBruno = "9a8b7c6d-5e4f-4321-8765-4a3b2c1d0e9f"
	seedUserClara = "3d4e5f6a-7b8c-4d9e-8f0a-1b2c3d4e5f60"
)

var seedTime = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

// SeedStories returns the bootstrap story dataset. Cached aggregate fields
// are consistent with SeedComments and SeedInteractions.
func SeedStories() []domain.Story {
	return []domain.Story{
		{
			ID:           SeedStoryLighthouse,
			Title:        "The Lighthouse Keeper's Daughter",
			Excerpt:      "A letter washes ashore forty years late.",
			Content:      "The tide brought the bottle in on the first morning of spring, wedged between the rocks where Maren had played as a girl...",
			Author:       "Elena Voss",
			Category:     "romance",
			Tags:         []string{"coastal", "letters", "second-chances"},
			AccessLevel:  "free",
			IsPublished:  true,
			Rating:       4.5,
			RatingCount:  2,
			ViewCount:    128,
			CommentCount: 2,
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:           SeedStoryCarnival,
			Title:        "Midnight at the Carnival",
			Excerpt:      "The last ride closes at midnight. Nobody leaves before it does.",
			Content:      "The ticket stub in Theo's pocket was dated tomorrow. He checked it twice under the sodium lights before the barker waved him through...",
			Author:       "Marcus Reed",
			Category:     "thriller",
			Tags:         []string{"carnival", "night", "suspense"},
			AccessLevel:  "premium",
			IsPublished:  true,
			Rating:       4.0,
			RatingCount:  3,
			ViewCount:    74,
			CommentCount: 1,
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:          SeedStoryPaperBoats,
			Title:       "Paper Boats",
			Excerpt:     "Two brothers, one river, and everything unsaid between them.",
			Content:     "Every autumn they folded the year's regrets into paper boats and let the river take them. This year, Jonah folded two...",
			Author:      "Elena Voss",
			Category:    "literary",
			Tags:        []string{"family", "river"},
			AccessLevel: "free",
			IsPublished: false,
			ViewCount:   9,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
	}
}

// SeedComments returns the bootstrap comment dataset.
func SeedComments() []domain.Comment {
	return []domain.Comment{
		{
			ID:        "b1a2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
			StoryID:   SeedStoryLighthouse,
			UserID:    seedUserAda,
			Username:  "ada",
			Content:   "The ending wrecked me. Beautifully done.",
			CreatedAt: seedTime.Add(2 * time.Hour),
			UpdatedAt: seedTime.Add(2 * time.Hour),
		},
		{
			ID:        "f6e5d4c3-b2a1-4098-8765-fedcba987654",
			StoryID:   SeedStoryLighthouse,
			UserID:    seedUserBruno,
			Username:  "bruno",
			Content:   "Came for the lighthouse, stayed for the letters.",
			CreatedAt: seedTime.Add(5 * time.Hour),
			UpdatedAt: seedTime.Add(5 * time.Hour),
		},
		{
			ID:        "0a1b2c3d-4e5f-4678-9abc-def012345678",
			StoryID:   SeedStoryCarnival,
			UserID:    seedUserClara,
			Username:  "clara",
			Content:   "Read this alone at night. Regret nothing.",
			CreatedAt: seedTime.Add(26 * time.Hour),
			UpdatedAt: seedTime.Add(26 * time.Hour),
		},
	}
}

// SeedInteractions returns the bootstrap interaction ledger. Rating means
// and counts line up with the cached fields in SeedStories.
func SeedInteractions() domain.InteractionSet {
	return domain.InteractionSet{
		Likes: map[string]map[string]bool{
			SeedStoryLighthouse: {
				seedUserAda:   true,
				seedUserBruno: true,
			},
			SeedStoryCarnival: {
				seedUserClara: true,
			},
		},
		Ratings: map[string]map[string]float64{
			SeedStoryLighthouse: {
				seedUserAda:   5,
				seedUserBruno: 4,
			},
			SeedStoryCarnival: {
				seedUserAda:   5,
				seedUserBruno: 4,
				seedUserClara: 3,
			},
		},
	}
}
