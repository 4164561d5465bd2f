package domain

// Rating is a per-(story,user) rating record. At most one exists per key;
// a repeated rating by the same user replaces the score.
type Rating struct {
	StoryID string  `json:"story_id"`
	UserID  string  `json:"user_id"`
	Score   float64 `json:"score"`
}

// Like is a per-(story,user) like record. Presence means liked.
type Like struct {
	StoryID string `json:"story_id"`
	UserID  string `json:"user_id"`
}

// UserInteraction is a single user's standing toward a story. Rating is 0
// when the user has not rated.
type UserInteraction struct {
	Rating float64 `json:"rating"`
	Liked  bool    `json:"liked"`
}

// InteractionSet is the persisted interaction document: nested maps keyed by
// story ID, then user ID. It serializes to
// {"likes":{storyID:{userID:true}},"ratings":{storyID:{userID:score}}}.
type InteractionSet struct {
	Likes   map[string]map[string]bool    `json:"likes"`
	Ratings map[string]map[string]float64 `json:"ratings"`
}

// NewInteractionSet returns an empty interaction set with both maps
// allocated.
func NewInteractionSet() InteractionSet {
	return InteractionSet{
		Likes:   make(map[string]map[string]bool),
		Ratings: make(map[string]map[string]float64),
	}
}

// Normalize allocates any nil top-level map. Documents decoded from disk may
// omit one of the keys.
func (s *InteractionSet) Normalize() {
	if s.Likes == nil {
		s.Likes = make(map[string]map[string]bool)
	}
	if s.Ratings == nil {
		s.Ratings = make(map[string]map[string]float64)
	}
}

// StoryRatings returns the rating records for one story.
func (s InteractionSet) StoryRatings(storyID string) []Rating {
	users := s.Ratings[storyID]
	if len(users) == 0 {
		return nil
	}
	ratings := make([]Rating, 0, len(users))
	for userID, score := range users {
		ratings = append(ratings, Rating{StoryID: storyID, UserID: userID, Score: score})
	}
	return ratings
}

// StoryLikes returns the like records for one story.
func (s InteractionSet) StoryLikes(storyID string) []Like {
	users := s.Likes[storyID]
	if len(users) == 0 {
		return nil
	}
	likes := make([]Like, 0, len(users))
	for userID, liked := range users {
		if liked {
			likes = append(likes, Like{StoryID: storyID, UserID: userID})
		}
	}
	return likes
}
