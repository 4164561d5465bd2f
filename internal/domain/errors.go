package domain

import "errors"

// ErrNotFound is returned by direct fetches of a story or comment that does
// not exist. Aggregate refreshes triggered by another operation do NOT
// return it; they complete silently when their target story is gone.
var ErrNotFound = errors.New("not found")
