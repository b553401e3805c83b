package store

import "math/rand/v2"

// Engagement count ranges. Counts are regenerated uniformly on every read;
// they are presentation-only and never persisted.
const (
	likesMin     = 20
	likesSpan    = 200 // likes in [20, 219]
	commentsMin  = 5
	commentsSpan = 50 // comments in [5, 54]
)

// randomLikes returns a fresh likes count in [20, 219].
func randomLikes() int {
	return rand.IntN(likesSpan) + likesMin
}

// randomComments returns a fresh comments count in [5, 54].
func randomComments() int {
	return rand.IntN(commentsSpan) + commentsMin
}
