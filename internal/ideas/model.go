package ideas

import "time"

// Idea is a saved question/advice pair. Title carries the original question and
// Description carries the generated advice text.
type Idea struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
}

// Recommendation is one piece of advice text linked to an Idea.
type Recommendation struct {
	ID        int64
	IdeaID    int64
	Text      string
	CreatedAt time.Time
}
