package domain

import "time"

// Draft represents in-progress solution code saved per user and problem.
// Drafts expire after the configured TTL.
type Draft struct {
	UserID      string    `json:"userId"`
	ProblemSlug string    `json:"problemSlug"`
	Code        string    `json:"code"`
	SavedAt     time.Time `json:"savedAt"`
}
