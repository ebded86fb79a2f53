package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents an accepted solution record. Only submissions whose
// suite succeeded are persisted; statistics are computed from this table.
type Submission struct {
	ID          uuid.UUID     `db:"id"`
	UserID      string        `db:"user_id"`
	ProblemSlug string        `db:"problem_slug"`
	Code        string        `db:"code"`
	PassedCount int           `db:"passed_count"`
	Total       int           `db:"total"`
	Elapsed     time.Duration `db:"elapsed_ns"`
	SubmittedAt time.Time     `db:"submitted_at"`
}

// NewSubmission creates a new accepted submission record
func NewSubmission(userID, problemSlug, code string, suite *SuiteResult) *Submission {
	return &Submission{
		ID:          uuid.New(),
		UserID:      userID,
		ProblemSlug: problemSlug,
		Code:        code,
		PassedCount: suite.PassedCount,
		Total:       suite.Total,
		Elapsed:     suite.TotalElapsed,
		SubmittedAt: time.Now(),
	}
}

type SubmissionTable struct {
	ID          string
	UserID      string
	ProblemSlug string
	Code        string
	PassedCount string
	Total       string
	Elapsed     string
	SubmittedAt string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:          "id",
		UserID:      "user_id",
		ProblemSlug: "problem_slug",
		Code:        "code",
		PassedCount: "passed_count",
		Total:       "total",
		Elapsed:     "elapsed_ns",
		SubmittedAt: "submitted_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}
