package submissionrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
	querybuilder "gitlab.com/pcv-2026.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with
// PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger, schema string) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// SaveSubmission saves an accepted submission record
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, submission *domain.Submission) error {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			tbl.ID,
			tbl.UserID,
			tbl.ProblemSlug,
			tbl.Code,
			tbl.PassedCount,
			tbl.Total,
			tbl.Elapsed,
			tbl.SubmittedAt,
		).
		Into(tbl.TableName()).
		Values(
			submission.ID,
			submission.UserID,
			submission.ProblemSlug,
			submission.Code,
			submission.PassedCount,
			submission.Total,
			int64(submission.Elapsed),
			submission.SubmittedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetByUser retrieves a user's submissions, newest first
func (r *SubmissionRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*domain.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(
			tbl.ID,
			tbl.UserID,
			tbl.ProblemSlug,
			tbl.Code,
			tbl.PassedCount,
			tbl.Total,
			tbl.Elapsed,
			tbl.SubmittedAt,
		).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		OrderBy(tbl.SubmittedAt, false).
		Limit(limit).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to get submissions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*domain.Submission
	for rows.Next() {
		var submission domain.Submission
		if err := rows.StructScan(&submission); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, &submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return submissions, nil
}
