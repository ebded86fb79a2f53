// package problemrepository contains the PostgreSQL problem catalog
package problemrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
)

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

// ProblemRepository implements the ProblemRepository interface with PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

// Save stores or replaces a problem
func (r *ProblemRepository) Save(ctx context.Context, problem *domain.Problem) error {
	testCasesJSON, err := json.Marshal(problem.TestCases)
	if err != nil {
		r.logger.Error("Failed to marshal test cases", "slug", problem.Slug, "error", err)
		return fmt.Errorf("failed to marshal test cases: %w", err)
	}

	if problem.ID == uuid.Nil {
		problem.ID = uuid.New()
	}

	query := `
		INSERT INTO problems (
			id, slug, title, difficulty, statement, signature,
			compare_mode, float_tolerance, test_cases
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			difficulty = EXCLUDED.difficulty,
			statement = EXCLUDED.statement,
			signature = EXCLUDED.signature,
			compare_mode = EXCLUDED.compare_mode,
			float_tolerance = EXCLUDED.float_tolerance,
			test_cases = EXCLUDED.test_cases
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		problem.ID,
		problem.Slug,
		problem.Title,
		problem.Difficulty,
		problem.Statement,
		problem.Signature,
		problem.CompareMode,
		problem.FloatTolerance,
		testCasesJSON,
	)

	if err != nil {
		r.logger.Error("Failed to save problem", "slug", problem.Slug, "error", err)
		return fmt.Errorf("failed to save problem: %w", err)
	}

	return nil
}

// GetBySlug retrieves a full problem, including hidden test cases
func (r *ProblemRepository) GetBySlug(ctx context.Context, slug string) (*domain.Problem, error) {
	query := `
		SELECT id, slug, title, difficulty, statement, signature,
			   compare_mode, float_tolerance, test_cases
		FROM problems
		WHERE slug = $1
	`

	var problem domain.Problem
	var testCasesJSON []byte
	var compareMode sql.NullString

	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&problem.ID,
		&problem.Slug,
		&problem.Title,
		&problem.Difficulty,
		&problem.Statement,
		&problem.Signature,
		&compareMode,
		&problem.FloatTolerance,
		&testCasesJSON,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	if compareMode.Valid {
		problem.CompareMode = domain.CompareMode(compareMode.String)
	}

	if err := json.Unmarshal(testCasesJSON, &problem.TestCases); err != nil {
		r.logger.Error("Failed to unmarshal test cases", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to unmarshal test cases: %w", err)
	}

	return &problem, nil
}

// List retrieves all problems without their test cases
func (r *ProblemRepository) List(ctx context.Context) ([]*domain.Problem, error) {
	query := `
		SELECT id, slug, title, difficulty, statement, signature,
			   compare_mode, float_tolerance
		FROM problems
		ORDER BY slug
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	defer rows.Close()

	var problems []*domain.Problem
	for rows.Next() {
		var problem domain.Problem
		var compareMode sql.NullString
		if err := rows.Scan(
			&problem.ID,
			&problem.Slug,
			&problem.Title,
			&problem.Difficulty,
			&problem.Statement,
			&problem.Signature,
			&compareMode,
			&problem.FloatTolerance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan problem: %w", err)
		}
		if compareMode.Valid {
			problem.CompareMode = domain.CompareMode(compareMode.String)
		}
		problems = append(problems, &problem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate problems: %w", err)
	}

	return problems, nil
}
