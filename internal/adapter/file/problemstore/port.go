// package problemstore provides a directory-backed problem catalog, used by
// the CLI so problems can be validated without a database.
package problemstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
)

var _ secondary.ProblemRepository = (*ProblemStore)(nil)

// ProblemStore reads problems from <dir>/<slug>.json files
type ProblemStore struct {
	dir    string
	logger primary.Logger
}

// NewProblemStore creates a new directory-backed problem store
func NewProblemStore(dir string, logger primary.Logger) *ProblemStore {
	return &ProblemStore{
		dir:    dir,
		logger: logger,
	}
}

// GetBySlug retrieves a full problem, including hidden test cases
func (s *ProblemStore) GetBySlug(ctx context.Context, slug string) (*domain.Problem, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, slug+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	var problem domain.Problem
	if err := json.Unmarshal(data, &problem); err != nil {
		return nil, fmt.Errorf("failed to parse problem %q: %w", slug, err)
	}
	if problem.Slug == "" {
		problem.Slug = slug
	}

	return &problem, nil
}

// List retrieves all problems in the directory
func (s *ProblemStore) List(ctx context.Context) ([]*domain.Problem, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem directory: %w", err)
	}

	var problems []*domain.Problem
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".json")
		problem, err := s.GetBySlug(ctx, slug)
		if err != nil {
			s.logger.Warn("Skipping unreadable problem file", "file", entry.Name(), "error", err)
			continue
		}
		if problem != nil {
			problems = append(problems, problem)
		}
	}

	return problems, nil
}

// Save stores or replaces a problem file
func (s *ProblemStore) Save(ctx context.Context, problem *domain.Problem) error {
	data, err := json.MarshalIndent(problem, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal problem: %w", err)
	}
	path := filepath.Join(s.dir, problem.Slug+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write problem file: %w", err)
	}
	return nil
}
