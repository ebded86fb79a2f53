package problems

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/services/problem"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/handlers"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

// ProblemHandler handles problem catalog API requests
type ProblemHandler struct {
	problemService problem.IProblemService
	logger         primary.Logger
}

// NewProblemHandler creates a new problem handler
func NewProblemHandler(problemService problem.IProblemService, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for ProblemHandler
func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems", h.ListProblems).Methods("GET")
	router.HandleFunc("/api/problems/{slug}", h.GetProblem).Methods("GET")
}

// ProblemSummary is the list view of a problem
type ProblemSummary struct {
	Slug       string            `json:"slug"`
	Title      string            `json:"title"`
	Difficulty domain.Difficulty `json:"difficulty"`
}

// ProblemDetail is the single-problem view. Hidden test cases never leave
// the server; only the public examples are included.
type ProblemDetail struct {
	Slug       string            `json:"slug"`
	Title      string            `json:"title"`
	Difficulty domain.Difficulty `json:"difficulty"`
	Statement  string            `json:"statement"`
	Signature  string            `json:"signature"`
	Examples   []domain.TestCase `json:"examples"`
}

// ListProblems handles catalog listing requests
func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.ListProblems(r.Context())
	if err != nil {
		h.logger.Error("Failed to list problems", "error", err)
		handlers.ResponseError(w, "Failed to list problems", http.StatusInternalServerError)
		return
	}

	summaries := make([]ProblemSummary, 0, len(problems))
	for _, p := range problems {
		summaries = append(summaries, ProblemSummary{
			Slug:       p.Slug,
			Title:      p.Title,
			Difficulty: p.Difficulty,
		})
	}

	handlers.ResponseWithJson(w, http.StatusOK, map[string][]ProblemSummary{"problems": summaries})
}

// GetProblem handles single problem retrieval requests
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	p, err := h.problemService.GetProblem(r.Context(), slug)
	if err != nil {
		if errors.Is(err, errs.ProblemNotFound) {
			handlers.ResponseError(w, "Problem not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get problem", "slug", slug, "error", err)
		handlers.ResponseError(w, "Failed to get problem", http.StatusInternalServerError)
		return
	}

	detail := ProblemDetail{
		Slug:       p.Slug,
		Title:      p.Title,
		Difficulty: p.Difficulty,
		Statement:  p.Statement,
		Signature:  p.Signature,
		Examples:   p.ExampleCases(),
	}

	handlers.ResponseWithJson(w, http.StatusOK, detail)
}
