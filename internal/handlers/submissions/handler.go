package submissions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/services/submission"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/handlers"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

// SubmissionHandler handles grading API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler. Grading the
// full suite and reading history require authentication; example runs are
// open so visitors can try a problem before logging in.
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.Handle("/api/problems/{slug}/submissions",
		mw.JWTMiddleware(http.HandlerFunc(h.Submit))).Methods("POST")
	router.HandleFunc("/api/problems/{slug}/examples", h.RunExamples).Methods("POST")
	router.Handle("/api/submissions",
		mw.JWTMiddleware(http.HandlerFunc(h.GetHistory))).Methods("GET")
}

// Submit handles full suite grading requests
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	userID := handlers.UsernameFrom(r.Context())
	if userID == "" {
		handlers.ResponseError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.submissionService.Submit(r.Context(), userID, slug, req.Code)
	if err != nil {
		if errors.Is(err, errs.ProblemNotFound) {
			handlers.ResponseError(w, "Problem not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to grade submission", "slug", slug, "error", err)
		handlers.ResponseError(w, "Failed to grade submission", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, result)
}

// RunExamples handles example-only grading requests
func (h *SubmissionHandler) RunExamples(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.submissionService.RunExamples(r.Context(), slug, req.Code)
	if err != nil {
		if errors.Is(err, errs.ProblemNotFound) {
			handlers.ResponseError(w, "Problem not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to run examples", "slug", slug, "error", err)
		handlers.ResponseError(w, "Failed to run examples", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, result)
}

// GetHistory handles submission history retrieval requests
func (h *SubmissionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := handlers.UsernameFrom(r.Context())
	if userID == "" {
		handlers.ResponseError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.ResponseError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	submissions, err := h.submissionService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to get submission history", "userId", userID, "error", err)
		handlers.ResponseError(w, "Failed to get submissions", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, map[string][]*domain.Submission{"submissions": submissions})
}
