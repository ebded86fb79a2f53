package drafts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/services/draft"
	"gitlab.com/pcv-2026.net/internal/handlers"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

// DraftHandler handles in-progress solution draft API requests
type DraftHandler struct {
	draftService draft.IDraftService
	logger       primary.Logger
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService draft.IDraftService, logger primary.Logger) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		logger:       logger,
	}
}

// RegisterRoutes registers the API routes for DraftHandler. All draft
// routes require authentication.
func (h *DraftHandler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.Handle("/api/problems/{slug}/draft",
		mw.JWTMiddleware(http.HandlerFunc(h.SaveDraft))).Methods("PUT")
	router.Handle("/api/problems/{slug}/draft",
		mw.JWTMiddleware(http.HandlerFunc(h.GetDraft))).Methods("GET")
	router.Handle("/api/problems/{slug}/draft",
		mw.JWTMiddleware(http.HandlerFunc(h.DeleteDraft))).Methods("DELETE")
}

// SaveDraftRequest represents a request to save in-progress code
type SaveDraftRequest struct {
	Code string `json:"code"`
}

// SaveDraft handles draft save requests
func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var req SaveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	userID := handlers.UsernameFrom(r.Context())
	if err := h.draftService.SaveDraft(r.Context(), userID, slug, req.Code); err != nil {
		h.logger.Error("Failed to save draft", "slug", slug, "error", err)
		handlers.ResponseError(w, "Failed to save draft", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDraft handles draft retrieval requests
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	userID := handlers.UsernameFrom(r.Context())
	d, err := h.draftService.GetDraft(r.Context(), userID, slug)
	if err != nil {
		if errors.Is(err, errs.DraftNotFound) {
			handlers.ResponseError(w, "Draft not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get draft", "slug", slug, "error", err)
		handlers.ResponseError(w, "Failed to get draft", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, d)
}

// DeleteDraft handles draft deletion requests
func (h *DraftHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	userID := handlers.UsernameFrom(r.Context())
	if err := h.draftService.DeleteDraft(r.Context(), userID, slug); err != nil {
		h.logger.Error("Failed to delete draft", "slug", slug, "error", err)
		handlers.ResponseError(w, "Failed to delete draft", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
