// Package rest exposes the README generation pipeline over HTTP.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/clintrovert/readmeforge/internal/readme"
)

// ReadmeGenerator is the pipeline surface the handler drives.
type ReadmeGenerator interface {
	GenerateForURL(ctx context.Context, repoURL string) (*readme.Result, error)
}

// Handler handles REST API requests
type Handler struct {
	service  ReadmeGenerator
	sessions *SessionManager
	logger   *zap.Logger
}

// NewHandler creates a new REST handler
func NewHandler(service ReadmeGenerator, sessions *SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// GenerateRequest is the body of POST /api/index.
type GenerateRequest struct {
	RepoURL string `json:"repo_url"`
}

// RepoInfo echoes repository metadata back to the caller.
type RepoInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}

// GenerateResponse is the JSON envelope for both success and failure.
type GenerateResponse struct {
	Success  bool      `json:"success"`
	Readme   string    `json:"readme,omitempty"`
	RepoInfo *RepoInfo `json:"repo_info,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// GenerateReadme handles POST /api/index
func (h *Handler) GenerateReadme(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RepoURL == "" {
		h.writeError(w, http.StatusBadRequest, "Repository URL is required")
		return
	}
	if !strings.Contains(req.RepoURL, "github.com") {
		h.writeError(w, http.StatusBadRequest, "Please provide a valid GitHub repository URL")
		return
	}

	result, err := h.service.GenerateForURL(r.Context(), req.RepoURL)
	if err != nil {
		h.logger.Error("readme generation failed",
			zap.String("repo_url", req.RepoURL),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	meta := result.Metadata
	h.writeJSON(w, http.StatusOK, GenerateResponse{
		Success: true,
		Readme:  result.Readme,
		RepoInfo: &RepoInfo{
			Name:        meta.Name,
			Description: meta.Description,
			Language:    meta.Language,
			Stars:       meta.Stars,
			Forks:       meta.Forks,
		},
	})
}

// Index handles GET / with the embedded landing page and ensures the caller
// holds a signed session cookie.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.sessions.EnsureSession(w, r)

	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		h.logger.Error("failed to read embedded index page", zap.Error(err))
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// RegisterRoutes registers REST API routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/api/index", h.GenerateReadme)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, GenerateResponse{Success: false, Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body GenerateResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
