package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/astralstream/mediasearch/internal/core/domain"
	"github.com/astralstream/mediasearch/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// HistoryResponse lists stored queries, most recent first
// @Description Stored search queries
type HistoryResponse struct {
	Queries []string `json:"queries"`
}

// SuggestionsResponse lists suggestions for a partial query
// @Description Typed search suggestions
type SuggestionsResponse struct {
	Suggestions []domain.SearchSuggestion `json:"suggestions"`
}

// VideosResponse lists indexed records
// @Description Indexed video records
type VideosResponse struct {
	Videos []*domain.VideoRecord `json:"videos"`
	Count  int                   `json:"count"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and cache connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A backing store is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleLogin godoc
// @Summary      Login
// @Description  Authenticate with username and password to receive a JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Authenticate(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "username and password are required")
		case domain.ErrInvalidCredentials:
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			writeError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleLogout godoc
// @Summary      Logout
// @Description  Invalidate the current session token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatusResponse
// @Router       /auth/logout [post]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	_ = s.authService.Logout(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Search endpoints

// handleSearch godoc
// @Summary      Search videos
// @Description  Filter and rank indexed videos for a query. An empty query browses all records passing the active filters.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.SearchRequest  true  "Search parameters"
// @Success      200      {object}  domain.SearchResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      500      {object}  ErrorResponse  "Search failed"
// @Router       /search [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req driving.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.searchService.Search(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleSuggestions godoc
// @Summary      Get search suggestions
// @Description  Returns typed suggestions for a partial query. With no query, returns recent history.
// @Tags         Search
// @Produce      json
// @Security     BearerAuth
// @Param        q      query     string  false  "Partial query"
// @Param        limit  query     int     false  "Maximum suggestions"
// @Success      200    {object}  SuggestionsResponse
// @Failure      500    {object}  ErrorResponse  "Suggestion generation failed"
// @Router       /suggestions [get]
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	suggestions, err := s.searchService.Suggest(r.Context(), partial, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "suggestion generation failed")
		return
	}
	if suggestions == nil {
		suggestions = []domain.SearchSuggestion{}
	}

	writeJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// History endpoints

// handleGetHistory godoc
// @Summary      Get search history
// @Description  Returns stored queries, most recent first
// @Tags         History
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  HistoryResponse
// @Router       /history [get]
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	queries, err := s.searchService.History(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if queries == nil {
		queries = []string{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Queries: queries})
}

// handleClearHistory godoc
// @Summary      Clear search history
// @Description  Removes all stored queries
// @Tags         History
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatusResponse
// @Failure      500  {object}  ErrorResponse  "Failed to clear history"
// @Router       /history [delete]
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.searchService.ClearHistory(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Filter endpoints

// handleGetFilters godoc
// @Summary      Get saved filters
// @Description  Returns the persisted filter set, or defaults when none saved
// @Tags         Filters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SearchFilters
// @Failure      500  {object}  ErrorResponse  "Failed to load filters"
// @Router       /filters [get]
func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := s.searchService.GetFilters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load filters")
		return
	}

	writeJSON(w, http.StatusOK, filters)
}

// handleSaveFilters godoc
// @Summary      Save filters
// @Description  Persists a filter set after range validation
// @Tags         Filters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.SearchFilters  true  "Filter set"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse  "Invalid filter range"
// @Failure      500      {object}  ErrorResponse  "Failed to save filters"
// @Router       /filters [put]
func (s *Server) handleSaveFilters(w http.ResponseWriter, r *http.Request) {
	var filters domain.SearchFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.searchService.SaveFilters(r.Context(), &filters); err != nil {
		switch err {
		case domain.ErrInvalidFilterRange:
			writeError(w, http.StatusBadRequest, "invalid filter range")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "filters are required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to save filters")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Library endpoints

// handleListVideos godoc
// @Summary      List indexed videos
// @Description  Returns every indexed record in insertion order
// @Tags         Library
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  VideosResponse
// @Failure      500  {object}  ErrorResponse  "Failed to list videos"
// @Router       /videos [get]
func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.libraryService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list videos")
		return
	}
	if videos == nil {
		videos = []*domain.VideoRecord{}
	}

	writeJSON(w, http.StatusOK, VideosResponse{Videos: videos, Count: len(videos)})
}

// handleUpsertVideos godoc
// @Summary      Upsert videos
// @Description  Validates and stores a batch of records in the index
// @Tags         Library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      []domain.VideoRecord  true  "Video records"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse  "Invalid records"
// @Failure      500      {object}  ErrorResponse  "Failed to store videos"
// @Router       /videos [put]
func (s *Server) handleUpsertVideos(w http.ResponseWriter, r *http.Request) {
	var records []*domain.VideoRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.libraryService.Upsert(r.Context(), records); err != nil {
		// Validation failures wrap ErrInvalidInput with the offending record ID
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to store videos")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDeleteVideo godoc
// @Summary      Delete a video
// @Description  Removes a record from the index by ID
// @Tags         Library
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Video ID"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse  "Video not found"
// @Failure      500  {object}  ErrorResponse  "Failed to delete video"
// @Router       /videos/{id} [delete]
func (s *Server) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.libraryService.Delete(r.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "video not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "video id is required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete video")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
