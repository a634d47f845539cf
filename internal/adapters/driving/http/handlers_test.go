package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/astralstream/mediasearch/internal/core/domain"
	"github.com/astralstream/mediasearch/internal/core/ports/driving"
)

// Mock services for testing

type mockAuthService struct {
	authenticateFn  func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	validateTokenFn func(ctx context.Context, token string) (*domain.AuthContext, error)
	logoutFn        func(ctx context.Context, token string) error
}

func (m *mockAuthService) Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

type mockSearchService struct {
	searchFn        func(ctx context.Context, req driving.SearchRequest) (*domain.SearchResponse, error)
	suggestFn       func(ctx context.Context, partial string, limit int) ([]domain.SearchSuggestion, error)
	recordSearchFn  func(ctx context.Context, query string) error
	historyFn       func(ctx context.Context) ([]string, error)
	clearHistoryFn  func(ctx context.Context) error
	getFiltersFn    func(ctx context.Context) (*domain.SearchFilters, error)
	saveFiltersFn   func(ctx context.Context, filters *domain.SearchFilters) error
}

func (m *mockSearchService) Search(ctx context.Context, req driving.SearchRequest) (*domain.SearchResponse, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSearchService) Suggest(ctx context.Context, partial string, limit int) ([]domain.SearchSuggestion, error) {
	if m.suggestFn != nil {
		return m.suggestFn(ctx, partial, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSearchService) RecordSearch(ctx context.Context, query string) error {
	if m.recordSearchFn != nil {
		return m.recordSearchFn(ctx, query)
	}
	return nil
}

func (m *mockSearchService) History(ctx context.Context) ([]string, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSearchService) ClearHistory(ctx context.Context) error {
	if m.clearHistoryFn != nil {
		return m.clearHistoryFn(ctx)
	}
	return nil
}

func (m *mockSearchService) GetFilters(ctx context.Context) (*domain.SearchFilters, error) {
	if m.getFiltersFn != nil {
		return m.getFiltersFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSearchService) SaveFilters(ctx context.Context, filters *domain.SearchFilters) error {
	if m.saveFiltersFn != nil {
		return m.saveFiltersFn(ctx, filters)
	}
	return nil
}

type mockLibraryService struct {
	listFn   func(ctx context.Context) ([]*domain.VideoRecord, error)
	upsertFn func(ctx context.Context, records []*domain.VideoRecord) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockLibraryService) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockLibraryService) Upsert(ctx context.Context, records []*domain.VideoRecord) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, records)
	}
	return errors.New("not implemented")
}

func (m *mockLibraryService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

// Health endpoint tests

func TestHandleHealth(t *testing.T) {
	server := &Server{}

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	server.handleHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %s", response["status"])
	}
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

func TestHandleReady_AllHealthy(t *testing.T) {
	server := &Server{db: &mockPinger{}, redisClient: &mockPinger{}}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.handleReady(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleReady_DatabaseDown(t *testing.T) {
	server := &Server{db: &mockPinger{err: errors.New("connection refused")}}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.handleReady(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestHandleReady_NoRedis(t *testing.T) {
	// Redis is optional; a nil client must not fail readiness
	server := &Server{db: &mockPinger{}, redisClient: nil}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.handleReady(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	server := &Server{version: "1.2.3"}

	req := httptest.NewRequest("GET", "/version", nil)
	rr := httptest.NewRecorder()

	server.handleVersion(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["version"] != "1.2.3" {
		t.Errorf("expected version '1.2.3', got %s", response["version"])
	}
}

// Auth handler tests

func TestHandleLogin_InvalidJSON(t *testing.T) {
	server := &Server{}

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString("invalid json"))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleLogin_Success(t *testing.T) {
	expiresAt := time.Now().Add(1 * time.Hour)
	mockAuth := &mockAuthService{
		authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
			if req.Username == "admin" && req.Password == "password123" {
				return &domain.LoginResponse{
					Token:     "test-token",
					ExpiresAt: expiresAt,
					Username:  "admin",
				}, nil
			}
			return nil, domain.ErrInvalidCredentials
		},
	}

	server := &Server{authService: mockAuth}

	body, _ := json.Marshal(domain.LoginRequest{
		Username: "admin",
		Password: "password123",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response domain.LoginResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Token != "test-token" {
		t.Errorf("expected token 'test-token', got %s", response.Token)
	}
	if response.Username != "admin" {
		t.Errorf("expected username 'admin', got %s", response.Username)
	}
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	mockAuth := &mockAuthService{
		authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	server := &Server{authService: mockAuth}

	body, _ := json.Marshal(domain.LoginRequest{
		Username: "admin",
		Password: "wrongpass",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "invalid credentials" {
		t.Errorf("expected error 'invalid credentials', got %s", response["error"])
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	mockAuth := &mockAuthService{
		authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
			return nil, domain.ErrInvalidInput
		},
	}

	server := &Server{authService: mockAuth}

	body, _ := json.Marshal(domain.LoginRequest{})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleLogout_NoToken(t *testing.T) {
	server := &Server{}

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	rr := httptest.NewRecorder()

	server.handleLogout(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleLogout_WithToken(t *testing.T) {
	var loggedOut string
	mockAuth := &mockAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			loggedOut = token
			return nil
		},
	}

	server := &Server{authService: mockAuth}

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rr := httptest.NewRecorder()

	server.handleLogout(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if loggedOut != "session-token" {
		t.Errorf("expected logout with 'session-token', got %s", loggedOut)
	}
}

// Search handler tests

func TestHandleSearch_InvalidJSON(t *testing.T) {
	server := &Server{}

	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewBufferString("not json"))
	rr := httptest.NewRecorder()

	server.handleSearch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleSearch_Success(t *testing.T) {
	mockSearch := &mockSearchService{
		searchFn: func(ctx context.Context, req driving.SearchRequest) (*domain.SearchResponse, error) {
			if req.Query != "beach" {
				t.Errorf("expected query 'beach', got %q", req.Query)
			}
			return &domain.SearchResponse{
				Query: "beach",
				Results: []*domain.SearchResult{
					{
						Record:        &domain.VideoRecord{ID: "vid-1", Filename: "beach_party.mov", Path: "/videos/beach_party.mov"},
						MatchedFields: []string{domain.MatchFieldFilename, domain.MatchFieldPath},
						Score:         35,
					},
				},
				TotalCount: 1,
			}, nil
		},
	}

	server := &Server{searchService: mockSearch}

	body, _ := json.Marshal(driving.SearchRequest{Query: "beach"})
	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleSearch(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response domain.SearchResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.TotalCount != 1 {
		t.Errorf("expected total count 1, got %d", response.TotalCount)
	}
	if len(response.Results) != 1 || response.Results[0].Record.ID != "vid-1" {
		t.Errorf("unexpected results: %+v", response.Results)
	}
}

func TestHandleSearch_ServiceError(t *testing.T) {
	mockSearch := &mockSearchService{
		searchFn: func(ctx context.Context, req driving.SearchRequest) (*domain.SearchResponse, error) {
			return nil, errors.New("index unavailable")
		},
	}

	server := &Server{searchService: mockSearch}

	body, _ := json.Marshal(driving.SearchRequest{Query: "beach"})
	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleSearch(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}
}

// Suggestion handler tests

func TestHandleSuggestions_Success(t *testing.T) {
	mockSearch := &mockSearchService{
		suggestFn: func(ctx context.Context, partial string, limit int) ([]domain.SearchSuggestion, error) {
			if partial != "bea" {
				t.Errorf("expected partial 'bea', got %q", partial)
			}
			return []domain.SearchSuggestion{
				domain.NewHistorySuggestion("beach trip"),
				domain.NewFileSuggestion("beach_party"),
			}, nil
		},
	}

	server := &Server{searchService: mockSearch}

	req := httptest.NewRequest("GET", "/api/v1/suggestions?q=bea", nil)
	rr := httptest.NewRecorder()

	server.handleSuggestions(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response SuggestionsResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(response.Suggestions))
	}
	if response.Suggestions[0].Kind != domain.SuggestionKindHistory {
		t.Errorf("expected history suggestion first, got %s", response.Suggestions[0].Kind)
	}
}

func TestHandleSuggestions_CustomLimit(t *testing.T) {
	var gotLimit int
	mockSearch := &mockSearchService{
		suggestFn: func(ctx context.Context, partial string, limit int) ([]domain.SearchSuggestion, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	server := &Server{searchService: mockSearch}

	req := httptest.NewRequest("GET", "/api/v1/suggestions?q=bea&limit=5", nil)
	rr := httptest.NewRecorder()

	server.handleSuggestions(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if gotLimit != 5 {
		t.Errorf("expected limit 5, got %d", gotLimit)
	}

	var response SuggestionsResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Suggestions == nil {
		t.Error("expected empty slice, got null")
	}
}

func TestHandleSuggestions_InvalidLimit(t *testing.T) {
	server := &Server{}

	req := httptest.NewRequest("GET", "/api/v1/suggestions?limit=abc", nil)
	rr := httptest.NewRecorder()

	server.handleSuggestions(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

// History handler tests

func TestHandleGetHistory_Success(t *testing.T) {
	mockSearch := &mockSearchService{
		historyFn: func(ctx context.Context) ([]string, error) {
			return []string{"beach trip", "cats"}, nil
		},
	}

	server := &Server{searchService: mockSearch}

	req := httptest.NewRequest("GET", "/api/v1/history", nil)
	rr := httptest.NewRecorder()

	server.handleGetHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response HistoryResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Queries) != 2 || response.Queries[0] != "beach trip" {
		t.Errorf("unexpected queries: %v", response.Queries)
	}
}

func TestHandleGetHistory_Empty(t *testing.T) {
	mockSearch := &mockSearchService{
		historyFn: func(ctx context.Context) ([]string, error) {
			return nil, nil
		},
	}

	server := &Server{searchService: mockSearch}

	req := httptest.NewRequest("GET", "/api/v1/history", nil)
	rr := httptest.NewRecorder()

	server.handleGetHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response HistoryResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Queries == nil {
		t.Error("expected empty slice, got null")
	}
}

func TestHandleClearHistory_Success(t *testing.T) {
	cleared := false
	mockSearch := &mockSearchService{
		clearHistoryFn: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}

	server := &Server{searchService: mockSearch}

	req := httptest.NewRequest("DELETE", "/api/v1/history", nil)
	rr := httptest.NewRecorder()

	server.handleClearHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if !cleared {
		t.Error("expected ClearHistory to be called")
	}
}

// Filter handler tests

func TestHandleGetFilters_Success(t *testing.T) {
	mockSearch := &mockSearchService{
		getFiltersFn: func(ctx context.Context) (*domain.SearchFilters, error) {
			return domain.DefaultFilters(), nil
		},
	}

	server := &Server{searchService: mockSearch}

	req := httptest.NewRequest("GET", "/api/v1/filters", nil)
	rr := httptest.NewRecorder()

	server.handleGetFilters(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response domain.SearchFilters
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.FavoritesOnly {
		t.Error("expected default filters with favorites_only false")
	}
}

func TestHandleSaveFilters_Success(t *testing.T) {
	var saved *domain.SearchFilters
	mockSearch := &mockSearchService{
		saveFiltersFn: func(ctx context.Context, filters *domain.SearchFilters) error {
			saved = filters
			return nil
		},
	}

	server := &Server{searchService: mockSearch}

	body, _ := json.Marshal(domain.SearchFilters{FavoritesOnly: true})
	req := httptest.NewRequest("PUT", "/api/v1/filters", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleSaveFilters(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if saved == nil || !saved.FavoritesOnly {
		t.Errorf("expected favorites_only filters saved, got %+v", saved)
	}
}

func TestHandleSaveFilters_InvalidRange(t *testing.T) {
	mockSearch := &mockSearchService{
		saveFiltersFn: func(ctx context.Context, filters *domain.SearchFilters) error {
			return domain.ErrInvalidFilterRange
		},
	}

	server := &Server{searchService: mockSearch}

	minDuration := int64(1000)
	maxDuration := int64(500)
	body, _ := json.Marshal(domain.SearchFilters{
		MinDurationMs: &minDuration,
		MaxDurationMs: &maxDuration,
	})
	req := httptest.NewRequest("PUT", "/api/v1/filters", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleSaveFilters(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "invalid filter range" {
		t.Errorf("expected error 'invalid filter range', got %s", response["error"])
	}
}

// Library handler tests

func TestHandleListVideos_Success(t *testing.T) {
	mockLibrary := &mockLibraryService{
		listFn: func(ctx context.Context) ([]*domain.VideoRecord, error) {
			return []*domain.VideoRecord{
				{ID: "vid-1", Filename: "beach_party.mov", Path: "/videos/beach_party.mov"},
				{ID: "vid-2", Filename: "cats.mp4", Path: "/videos/cats.mp4"},
			}, nil
		},
	}

	server := &Server{libraryService: mockLibrary}

	req := httptest.NewRequest("GET", "/api/v1/videos", nil)
	rr := httptest.NewRecorder()

	server.handleListVideos(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response VideosResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 2 {
		t.Errorf("expected count 2, got %d", response.Count)
	}
}

func TestHandleUpsertVideos_Success(t *testing.T) {
	var stored []*domain.VideoRecord
	mockLibrary := &mockLibraryService{
		upsertFn: func(ctx context.Context, records []*domain.VideoRecord) error {
			stored = records
			return nil
		},
	}

	server := &Server{libraryService: mockLibrary}

	body, _ := json.Marshal([]*domain.VideoRecord{
		{ID: "vid-1", Filename: "beach_party.mov", Path: "/videos/beach_party.mov"},
	})
	req := httptest.NewRequest("PUT", "/api/v1/videos", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleUpsertVideos(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if len(stored) != 1 || stored[0].ID != "vid-1" {
		t.Errorf("unexpected stored records: %+v", stored)
	}
}

func TestHandleUpsertVideos_ValidationError(t *testing.T) {
	mockLibrary := &mockLibraryService{
		upsertFn: func(ctx context.Context, records []*domain.VideoRecord) error {
			return fmt.Errorf("record %q: %w", "vid-1", domain.ErrInvalidInput)
		},
	}

	server := &Server{libraryService: mockLibrary}

	body, _ := json.Marshal([]*domain.VideoRecord{{ID: "vid-1"}})
	req := httptest.NewRequest("PUT", "/api/v1/videos", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	server.handleUpsertVideos(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleDeleteVideo_Success(t *testing.T) {
	var deleted string
	mockLibrary := &mockLibraryService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	server := &Server{libraryService: mockLibrary}

	req := httptest.NewRequest("DELETE", "/api/v1/videos/vid-1", nil)
	req.SetPathValue("id", "vid-1")
	rr := httptest.NewRecorder()

	server.handleDeleteVideo(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if deleted != "vid-1" {
		t.Errorf("expected delete of 'vid-1', got %s", deleted)
	}
}

func TestHandleDeleteVideo_NotFound(t *testing.T) {
	mockLibrary := &mockLibraryService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrNotFound
		},
	}

	server := &Server{libraryService: mockLibrary}

	req := httptest.NewRequest("DELETE", "/api/v1/videos/missing", nil)
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()

	server.handleDeleteVideo(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}
