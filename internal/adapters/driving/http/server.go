package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/astralstream/mediasearch/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	authService    driving.AuthService
	searchService  driving.SearchService
	libraryService driving.LibraryService

	// Infrastructure
	db          Pinger // PostgreSQL health check
	redisClient Pinger // Redis health check (optional)
}

// Config holds server configuration
type Config struct {
	Host    string
	Port    int
	Version string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:    "0.0.0.0",
		Port:    8080,
		Version: "dev",
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	authService driving.AuthService,
	searchService driving.SearchService,
	libraryService driving.LibraryService,
	db Pinger,
	redisClient Pinger, // can be nil
) *Server {
	s := &Server{
		router:         http.NewServeMux(),
		version:        cfg.Version,
		authService:    authService,
		searchService:  searchService,
		libraryService: libraryService,
		db:             db,
		redisClient:    redisClient,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Create middleware
	authMiddleware := NewAuthMiddleware(s.authService)

	// Health endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Auth endpoints
	s.router.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.router.Handle("POST /api/v1/auth/logout",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleLogout)))

	// Search endpoints (authenticated)
	s.router.Handle("POST /api/v1/search",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleSearch)))
	s.router.Handle("GET /api/v1/suggestions",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleSuggestions)))

	// History endpoints (authenticated)
	s.router.Handle("GET /api/v1/history",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGetHistory)))
	s.router.Handle("DELETE /api/v1/history",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleClearHistory)))

	// Filter endpoints (authenticated)
	s.router.Handle("GET /api/v1/filters",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGetFilters)))
	s.router.Handle("PUT /api/v1/filters",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleSaveFilters)))

	// Library endpoints (authenticated)
	s.router.Handle("GET /api/v1/videos",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleListVideos)))
	s.router.Handle("PUT /api/v1/videos",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpsertVideos)))
	s.router.Handle("DELETE /api/v1/videos/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDeleteVideo)))
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
