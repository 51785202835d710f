package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/SkillQuest_Go/internal/database"
	"github.com/osse101/SkillQuest_Go/internal/handler"
	"github.com/osse101/SkillQuest_Go/internal/logger"
	"github.com/osse101/SkillQuest_Go/internal/metrics"
	"github.com/osse101/SkillQuest_Go/internal/progress"
)

// Options holds the HTTP settings for a Server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
}

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	levelCatalog    handler.LevelCatalog
	progressService progress.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, levelCatalog handler.LevelCatalog, progressService progress.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.ServiceName))
	r.Handle("/metrics", promhttp.Handler())

	levelHandler := handler.NewLevelHandler(levelCatalog)
	progressHandler := handler.NewProgressHandler(progressService)
	adminHandler := handler.NewAdminHandler(progressService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/levels", func(r chi.Router) {
			r.Get("/", levelHandler.HandleListLevels)
			r.Get("/lookup", levelHandler.HandleLookupLevel)
			r.Get("/{level}", levelHandler.HandleGetLevel)
		})
		r.Get("/tiers", levelHandler.HandleListTiers)
		r.Get("/activities", progressHandler.HandleListActivities)
		r.Get("/leaderboard", progressHandler.HandleGetLeaderboard)

		r.Route("/learners", func(r chi.Router) {
			r.Post("/award-xp", progressHandler.HandleAwardXP)
			r.Get("/{learnerID}/progress", progressHandler.HandleGetProgress)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/grant-xp", adminHandler.HandleGrantXP)
			r.Post("/reset-daily-xp", adminHandler.HandleResetDailyXP)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		dbPool:          dbPool,
		levelCatalog:    levelCatalog,
		progressService: progressService,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are not logged
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
