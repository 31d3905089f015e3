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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/yolapp/yol-backend/internal/database"
	"github.com/yolapp/yol-backend/internal/handler"
	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/metrics"
	"github.com/yolapp/yol-backend/internal/progression"
	"github.com/yolapp/yol-backend/internal/success"
	"github.com/yolapp/yol-backend/internal/task"
	"github.com/yolapp/yol-backend/internal/user"
	"github.com/yolapp/yol-backend/internal/yol"
)

type Server struct {
	httpServer         *http.Server
	dbPool             database.Pool
	userService        user.Service
	taskService        task.Service
	progressionService progression.Service
	yolService         yol.Service
	successService     success.Service
}

// NewServer creates a new Server instance
func NewServer(port int, verifier TokenVerifier, trustedProxies []string, dbPool database.Pool, userService user.Service, taskService task.Service, progressionService progression.Service, yolService yol.Service, successService success.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(verifier, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.MetricsMiddleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Account routes
		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", handler.HandleSignup(userService))
			r.Post("/login", handler.HandleLogin(userService))
			r.Post("/refresh", handler.HandleRefresh(userService))

			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetUser(userService))
				r.Patch("/", handler.HandleUpdateProfile(userService))
				r.Delete("/", handler.HandleDeleteUser(userService))
				r.Patch("/password", handler.HandleUpdatePassword(userService))
				r.Patch("/picture", handler.HandleUpdatePicture(userService))
			})
		})

		// Yol routes
		yolHandlers := handler.NewYolHandlers(yolService)
		r.Get("/species", yolHandlers.HandleListSpecies())
		r.Route("/yol", func(r chi.Router) {
			r.Post("/", yolHandlers.HandleAdoptYol())
			r.Get("/{yolID}", yolHandlers.HandleGetYol())
			r.Patch("/{yolID}/evolve", yolHandlers.HandleEvolveYol())
			r.Get("/user/{userID}", yolHandlers.HandleGetYolByUser())
		})

		// Success definition and progress routes
		r.Route("/success", func(r chi.Router) {
			r.Get("/", handler.HandleListSuccesses(successService))
			r.Get("/{successID}", handler.HandleGetSuccess(successService))
		})
		progressionHandlers := handler.NewProgressionHandlers(progressionService)
		r.Route("/user-success", func(r chi.Router) {
			r.Get("/{userID}", handler.HandleGetUserSuccesses(successService))
			r.Patch("/{userSuccessID}/validate", progressionHandlers.HandleValidateSuccess())
		})

		// Task routes
		r.Route("/user-tasks", func(r chi.Router) {
			r.Get("/{userID}", handler.HandleGetUserTasks(taskService))
			r.Post("/{userID}/custom", handler.HandleCreateCustomTask(taskService))
			r.Post("/{userID}/daily", handler.HandleAssignDailyTasks(taskService))
			r.Patch("/{userTaskID}/title", handler.HandleRenameTask(taskService))
			r.Patch("/{userTaskID}/validate-daily", progressionHandlers.HandleValidateDailyTask())
			r.Patch("/{userTaskID}/validate-custom", progressionHandlers.HandleValidateCustomTask())
			r.Delete("/{userTaskID}", handler.HandleDeleteCustomTask(taskService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:             dbPool,
		userService:        userService,
		taskService:        taskService,
		progressionService: progressionService,
		yolService:         yolService,
		successService:     successService,
	}
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
		statusCode:     http.StatusOK, // default status
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

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
