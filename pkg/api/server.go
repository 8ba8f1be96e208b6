// Package api exposes the trigger and read HTTP surface: lesson triggers,
// status polling, exercise reads, and health probes.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/tulkka/lessonflow/pkg/config"
	"github.com/tulkka/lessonflow/pkg/database"
	"github.com/tulkka/lessonflow/pkg/dispatch"
	"github.com/tulkka/lessonflow/pkg/services"
	"github.com/tulkka/lessonflow/pkg/worker"
)

// Dispatcher forwards trigger payloads to the external transcript workflow.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload dispatch.Payload, idempotencyKey string) dispatch.Outcome
}

// Pinger probes the operational store for the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server hosts the HTTP surface. All collaborators except the database client
// and the services are optional; nil disables the corresponding feature.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	artifacts  *services.ArtifactService
	exercises  *services.ExerciseService
	generator  worker.Generator
	dispatcher Dispatcher
	workerPool *worker.WorkerPool
	classStore Pinger

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	artifacts *services.ArtifactService,
	exercises *services.ExerciseService,
	generator worker.Generator,
	dispatcher Dispatcher,
	workerPool *worker.WorkerPool,
	classStore Pinger,
) *Server {
	s := &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		artifacts:  artifacts,
		exercises:  exercises,
		generator:  generator,
		dispatcher: dispatcher,
		workerPool: workerPool,
		classStore: classStore,
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ready", s.readyHandler)

	replay := newIdempotencyStore(s.cfg.IdempotencyWindow)

	v1 := e.Group("/v1")
	v1.POST("/trigger", s.triggerHandler, replay.middleware())
	v1.POST("/process", s.processHandler, replay.middleware())
	v1.GET("/lesson-status/:summary_id", s.lessonStatusHandler)
	v1.GET("/exercises", s.exercisesHandler)

	return e
}

// Handler returns the underlying HTTP handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on the configured port. It blocks until the listener
// fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.HTTPPort,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "port", s.cfg.HTTPPort)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
