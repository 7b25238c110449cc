// Package http provides the HTTP server exposing the inference and
// ingestion API plus the demo chat page.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/omnichat/omnichat-go/internal/domain/ports"
	"github.com/omnichat/omnichat-go/internal/domain/usecases"
)

// Server is the HTTP server for the chat API.
type Server struct {
	inferUC   *usecases.InferUseCase
	ingestUC  *usecases.IngestUseCase
	store     ports.DocumentStore
	addr      string
	uploadDir string
}

// NewServer creates a new HTTP server.
func NewServer(
	inferUC *usecases.InferUseCase,
	ingestUC *usecases.IngestUseCase,
	store ports.DocumentStore,
	addr, uploadDir string,
) *Server {
	return &Server{
		inferUC:   inferUC,
		ingestUC:  ingestUC,
		store:     store,
		addr:      addr,
		uploadDir: uploadDir,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors.Default())

	r.GET("/", s.handleIndex)

	api := r.Group("/api")
	api.POST("/infer", s.handleInfer)
	api.POST("/upload", s.handleUpload)
	api.POST("/ingest/folder", s.handleIngestFolder)
	api.GET("/documents", s.handleDocuments)
	api.GET("/health", s.handleHealth)

	return r
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 600 * time.Second, // generation can run for minutes
	}

	log.Info().Str("addr", s.addr).Msg("server starting")

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// requestLogger logs every request with method, path, status, and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
