// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/tridiag/fixture"
	"github.com/katalvlaran/tridiag/service"
	"github.com/katalvlaran/tridiag/tridiagonal"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

const (
	keyRequestID    = "request_id"
	shutdownTimeout = 5 * time.Second
)

// Server exposes a service.Runner over HTTP.
type Server struct {
	runner *service.Runner
	logger *zap.Logger
	engine *gin.Engine
}

// TestRequest is the body of POST /tridiagonal/test.
type TestRequest struct {
	ID string `json:"id" binding:"required"`
}

// New wires the routes. A nil logger is replaced by zap.NewNop.
func New(runner *service.Runner, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{runner: runner, logger: logger, engine: gin.New()}
	s.engine.Use(requestID(), accessLog(logger), gin.Recovery())

	s.engine.GET("/healthz", s.health)
	g := s.engine.Group("/tridiagonal")
	g.GET("/fixtures", s.fixtures)
	g.POST("/test", s.test)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", zap.String("address", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")

	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) fixtures(c *gin.Context) {
	ids, err := s.runner.Store().List()
	if err != nil {
		s.logger.Error("list fixtures", zap.Error(err), zap.String(keyRequestID, c.GetString(keyRequestID)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixtures": ids})
}

func (s *Server) test(c *gin.Context) {
	var req TestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if d := s.runner.Config().Timeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	res, err := s.runner.Run(ctx, req.ID)
	if err != nil {
		c.JSON(StatusFor(err), res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// StatusFor maps run errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, fixture.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, fixture.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, tridiagonal.ErrLoad), errors.Is(err, tridiagonal.ErrUnsolvable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// requestID propagates X-Request-ID or assigns a fresh uuid.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(keyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String(keyRequestID, c.GetString(keyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
