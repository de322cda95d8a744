// Package server exposes the date format classifier over HTTP.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/az-ai-labs/dateguess/datefmt"
	"github.com/az-ai-labs/dateguess/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP preview server.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

type classifyRequest struct {
	Input  string `json:"input"`
	Locale string `json:"locale"`
}

type templateResponse struct {
	Template string `json:"template"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a server with all routes registered.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{cfg: cfg, logger: logger, echo: e}

	e.Use(s.logRequests)
	e.GET("/healthz", s.handleHealth)

	api := e.Group("/api/v1", NewRateLimiter(cfg.RateLimit, cfg.Burst).Middleware())
	api.POST("/classify", s.handleClassify)
	api.GET("/template", s.handleTemplate)
	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Addr, strconv.Itoa(s.cfg.Port))
	s.logger.Info("server listening", "addr", addr, "mode", s.cfg.Mode)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "failed to start server")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to shutdown server")
		}
		s.logger.Info("server stopped")
		return nil
	}
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.logger.Debug("request",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", c.Response().Status,
			"latency", time.Since(start),
		)
		return nil
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/v1/classify
func (s *Server) handleClassify(c echo.Context) error {
	var req classifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}

	res, err := datefmt.ClassifyLocale(req.Input, s.locale(req.Locale))
	if err != nil {
		return s.classifyError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// GET /api/v1/template?input=...&locale=...
func (s *Server) handleTemplate(c echo.Context) error {
	input := c.QueryParam("input")
	res, err := datefmt.ClassifyLocale(input, s.locale(c.QueryParam("locale")))
	if err != nil {
		return s.classifyError(c, err)
	}
	best, ok := res.Best()
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no interpretation"})
	}
	return c.JSON(http.StatusOK, templateResponse{Template: best.Template})
}

func (s *Server) locale(tag string) string {
	if tag == "" {
		return s.cfg.Locale
	}
	return tag
}

func (s *Server) classifyError(c echo.Context, err error) error {
	var invalid *datefmt.InvalidInputError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: invalid.Error()})
	}
	s.logger.Error("classify failed", "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
