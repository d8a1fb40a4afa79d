// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package web serves a shelf session to the browser.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/view"
)

// Server is the HTTP surface of one session. All browser tabs share the
// session's store and view.
type Server struct {
	echo  *echo.Echo
	shelf library.Shelf
	view  *view.View
	log   *slog.Logger
}

// NewServer wires routes for shelf.
func NewServer(shelf library.Shelf, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	s := &Server{
		echo:  e,
		shelf: shelf,
		view:  view.New(shelf),
		log:   logger,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(s.requestLog())

	e.GET("/health", s.health)

	e.GET("/", s.index)
	e.POST("/books", s.addBook)
	e.POST("/books/:id/toggle", s.toggleBook)
	e.POST("/books/:id/delete", s.deleteBook)
	e.POST("/books/:id/edit", s.editBook)

	api := e.Group("/api")
	api.GET("/books", s.apiList)
	api.POST("/books", s.apiAdd)
	api.PATCH("/books/:id", s.apiEdit)
	api.POST("/books/:id/toggle", s.apiToggle)
	api.DELETE("/books/:id", s.apiDelete)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web server listening", "addr", "http://"+addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("web server stopping")
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Close releases the session view.
func (s *Server) Close() {
	s.view.Close()
}

func (s *Server) requestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			s.log.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"version": s.shelf.Snapshot().Version,
	})
}
