package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/example/english-for-kids/internal/config"
	"github.com/example/english-for-kids/internal/dal"
	"github.com/example/english-for-kids/internal/seed"
)

type (
	Dependencies struct {
		Store  dal.DocumentStore
		Seeder *seed.Seeder
		Logger *slog.Logger
	}
)

func NewRouter(ctx context.Context, conf *config.API, deps Dependencies) http.Handler {
	e := echo.New()
	e.Validator = NewValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(loggingMiddleware(ctx, deps.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(conf.HTTP.RateLimit))))
	// Deliberately permissive: this is a public demo API with no credentials
	// worth protecting.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:                             []string{"*"},
		AllowMethods:                             []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:                             []string{"*"},
		AllowCredentials:                         true,
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: conf.HTTP.ProcessTimeout,
	}))
	e.Use(middleware.Secure())

	e.HTTPErrorHandler = HTTPErrorHandler(deps.Logger)

	health := NewHealthHandler(deps.Store, deps.Logger)
	e.GET("/", health.Root)
	e.GET("/api/hello", health.Hello)
	e.GET("/test", health.Diagnostics)

	content := NewContentHandler(deps.Store, deps.Logger)
	e.GET("/api/lessons", content.ListLessons)
	e.GET("/api/lessons/:lesson_id/words", content.ListWords)

	progress := NewProgressHandler(deps.Store, deps.Logger)
	e.POST("/api/progress", progress.Submit)
	e.GET("/api/progress/:user_id/:lesson_id", progress.Get)

	seeder := NewSeedHandler(deps.Seeder, deps.Logger)
	e.POST("/api/seed", seeder.Seed)

	return e
}

func loggingMiddleware(ctx context.Context, log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true, // forwards the error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				log.LogAttrs(ctx, slog.LevelInfo, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
				)
			} else {
				log.LogAttrs(ctx, slog.LevelError, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	})
}
