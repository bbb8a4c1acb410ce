package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/example/english-for-kids/internal/dal"
)

const diagnosticErrorLimit = 50

type HealthHandler struct {
	store dal.DocumentStore
	log   *slog.Logger
}

func NewHealthHandler(store dal.DocumentStore, log *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "English for Kids API is running"})
}

func (h *HealthHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Hello from the backend API!"})
}

// Diagnostics reports backend and database health. It never fails: every
// store error is caught and rendered as a status string in the body.
func (h *HealthHandler) Diagnostics(c echo.Context) error {
	ctx := c.Request().Context()

	resp := echo.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if err := h.store.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "diagnostics: store unreachable", "error", err)
		resp["database"] = "❌ Error: " + truncate(err.Error(), diagnosticErrorLimit)
	} else {
		resp["database"] = "✅ Available"
		resp["connection_status"] = "Connected"

		if names, err := h.store.ListCollectionNames(ctx); err != nil {
			h.log.WarnContext(ctx, "diagnostics: failed to list collections", "error", err)
			resp["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), diagnosticErrorLimit)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "✅ Connected & Working"
		}
	}

	// Presence only; values stay opaque.
	resp["database_url"] = envStatus("DATABASE_URL")
	resp["database_name"] = envStatus("DATABASE_NAME")

	return c.JSON(http.StatusOK, resp)
}

func envStatus(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
