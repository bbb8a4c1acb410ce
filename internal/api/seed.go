package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/example/english-for-kids/internal/seed"
)

type SeedHandler struct {
	seeder *seed.Seeder
	log    *slog.Logger
}

func NewSeedHandler(seeder *seed.Seeder, log *slog.Logger) *SeedHandler {
	return &SeedHandler{seeder: seeder, log: log}
}

func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.seeder.Run(c.Request().Context())
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "failed to seed demo content", "error", err)
		return fmt.Errorf("seed demo content: %w", err)
	}

	return c.JSON(http.StatusOK, result)
}
