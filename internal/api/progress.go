package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/example/english-for-kids/internal/dal"
)

type (
	ProgressIn struct {
		UserID    string `json:"user_id" validate:"required,min=1"`
		LessonID  string `json:"lesson_id" validate:"required,min=1"`
		Correct   int    `json:"correct" validate:"min=0"`
		Incorrect int    `json:"incorrect" validate:"min=0"`
		LastScore *int   `json:"last_score"`
	}

	ProgressHandler struct {
		store dal.DocumentStore
		log   *slog.Logger
	}
)

func NewProgressHandler(store dal.DocumentStore, log *slog.Logger) *ProgressHandler {
	return &ProgressHandler{store: store, log: log}
}

// Submit always inserts a new progress record; prior records for the same
// user and lesson are kept as history, never merged.
func (h *ProgressHandler) Submit(c echo.Context) error {
	var in ProgressIn
	if err := c.Bind(&in); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	if err := c.Validate(&in); err != nil {
		h.log.DebugContext(c.Request().Context(), "failed to validate request", "error", err)
		return err
	}

	record := dal.Progress{
		UserID:    in.UserID,
		LessonID:  in.LessonID,
		Correct:   in.Correct,
		Incorrect: in.Incorrect,
		LastScore: in.LastScore,
	}
	id, err := h.store.CreateDocument(c.Request().Context(), dal.CollectionProgress, record)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "failed to submit progress", "error", err)
		return fmt.Errorf("submit progress: %w", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": "ok"})
}

// Get returns the most recently inserted progress record for the user and
// lesson, or {"status":"none"} when nothing has been submitted yet.
func (h *ProgressHandler) Get(c echo.Context) error {
	userID := c.Param("user_id")
	lessonID := c.Param("lesson_id")

	doc, err := h.store.FindLatestDocument(c.Request().Context(), dal.CollectionProgress, dal.Filter{
		"user_id":   userID,
		"lesson_id": lessonID,
	})
	if errors.Is(err, dal.ErrNotFound) {
		return c.JSON(http.StatusOK, echo.Map{"status": "none"})
	}
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "failed to get progress",
			"user_id", userID, "lesson_id", lessonID, "error", err)
		return fmt.Errorf("get progress: %w", err)
	}

	return c.JSON(http.StatusOK, dal.SerializeDoc(doc))
}
