package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/example/english-for-kids/internal/dal"
)

type ContentHandler struct {
	store dal.DocumentStore
	log   *slog.Logger
}

func NewContentHandler(store dal.DocumentStore, log *slog.Logger) *ContentHandler {
	return &ContentHandler{store: store, log: log}
}

func (h *ContentHandler) ListLessons(c echo.Context) error {
	docs, err := h.store.GetDocuments(c.Request().Context(), dal.CollectionLesson, nil, 0)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "failed to list lessons", "error", err)
		return fmt.Errorf("list lessons: %w", err)
	}

	return c.JSON(http.StatusOK, dal.SerializeList(docs))
}

func (h *ContentHandler) ListWords(c echo.Context) error {
	lessonID := c.Param("lesson_id")

	docs, err := h.store.GetDocuments(c.Request().Context(), dal.CollectionWord, dal.Filter{"lesson_id": lessonID}, 0)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "failed to list words", "lesson_id", lessonID, "error", err)
		return fmt.Errorf("list words for lesson %q: %w", lessonID, err)
	}

	return c.JSON(http.StatusOK, dal.SerializeList(docs))
}
