package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/english-for-kids/internal/config"
	"github.com/example/english-for-kids/internal/dal"
	"github.com/example/english-for-kids/internal/seed"
)

func newTestRouter(t *testing.T, store dal.DocumentStore) http.Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := &config.API{
		HTTP: config.HTTP{
			ProcessTimeout: 5 * time.Second,
			RateLimit:      1000,
		},
	}

	return NewRouter(context.Background(), conf, Dependencies{
		Store:  store,
		Seeder: seed.NewSeeder(store, log),
		Logger: log,
	})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestListLessons_SerializesIdentifier(t *testing.T) {
	store := newMemStore()
	_, err := store.CreateDocument(context.Background(), dal.CollectionLesson, dal.Lesson{
		Title: "צבעים", EnglishTitle: "Colors", Level: "beginner", CoverEmoji: "🎨",
	})
	require.NoError(t, err)
	router := newTestRouter(t, store)

	rec := doRequest(t, router, http.MethodGet, "/api/lessons", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var lessons []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lessons))
	require.Len(t, lessons, 1)
	id, ok := lessons[0]["id"].(string)
	assert.True(t, ok, "id must be a string")
	assert.NotEmpty(t, id)
	assert.NotContains(t, lessons[0], "_id")
	assert.Equal(t, "Colors", lessons[0]["english_title"])
}

func TestListLessons_StoreError(t *testing.T) {
	store := newMemStore()
	store.failWith = assert.AnError
	router := newTestRouter(t, store)

	rec := doRequest(t, router, http.MethodGet, "/api/lessons", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], assert.AnError.Error())
}

func TestListWords_EmptyLesson(t *testing.T) {
	router := newTestRouter(t, newMemStore())

	rec := doRequest(t, router, http.MethodGet, "/api/lessons/unknown/words", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListWords_FiltersByLesson(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	_, err := store.CreateDocument(ctx, dal.CollectionWord, dal.Word{LessonID: "l1", English: "red", Hebrew: "אדום"})
	require.NoError(t, err)
	_, err = store.CreateDocument(ctx, dal.CollectionWord, dal.Word{LessonID: "l2", English: "dog", Hebrew: "כלב"})
	require.NoError(t, err)
	router := newTestRouter(t, store)

	rec := doRequest(t, router, http.MethodGet, "/api/lessons/l1/words", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var words []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &words))
	require.Len(t, words, 1)
	assert.Equal(t, "red", words[0]["english"])
	assert.Equal(t, "l1", words[0]["lesson_id"])
	assert.NotContains(t, words[0], "_id")
}
