package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/english-for-kids/internal/dal"
)

const (
	StatusOK     = "ok"
	StatusExists = "exists"
)

type (
	Created struct {
		Lessons int `json:"lessons"`
		Words   int `json:"words"`
	}

	Result struct {
		Status  string   `json:"status"`
		Message string   `json:"message,omitempty"`
		Created *Created `json:"created,omitempty"`
	}

	// Seeder populates demo lessons and words once. The count-check before
	// inserting is not atomic, so concurrent seeding may double-insert; this
	// is acceptable for a demo bootstrap endpoint.
	Seeder struct {
		store dal.DocumentStore
		log   *slog.Logger
	}
)

func NewSeeder(store dal.DocumentStore, log *slog.Logger) *Seeder {
	return &Seeder{store: store, log: log}
}

// Run inserts the demo content unless lessons already exist.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	count, err := s.store.CountDocuments(ctx, dal.CollectionLesson, nil)
	if err != nil {
		return nil, fmt.Errorf("count lessons: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "seed skipped, lessons already present", "lessons", count)
		return &Result{Status: StatusExists, Message: "Lessons already seeded"}, nil
	}

	created := &Created{}

	lessonIDs := make([]string, 0, len(demoLessons))
	for _, lesson := range demoLessons {
		id, err := s.store.CreateDocument(ctx, dal.CollectionLesson, lesson)
		if err != nil {
			return nil, fmt.Errorf("insert lesson %q: %w", lesson.Title, err)
		}
		lessonIDs = append(lessonIDs, id)
		created.Lessons++
	}

	for i, words := range demoWords {
		for _, word := range words {
			word.LessonID = lessonIDs[i]
			if _, err := s.store.CreateDocument(ctx, dal.CollectionWord, word); err != nil {
				return nil, fmt.Errorf("insert word %q: %w", word.English, err)
			}
			created.Words++
		}
	}

	s.log.InfoContext(ctx, "demo content seeded", "lessons", created.Lessons, "words", created.Words)

	return &Result{Status: StatusOK, Created: created}, nil
}
