package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.NewString()[:8]
}

// SeedSubject inserts a subject with a unique name.
func SeedSubject(t *testing.T, pool *pgxpool.Pool) domain.Subject {
	t.Helper()

	s := domain.Subject{Name: "Subject " + uniqueSuffix(), Description: "seeded", Color: "#112233"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO subjects (name, description, color) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		s.Name, s.Description, s.Color,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject: %v", err)
	}
	return s
}

// SeedTopic inserts a pending intermediate topic owned by userID.
// subjectID may be nil.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, subjectID *uuid.UUID) domain.Topic {
	t.Helper()

	tp := domain.Topic{
		UserID:      userID,
		Title:       "Topic " + uniqueSuffix(),
		Description: "What to learn",
		SubjectID:   subjectID,
		Difficulty:  domain.DifficultyIntermediate,
		Status:      domain.TopicStatusPending,
		Tags:        []string{"seed"},
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO topics (user_id, title, description, subject_id, difficulty, status, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		tp.UserID, tp.Title, tp.Description, tp.SubjectID, string(tp.Difficulty), string(tp.Status), tp.Tags,
	).Scan(&tp.ID, &tp.CreatedAt, &tp.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}
	return tp
}

// SeedNote inserts a note (and its analytics row) for topicID.
func SeedNote(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID) domain.Note {
	t.Helper()

	n := domain.Note{
		TopicID:    topicID,
		Content:    "seeded note content",
		Summary:    "seeded",
		KeyPoints:  []string{"one"},
		References: []string{},
		ModelUsed:  "test-model",
	}
	n.ApplyDerivedMetrics()

	ctx := context.Background()
	err := pool.QueryRow(ctx,
		`INSERT INTO notes (topic_id, content, summary, key_points, "references", word_count, reading_time_minutes, model_used)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		n.TopicID, n.Content, n.Summary, n.KeyPoints, n.References, n.WordCount, n.ReadingTimeMinutes, n.ModelUsed,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}

	if _, err := pool.Exec(ctx, `INSERT INTO note_analytics (note_id) VALUES ($1)`, n.ID); err != nil {
		t.Fatalf("testhelper: SeedNote analytics: %v", err)
	}
	return n
}

// SeedTemplate inserts a template of the given type with a unique name.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, tt domain.TemplateType, active bool) domain.Template {
	t.Helper()

	tmpl := domain.Template{
		Name:     string(tt) + "-" + uniqueSuffix(),
		Type:     tt,
		Body:     "Explain {topic_title} in {max_words} words.",
		IsActive: active,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO prompt_templates (name, type, body, is_active) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		tmpl.Name, string(tmpl.Type), tmpl.Body, tmpl.IsActive,
	).Scan(&tmpl.ID, &tmpl.CreatedAt, &tmpl.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate: %v", err)
	}
	return tmpl
}
