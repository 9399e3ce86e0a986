package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/generation/prompt"
	"github.com/heartmarshall/studynotes-backend/internal/service/generation/response"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// Generate creates the note of a topic that has none.
// Returns domain.ErrAlreadyExists if the topic already has a note and
// domain.ErrConflict while another generation for the topic is running.
func (s *Service) Generate(ctx context.Context, topicID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	release, err := s.acquire(ctx, topicID)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, topicID, release)

	exists, err := s.notes.ExistsByTopicID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("check note: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("note for topic %s: %w", topicID, domain.ErrAlreadyExists)
	}

	return s.run(ctx, userID, topic)
}

// Regenerate replaces the note of a topic, whatever the topic's status.
// The old note and its analytics are removed before the model is called.
func (s *Service) Regenerate(ctx context.Context, topicID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	release, err := s.acquire(ctx, topicID)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, topicID, release)

	deleted, err := s.notes.DeleteByTopicID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("delete note: %w", err)
	}
	if deleted {
		s.log.InfoContext(ctx, "previous note deleted", slog.String("topic_id", topicID.String()))
	}

	return s.run(ctx, userID, topic)
}

// run moves the topic through processing to completed or failed.
func (s *Service) run(ctx context.Context, userID uuid.UUID, topic *domain.Topic) (*domain.Note, error) {
	// Status writes and the call log must land even if the caller went away.
	bg := context.WithoutCancel(ctx)

	if err := s.topics.UpdateStatus(ctx, topic.ID, domain.TopicStatusProcessing); err != nil {
		return nil, fmt.Errorf("mark processing: %w", err)
	}

	start := time.Now()
	text, raw, sections, err := s.produce(ctx, userID, topic)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		s.logCall(bg, domain.CallLogEntry{
			UserID:              userID,
			TopicID:             &topic.ID,
			Prompt:              text,
			Status:              domain.CallStatusFailed,
			ModelUsed:           s.model.Model(),
			ResponseTimeSeconds: elapsed,
			ErrorMessage:        err.Error(),
		})
		s.setStatus(bg, topic.ID, domain.TopicStatusFailed)
		s.log.ErrorContext(ctx, "note generation failed",
			slog.String("topic_id", topic.ID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.logCall(bg, domain.CallLogEntry{
		UserID:              userID,
		TopicID:             &topic.ID,
		Prompt:              text,
		RawResponse:         raw,
		Status:              domain.CallStatusSuccess,
		ModelUsed:           s.model.Model(),
		ResponseTimeSeconds: elapsed,
	})

	note := &domain.Note{
		TopicID:               topic.ID,
		Content:               sections.Content,
		Summary:               sections.Summary,
		KeyPoints:             sections.KeyPoints,
		References:            sections.References,
		ModelUsed:             s.model.Model(),
		GenerationTimeSeconds: elapsed,
	}
	note.ApplyDerivedMetrics()

	created, err := s.persist(bg, note)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAlreadyExists):
		// A concurrent request stored its note first.
		s.setStatus(bg, topic.ID, domain.TopicStatusCompleted)
		return nil, err
	default:
		s.setStatus(bg, topic.ID, domain.TopicStatusFailed)
		return nil, err
	}

	created.TopicTitle = topic.Title

	s.log.InfoContext(ctx, "note generated",
		slog.String("topic_id", topic.ID.String()),
		slog.String("note_id", created.ID.String()),
		slog.String("model", created.ModelUsed),
		slog.Int("word_count", created.WordCount),
		slog.Float64("seconds", elapsed))

	return created, nil
}

// produce resolves the template, calls the model and parses the reply.
// The prompt is returned even on failure once it has been built.
func (s *Service) produce(ctx context.Context, userID uuid.UUID, topic *domain.Topic) (string, string, response.Sections, error) {
	pref, err := s.prefs.Get(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		pref = nil
	default:
		return "", "", response.Sections{}, fmt.Errorf("get preferences: %w", err)
	}

	var style *domain.TemplateType
	if pref != nil {
		style = &pref.PreferredStyle
	}

	tmpl, err := s.templates.SelectTemplate(ctx, style)
	if err != nil {
		return "", "", response.Sections{}, fmt.Errorf("select template: %w", err)
	}

	text := prompt.Build(*tmpl, *topic, pref)

	raw, err := s.complete(ctx, text)
	if err != nil {
		return text, "", response.Sections{}, err
	}

	return text, raw, response.Parse(raw), nil
}

// persist stores the note with its analytics row and completes the topic.
func (s *Service) persist(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	var created *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.notes.Create(txCtx, note)
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}
		if err := s.analytics.Create(txCtx, created.ID); err != nil {
			return fmt.Errorf("create analytics: %w", err)
		}
		if err := s.topics.UpdateStatus(txCtx, note.TopicID, domain.TopicStatusCompleted); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
