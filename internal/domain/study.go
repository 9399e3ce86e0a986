package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSubjectName is used in prompts for topics without a subject.
const DefaultSubjectName = "General"

// Subject groups topics by area of study.
type Subject struct {
	ID          uuid.UUID
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}

// Topic is a user's request to learn about something. It owns at most one Note.
type Topic struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	SubjectID   *uuid.UUID
	SubjectName *string // joined from subjects, not stored on the topic row
	Difficulty  Difficulty
	Status      TopicStatus
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TopicUpdateParams holds the optional fields for a partial topic update.
// ClearSubject takes precedence over SubjectID.
type TopicUpdateParams struct {
	Title        *string
	Description  *string
	SubjectID    *uuid.UUID
	ClearSubject bool
	Difficulty   *Difficulty
	Tags         []string // nil = don't change
}

// TopicStats counts a user's topics by status and difficulty.
type TopicStats struct {
	Total        int
	Completed    int
	Pending      int
	Processing   int
	Failed       int
	ByDifficulty map[Difficulty]int
}

// Note is AI-generated study material for a topic.
// WordCount and ReadingTimeMinutes are always derived from Content.
type Note struct {
	ID                    uuid.UUID
	TopicID               uuid.UUID
	TopicTitle            string // joined from topics
	Content               string
	Summary               string
	KeyPoints             []string
	References            []string
	WordCount             int
	ReadingTimeMinutes    int
	ModelUsed             string
	GenerationTimeSeconds float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NoteUpdateParams holds the optional fields for a partial note edit.
type NoteUpdateParams struct {
	Content    *string
	Summary    *string
	KeyPoints  []string // nil = don't change
	References []string // nil = don't change
}

// NoteAnalytics holds reading counters for a note.
type NoteAnalytics struct {
	NoteID      uuid.UUID
	ViewsCount  int
	SharesCount int
	UserRating  *int
	LastViewed  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Preference holds a user's note generation settings.
type Preference struct {
	UserID              uuid.UUID
	PreferredDifficulty Difficulty
	PreferredStyle      TemplateType
	IncludeExamples     bool
	IncludeSummary      bool
	IncludeKeyPoints    bool
	MaxWordCount        int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultMaxWordCount is the prompt word budget when a user has no preference.
const DefaultMaxWordCount = 1000

// DefaultPreference returns the settings a new user starts with.
func DefaultPreference(userID uuid.UUID) Preference {
	return Preference{
		UserID:              userID,
		PreferredDifficulty: DifficultyIntermediate,
		PreferredStyle:      TemplateTypeAcademic,
		IncludeExamples:     true,
		IncludeSummary:      true,
		IncludeKeyPoints:    true,
		MaxWordCount:        DefaultMaxWordCount,
	}
}

// PreferenceUpdateParams holds the optional fields for a preference update.
type PreferenceUpdateParams struct {
	PreferredDifficulty *Difficulty
	PreferredStyle      *TemplateType
	IncludeExamples     *bool
	IncludeSummary      *bool
	IncludeKeyPoints    *bool
	MaxWordCount        *int
}
