package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is a parameterized instruction text sent to the model.
// Body contains {placeholder} markers.
type Template struct {
	ID          uuid.UUID
	Name        string
	Type        TemplateType
	Body        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CallLogEntry is an immutable record of one attempt to call the model.
type CallLogEntry struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	TopicID             *uuid.UUID
	Prompt              string
	RawResponse         string
	Status              CallStatus
	ModelUsed           string
	ResponseTimeSeconds float64
	ErrorMessage        string
	CreatedAt           time.Time
}

// CallLogStats aggregates a user's model calls.
type CallLogStats struct {
	Total               int
	Successful          int
	Failed              int
	AverageResponseTime float64
	ModelUsage          map[string]int
}

// ModelStatus reports whether the model provider answers.
type ModelStatus struct {
	Status     string
	Model      string
	APIWorking bool
	Error      string
}
