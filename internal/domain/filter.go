package domain

import "github.com/google/uuid"

// Paging bounds shared by list operations.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Sort orders.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// TopicFilter contains filtering/pagination parameters for topic listings.
// SortBy is one of created_at, updated_at, title.
type TopicFilter struct {
	Status     *TopicStatus
	Difficulty *Difficulty
	SubjectID  *uuid.UUID
	Search     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// NoteFilter contains filtering/pagination parameters for note listings.
// SortBy is one of created_at, updated_at, word_count.
type NoteFilter struct {
	ModelUsed string
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
