package note

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ListNotesInput holds the filter, sort and paging for listing notes.
type ListNotesInput struct {
	ModelUsed string
	Search    string
	SortBy    string // created_at | updated_at | word_count
	SortOrder string // asc | desc
	Limit     int
	Offset    int
}

var sortableFields = map[string]bool{"created_at": true, "updated_at": true, "word_count": true}

// Validate checks all fields and collects all errors.
func (i ListNotesInput) Validate() error {
	var errs []domain.FieldError

	if i.SortBy != "" && !sortableFields[i.SortBy] {
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "must be created_at, updated_at, or word_count"})
	}
	if i.SortOrder != "" && i.SortOrder != domain.SortAsc && i.SortOrder != domain.SortDesc {
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must be asc or desc"})
	}
	if i.Limit < 0 || i.Limit > domain.MaxPageLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListNotesInput) filter() domain.NoteFilter {
	limit := i.Limit
	if limit == 0 {
		limit = domain.DefaultPageLimit
	}
	return domain.NoteFilter{
		ModelUsed: strings.TrimSpace(i.ModelUsed),
		Search:    strings.TrimSpace(i.Search),
		SortBy:    i.SortBy,
		SortOrder: i.SortOrder,
		Limit:     limit,
		Offset:    i.Offset,
	}
}

// UpdateNoteInput holds the parameters for editing a note.
type UpdateNoteInput struct {
	NoteID uuid.UUID
	domain.NoteUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Content == nil && i.Summary == nil && i.KeyPoints == nil && i.References == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RateNoteInput holds the parameters for rating a note.
type RateNoteInput struct {
	NoteID uuid.UUID
	Rating int
}

// Validate checks all fields and collects all errors.
func (i RateNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Rating < MinRating || i.Rating > MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
