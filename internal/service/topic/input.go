package topic

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Title       string
	Description string
	SubjectID   *uuid.UUID
	Difficulty  domain.Difficulty // empty = intermediate
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(i.Title)...)
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if i.SubjectID != nil && *i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "invalid"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be beginner, intermediate, or advanced"})
	}
	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the parameters for updating a topic.
type UpdateTopicInput struct {
	TopicID      uuid.UUID
	Title        *string
	Description  *string
	SubjectID    *uuid.UUID
	ClearSubject bool
	Difficulty   *domain.Difficulty
	Tags         []string // nil = don't change; empty = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.SubjectID == nil && !i.ClearSubject &&
		i.Difficulty == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Description != nil && strings.TrimSpace(*i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if i.SubjectID != nil && i.ClearSubject {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "cannot set and clear at once"})
	}
	if i.SubjectID != nil && *i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "invalid"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be beginner, intermediate, or advanced"})
	}
	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTopicsInput holds the filter, sort and paging for listing topics.
type ListTopicsInput struct {
	Status     *domain.TopicStatus
	Difficulty *domain.Difficulty
	SubjectID  *uuid.UUID
	Search     string
	SortBy     string // created_at | updated_at | title
	SortOrder  string // asc | desc
	Limit      int
	Offset     int
}

var sortableFields = map[string]bool{"created_at": true, "updated_at": true, "title": true}

// Validate checks all fields and collects all errors.
func (i ListTopicsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, processing, completed, or failed"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be beginner, intermediate, or advanced"})
	}
	if i.SortBy != "" && !sortableFields[i.SortBy] {
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "must be created_at, updated_at, or title"})
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

func (i ListTopicsInput) filter() domain.TopicFilter {
	limit := i.Limit
	if limit == 0 {
		limit = domain.DefaultPageLimit
	}
	return domain.TopicFilter{
		Status:     i.Status,
		Difficulty: i.Difficulty,
		SubjectID:  i.SubjectID,
		Search:     strings.TrimSpace(i.Search),
		SortBy:     i.SortBy,
		SortOrder:  i.SortOrder,
		Limit:      limit,
		Offset:     i.Offset,
	}
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(domain.NormalizeTag(tag)) > MaxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "each tag max 50 characters"})
			break
		}
	}
	return errs
}
