package preference

import "github.com/heartmarshall/studynotes-backend/internal/domain"

// UpdatePreferencesInput holds the optional fields to change.
type UpdatePreferencesInput struct {
	domain.PreferenceUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdatePreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.PreferredDifficulty != nil && !i.PreferredDifficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "preferred_difficulty", Message: "must be beginner, intermediate, or advanced"})
	}
	if i.PreferredStyle != nil && !i.PreferredStyle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "preferred_style", Message: "must be academic, casual, technical, simple, or detailed"})
	}
	if i.MaxWordCount != nil && (*i.MaxWordCount < MinWordCount || *i.MaxWordCount > MaxWordCount) {
		errs = append(errs, domain.FieldError{Field: "max_word_count", Message: "must be between 100 and 10000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdatePreferencesInput) apply(p *domain.Preference) {
	if i.PreferredDifficulty != nil {
		p.PreferredDifficulty = *i.PreferredDifficulty
	}
	if i.PreferredStyle != nil {
		p.PreferredStyle = *i.PreferredStyle
	}
	if i.IncludeExamples != nil {
		p.IncludeExamples = *i.IncludeExamples
	}
	if i.IncludeSummary != nil {
		p.IncludeSummary = *i.IncludeSummary
	}
	if i.IncludeKeyPoints != nil {
		p.IncludeKeyPoints = *i.IncludeKeyPoints
	}
	if i.MaxWordCount != nil {
		p.MaxWordCount = *i.MaxWordCount
	}
}
