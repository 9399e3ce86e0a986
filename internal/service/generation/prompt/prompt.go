// Package prompt fills prompt template placeholders from a topic and the
// owner's preferences.
package prompt

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// Placeholders recognised in template bodies.
const (
	PlaceholderTitle       = "{topic_title}"
	PlaceholderDescription = "{topic_description}"
	PlaceholderDifficulty  = "{difficulty}"
	PlaceholderSubject     = "{subject}"
	PlaceholderMaxWords    = "{max_words}"
)

// Build substitutes every known placeholder in tmpl.Body. pref may be nil.
// Unknown {markers} are left as they are.
func Build(tmpl domain.Template, topic domain.Topic, pref *domain.Preference) string {
	subject := domain.DefaultSubjectName
	if topic.SubjectName != nil && *topic.SubjectName != "" {
		subject = *topic.SubjectName
	}

	maxWords := domain.DefaultMaxWordCount
	if pref != nil && pref.MaxWordCount > 0 {
		maxWords = pref.MaxWordCount
	}

	r := strings.NewReplacer(
		PlaceholderTitle, topic.Title,
		PlaceholderDescription, topic.Description,
		PlaceholderDifficulty, topic.Difficulty.String(),
		PlaceholderSubject, subject,
		PlaceholderMaxWords, strconv.Itoa(maxWords),
	)
	return r.Replace(tmpl.Body)
}
