package domain

import (
	"strings"
)

// WordsPerMinute is the reading speed used for reading time estimates.
const WordsPerMinute = 200

// NormalizeTag prepares a tag for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.Join(strings.Fields(tag), " "))
}

// NormalizeTags normalizes every tag, drops empty ones and removes duplicates
// while keeping first-seen order. Returns an empty (non-nil) slice.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := NormalizeTag(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// CountWords returns the number of whitespace-delimited tokens in content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// ReadingTimeMinutes estimates reading time for a word count, never less than one minute.
func ReadingTimeMinutes(wordCount int) int {
	return max(1, wordCount/WordsPerMinute)
}

// ApplyDerivedMetrics recomputes WordCount and ReadingTimeMinutes from Content.
func (n *Note) ApplyDerivedMetrics() {
	n.WordCount = CountWords(n.Content)
	n.ReadingTimeMinutes = ReadingTimeMinutes(n.WordCount)
}
