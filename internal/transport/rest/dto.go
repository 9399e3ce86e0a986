package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type subjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toSubjectResponse(s domain.Subject) subjectResponse {
	return subjectResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Color:       s.Color,
		CreatedAt:   s.CreatedAt,
	}
}

type topicResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SubjectID   *uuid.UUID `json:"subjectId"`
	SubjectName *string    `json:"subjectName"`
	Difficulty  string     `json:"difficulty"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toTopicResponse(t domain.Topic) topicResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return topicResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		SubjectID:   t.SubjectID,
		SubjectName: t.SubjectName,
		Difficulty:  t.Difficulty.String(),
		Status:      t.Status.String(),
		Tags:        tags,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type topicStatsResponse struct {
	Total        int            `json:"total"`
	Completed    int            `json:"completed"`
	Pending      int            `json:"pending"`
	Processing   int            `json:"processing"`
	Failed       int            `json:"failed"`
	ByDifficulty map[string]int `json:"byDifficulty"`
}

func toTopicStatsResponse(s *domain.TopicStats) topicStatsResponse {
	byDifficulty := make(map[string]int, len(s.ByDifficulty))
	for d, n := range s.ByDifficulty {
		byDifficulty[d.String()] = n
	}
	return topicStatsResponse{
		Total:        s.Total,
		Completed:    s.Completed,
		Pending:      s.Pending,
		Processing:   s.Processing,
		Failed:       s.Failed,
		ByDifficulty: byDifficulty,
	}
}

type noteResponse struct {
	ID                    uuid.UUID `json:"id"`
	TopicID               uuid.UUID `json:"topicId"`
	TopicTitle            string    `json:"topicTitle"`
	Content               string    `json:"content"`
	Summary               string    `json:"summary"`
	KeyPoints             []string  `json:"keyPoints"`
	References            []string  `json:"references"`
	WordCount             int       `json:"wordCount"`
	ReadingTimeMinutes    int       `json:"readingTimeMinutes"`
	ModelUsed             string    `json:"modelUsed"`
	GenerationTimeSeconds float64   `json:"generationTimeSeconds"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func toNoteResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:                    n.ID,
		TopicID:               n.TopicID,
		TopicTitle:            n.TopicTitle,
		Content:               n.Content,
		Summary:               n.Summary,
		KeyPoints:             orEmpty(n.KeyPoints),
		References:            orEmpty(n.References),
		WordCount:             n.WordCount,
		ReadingTimeMinutes:    n.ReadingTimeMinutes,
		ModelUsed:             n.ModelUsed,
		GenerationTimeSeconds: n.GenerationTimeSeconds,
		CreatedAt:             n.CreatedAt,
		UpdatedAt:             n.UpdatedAt,
	}
}

type analyticsResponse struct {
	ViewsCount  int        `json:"viewsCount"`
	SharesCount int        `json:"sharesCount"`
	UserRating  *int       `json:"userRating"`
	LastViewed  *time.Time `json:"lastViewed"`
}

func toAnalyticsResponse(a *domain.NoteAnalytics) *analyticsResponse {
	if a == nil {
		return nil
	}
	return &analyticsResponse{
		ViewsCount:  a.ViewsCount,
		SharesCount: a.SharesCount,
		UserRating:  a.UserRating,
		LastViewed:  a.LastViewed,
	}
}

type noteDetailResponse struct {
	noteResponse
	Analytics *analyticsResponse `json:"analytics"`
}

type preferenceResponse struct {
	PreferredDifficulty string    `json:"preferredDifficulty"`
	PreferredStyle      string    `json:"preferredStyle"`
	IncludeExamples     bool      `json:"includeExamples"`
	IncludeSummary      bool      `json:"includeSummary"`
	IncludeKeyPoints    bool      `json:"includeKeyPoints"`
	MaxWordCount        int       `json:"maxWordCount"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toPreferenceResponse(p *domain.Preference) preferenceResponse {
	return preferenceResponse{
		PreferredDifficulty: p.PreferredDifficulty.String(),
		PreferredStyle:      p.PreferredStyle.String(),
		IncludeExamples:     p.IncludeExamples,
		IncludeSummary:      p.IncludeSummary,
		IncludeKeyPoints:    p.IncludeKeyPoints,
		MaxWordCount:        p.MaxWordCount,
		UpdatedAt:           p.UpdatedAt,
	}
}

type templateResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Template    string    `json:"template"`
	IsActive    bool      `json:"isActive"`
}

func toTemplateResponse(t domain.Template) templateResponse {
	return templateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Type:        t.Type.String(),
		Description: t.Description,
		Template:    t.Body,
		IsActive:    t.IsActive,
	}
}

type callLogResponse struct {
	ID                  uuid.UUID  `json:"id"`
	TopicID             *uuid.UUID `json:"topicId"`
	Prompt              string     `json:"prompt"`
	Response            string     `json:"response"`
	Status              string     `json:"status"`
	ModelUsed           string     `json:"modelUsed"`
	ResponseTimeSeconds float64    `json:"responseTimeSeconds"`
	ErrorMessage        string     `json:"errorMessage,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func toCallLogResponse(e domain.CallLogEntry) callLogResponse {
	return callLogResponse{
		ID:                  e.ID,
		TopicID:             e.TopicID,
		Prompt:              e.Prompt,
		Response:            e.RawResponse,
		Status:              e.Status.String(),
		ModelUsed:           e.ModelUsed,
		ResponseTimeSeconds: e.ResponseTimeSeconds,
		ErrorMessage:        e.ErrorMessage,
		CreatedAt:           e.CreatedAt,
	}
}

type callLogStatsResponse struct {
	TotalRequests       int            `json:"totalRequests"`
	SuccessfulRequests  int            `json:"successfulRequests"`
	FailedRequests      int            `json:"failedRequests"`
	AverageResponseTime float64        `json:"averageResponseTime"`
	ModelUsage          map[string]int `json:"modelUsage"`
}

type modelStatusResponse struct {
	Status     string `json:"status"`
	Model      string `json:"model"`
	APIWorking bool   `json:"apiWorking"`
	Error      string `json:"error,omitempty"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
