package domain

// Difficulty is the level a topic's notes are written for.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// TopicStatus tracks note generation for a topic.
// Only the generation service moves a topic between statuses.
type TopicStatus string

const (
	TopicStatusPending    TopicStatus = "pending"
	TopicStatusProcessing TopicStatus = "processing"
	TopicStatusCompleted  TopicStatus = "completed"
	TopicStatusFailed     TopicStatus = "failed"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusPending, TopicStatusProcessing, TopicStatusCompleted, TopicStatusFailed:
		return true
	}
	return false
}

// TemplateType is the writing style of a prompt template.
type TemplateType string

const (
	TemplateTypeAcademic  TemplateType = "academic"
	TemplateTypeCasual    TemplateType = "casual"
	TemplateTypeTechnical TemplateType = "technical"
	TemplateTypeSimple    TemplateType = "simple"
	TemplateTypeDetailed  TemplateType = "detailed"
)

func (t TemplateType) String() string { return string(t) }

func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypeAcademic, TemplateTypeCasual, TemplateTypeTechnical,
		TemplateTypeSimple, TemplateTypeDetailed:
		return true
	}
	return false
}

// CallStatus is the outcome recorded for a model call.
type CallStatus string

const (
	CallStatusSuccess CallStatus = "success"
	CallStatusFailed  CallStatus = "failed"
	CallStatusPending CallStatus = "pending"
)

func (s CallStatus) String() string { return string(s) }

func (s CallStatus) IsValid() bool {
	switch s {
	case CallStatusSuccess, CallStatusFailed, CallStatusPending:
		return true
	}
	return false
}
