package template

import "github.com/heartmarshall/studynotes-backend/internal/domain"

// Built-in academic template, persisted on first use when no active academic
// template exists.
const (
	DefaultName        = "Default Academic Template"
	DefaultDescription = "Default academic study notes template"
)

// DefaultBody uses the five placeholders understood by the prompt builder and
// asks for the four-section reply format the response parser reads.
const DefaultBody = `You are an expert educator and study guide creator. Create comprehensive study notes for the following topic:

Topic: {topic_title}
Description: {topic_description}
Difficulty Level: {difficulty}
Subject: {subject}

Please provide:

1. Comprehensive Content: detailed explanation of the topic with clear sections and subsections
2. Summary: a concise summary of the main points (2-3 paragraphs)
3. Key Points: a list of 5-10 key points to remember
4. References: a list of reliable sources and references

Requirements:
- Use clear, educational language appropriate for {difficulty} level
- Include examples where helpful
- Structure the content logically
- Keep the total content around {max_words} words
- Make it engaging and easy to understand

Format your response as:

**CONTENT:**
[Your detailed content here]

**SUMMARY:**
[Your summary here]

**KEY POINTS:**
- [Key point 1]
- [Key point 2]
- [Key point 3]
...

**REFERENCES:**
- [Reference 1]
- [Reference 2]
...
`

// Default returns an unsaved copy of the built-in academic template.
func Default() domain.Template {
	return domain.Template{
		Name:        DefaultName,
		Type:        domain.TemplateTypeAcademic,
		Body:        DefaultBody,
		Description: DefaultDescription,
		IsActive:    true,
	}
}
