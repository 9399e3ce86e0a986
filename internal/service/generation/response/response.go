// Package response turns free-form model output into note sections.
//
// The model is asked to answer in the form
//
//	**CONTENT:** ... **SUMMARY:** ... **KEY POINTS:** - a - b **REFERENCES:** - x
//
// and Parse scans for those labels. Output that ignores the format is kept
// whole as content.
package response

import (
	"strings"
)

// Section labels, matched literally.
const (
	LabelContent    = "CONTENT:"
	LabelSummary    = "SUMMARY:"
	LabelKeyPoints  = "KEY POINTS:"
	LabelReferences = "REFERENCES:"
)

const (
	headerMarker = "**"
	dashMarker   = "-"
)

// Sections is the structured form of a model reply.
// KeyPoints and References are never nil.
type Sections struct {
	Content    string
	Summary    string
	KeyPoints  []string
	References []string
}

type section int

const (
	sectionNone section = iota
	sectionContent
	sectionSummary
	sectionKeyPoints
	sectionReferences
)

// labels is checked in order; the first label contained in a segment wins.
var labels = []struct {
	label   string
	section section
}{
	{LabelContent, sectionContent},
	{LabelSummary, sectionSummary},
	{LabelKeyPoints, sectionKeyPoints},
	{LabelReferences, sectionReferences},
}

// Parse splits raw on bold markers and fills sections by label. It never
// fails: when no content is found, or scanning breaks, the whole raw text
// becomes Content.
func Parse(raw string) (out Sections) {
	defer func() {
		if recover() != nil {
			out = fallback(raw)
		}
	}()

	s := scanner{out: Sections{KeyPoints: []string{}, References: []string{}}}
	for _, seg := range strings.Split(raw, headerMarker) {
		s.feed(strings.TrimSpace(seg))
	}

	if s.out.Content == "" {
		s.out.Content = raw
	}
	return s.out
}

func fallback(raw string) Sections {
	return Sections{Content: raw, KeyPoints: []string{}, References: []string{}}
}

// scanner holds the section cursor while segments are fed in order.
type scanner struct {
	cur section
	out Sections
}

func (s *scanner) feed(seg string) {
	if seg == "" {
		return
	}

	for _, l := range labels {
		if !strings.Contains(seg, l.label) {
			continue
		}
		s.cur = l.section
		rest := strings.TrimSpace(strings.Replace(seg, l.label, "", 1))
		switch l.section {
		case sectionContent:
			s.out.Content = rest
		case sectionSummary:
			s.out.Summary = rest
		case sectionKeyPoints:
			s.out.KeyPoints = dashLines(rest)
		case sectionReferences:
			s.out.References = dashLines(rest)
		}
		return
	}

	switch s.cur {
	case sectionContent:
		s.out.Content = joinText(s.out.Content, seg)
	case sectionSummary:
		s.out.Summary = joinText(s.out.Summary, seg)
	case sectionKeyPoints:
		if strings.HasPrefix(seg, dashMarker) {
			s.out.KeyPoints = append(s.out.KeyPoints, dashLines(seg)...)
		}
	case sectionReferences:
		if strings.HasPrefix(seg, dashMarker) {
			s.out.References = append(s.out.References, dashLines(seg)...)
		}
	}
}

func joinText(acc, seg string) string {
	if acc == "" {
		return seg
	}
	return acc + " " + seg
}

// dashLines returns the "- item" lines of text with the marker stripped.
// Lines without the marker are dropped.
func dashLines(text string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), dashMarker) {
			continue
		}
		item := strings.TrimSpace(strings.Trim(line, "- "))
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
