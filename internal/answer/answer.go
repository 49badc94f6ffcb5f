// Package answer extracts labeled fields from free-text model responses.
// Extraction never fails: a missing label yields a fixed fallback string, so
// a sloppy response degrades a single field instead of the whole operation.
package answer

import (
	"regexp"
	"strings"
)

// Label identifies the primary field of a response shape.
type Label string

const (
	LabelAnswer     Label = "Answer"
	LabelEvaluation Label = "Evaluation"
)

// Fallbacks used when a label is absent from the response.
const (
	FallbackAnswer        = "Could not extract answer."
	FallbackEvaluation    = "No evaluation provided."
	FallbackJustification = "No justification provided."
)

// Parsed holds the extracted primary field and justification.
type Parsed struct {
	Primary       string
	Justification string
}

var (
	answerRe        = regexp.MustCompile(`(?i)Answer:\s*([\s\S]*?)(?:\nJustification:|$)`)
	evaluationRe    = regexp.MustCompile(`(?i)Evaluation:\s*([\s\S]*?)(?:\nJustification:|$)`)
	justificationRe = regexp.MustCompile(`(?i)Justification:\s*([\s\S]*)`)
)

// Parse extracts the labeled primary field and the justification from text.
func Parse(text string, label Label) Parsed {
	primaryRe, fallback := answerRe, FallbackAnswer
	if label == LabelEvaluation {
		primaryRe, fallback = evaluationRe, FallbackEvaluation
	}

	out := Parsed{
		Primary:       extract(primaryRe, text, fallback),
		Justification: extract(justificationRe, text, FallbackJustification),
	}
	return out
}

func extract(re *regexp.Regexp, text, fallback string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}
	field := strings.TrimSpace(m[1])
	if field == "" {
		return fallback
	}
	return field
}
