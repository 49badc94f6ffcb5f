package session

import "strings"

// Severity is the display class of a verdict. The verdict itself is free
// text from the model; classification is substring-based and display-only.
type Severity int

const (
	SeverityNeutral Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityFailure
)

// String returns a short label suitable for terminal output.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityFailure:
		return "failure"
	default:
		return "info"
	}
}

// Classify maps a verdict onto a severity. Most specific match first:
// "partially correct" must win over bare "correct".
func Classify(verdict string) Severity {
	v := strings.ToLower(verdict)
	switch {
	case strings.Contains(v, "partially correct"):
		return SeverityWarning
	case strings.Contains(v, "incorrect"),
		strings.Contains(v, "no answer"),
		strings.Contains(v, "error"):
		return SeverityFailure
	case strings.Contains(v, "correct"):
		return SeveritySuccess
	default:
		return SeverityNeutral
	}
}
