// Package session models the interactive client's state machine explicitly:
// no document, document ready, then one of two interaction modes. Transition
// methods reset the state the original UI cleared with ad hoc flags.
package session

import (
	"context"
	"strings"

	"doc-assistant/internal/assistant"
)

// Mode is the active interaction mode once a document is ready.
type Mode int

const (
	ModeNone Mode = iota
	ModeAsk
	ModeChallenge
)

// Local results used when an answer is blank; no backend call is made.
const (
	VerdictNoAnswer        = "No answer provided."
	JustificationNoAnswer  = "Please provide an answer to be evaluated."
	VerdictEvaluationError = "Error during evaluation."
)

// Result is one graded challenge answer.
type Result struct {
	Question      string
	UserAnswer    string
	Verdict       string
	Justification string
}

// Session holds per-run client state.
type Session struct {
	FileID    string
	Summary   string
	Mode      Mode
	Questions []assistant.Question
	Answers   []string
	Results   []Result
}

// New returns an empty session (no document).
func New() *Session {
	return &Session{}
}

// HasDocument reports whether an upload has completed.
func (s *Session) HasDocument() bool {
	return s.FileID != ""
}

// SetDocument records a fresh upload and clears all stale interaction state.
func (s *Session) SetDocument(fileID, summary string) {
	s.FileID = fileID
	s.Summary = summary
	s.Mode = ModeNone
	s.Questions = nil
	s.Answers = nil
	s.Results = nil
}

// EnterAsk switches to free-form Q&A, clearing challenge state.
func (s *Session) EnterAsk() {
	s.Mode = ModeAsk
	s.Questions = nil
	s.Answers = nil
	s.Results = nil
}

// EnterChallenge switches to quiz mode, clearing any previous run.
func (s *Session) EnterChallenge() {
	s.Mode = ModeChallenge
	s.Questions = nil
	s.Answers = nil
	s.Results = nil
}

// SetQuestions stores a generated question list with empty answer slots.
func (s *Session) SetQuestions(questions []assistant.Question) {
	s.Questions = questions
	s.Answers = make([]string, len(questions))
	s.Results = nil
}

// SetAnswer records the draft answer for the question at index i.
func (s *Session) SetAnswer(i int, text string) {
	if i >= 0 && i < len(s.Answers) {
		s.Answers[i] = text
	}
}

// EvaluateFunc grades one answer, typically by calling the backend.
type EvaluateFunc func(ctx context.Context, question, userAnswer string) (assistant.Evaluation, error)

// Submit grades every question in order. Blank answers short-circuit to a
// fixed local verdict without invoking eval, and one failed evaluation is
// recorded as an error result without aborting the rest.
func (s *Session) Submit(ctx context.Context, eval EvaluateFunc) []Result {
	s.Results = nil
	for i, q := range s.Questions {
		userAnswer := ""
		if i < len(s.Answers) {
			userAnswer = s.Answers[i]
		}

		if strings.TrimSpace(userAnswer) == "" {
			s.Results = append(s.Results, Result{
				Question:      q.Question,
				UserAnswer:    userAnswer,
				Verdict:       VerdictNoAnswer,
				Justification: JustificationNoAnswer,
			})
			continue
		}

		res, err := eval(ctx, q.Question, userAnswer)
		if err != nil {
			s.Results = append(s.Results, Result{
				Question:      q.Question,
				UserAnswer:    userAnswer,
				Verdict:       VerdictEvaluationError,
				Justification: err.Error(),
			})
			continue
		}
		s.Results = append(s.Results, Result{
			Question:      q.Question,
			UserAnswer:    userAnswer,
			Verdict:       res.Verdict,
			Justification: res.Justification,
		})
	}
	return s.Results
}
