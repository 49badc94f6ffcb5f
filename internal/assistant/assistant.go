// Package assistant implements the document operations: upload, summarize,
// free-form Q&A, quiz question generation, and answer evaluation. Every read
// operation follows the same chain: store lookup, prompt render, one LLM
// round trip, response shaping.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"doc-assistant/internal/answer"
	"doc-assistant/internal/events"
	"doc-assistant/internal/extract"
	"doc-assistant/internal/llm"
	"doc-assistant/internal/prompt"
	"doc-assistant/internal/store"
)

// Question is one generated quiz question.
type Question struct {
	Question string `json:"question"`
}

// Answer pairs an answer with its justification from the document.
type Answer struct {
	Answer        string `json:"answer"`
	Justification string `json:"justification"`
}

// Evaluation pairs a correctness verdict with its justification. The verdict
// is free text ("Correct", "Partially Correct", "Incorrect", ...); clients
// classify it for display, the backend does not enforce an enum.
type Evaluation struct {
	Verdict       string `json:"evaluation"`
	Justification string `json:"justification"`
}

// Service wires the store, LLM client and event publisher together.
type Service struct {
	store  store.Store
	llm    llm.Client
	events events.Publisher
	log    *slog.Logger
}

// New builds a Service. A nil publisher defaults to a no-op.
func New(st store.Store, cli llm.Client, pub events.Publisher, log *slog.Logger) *Service {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &Service{store: st, llm: cli, events: pub, log: log}
}

// Upload extracts text from the file bytes and stores it under a fresh id.
func (s *Service) Upload(ctx context.Context, filename, contentType string, data []byte) (store.Document, error) {
	text, err := extract.Extract(data, extract.ResolveContentType(contentType, filename))
	if err != nil {
		return store.Document{}, err
	}

	doc := store.Document{
		ID:        uuid.NewString(),
		Filename:  filename,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Put(ctx, doc); err != nil {
		return store.Document{}, fmt.Errorf("failed to store document: %w", err)
	}

	s.events.Publish(ctx, events.SubjectDocumentUploaded, events.DocumentEvent{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		At:         doc.CreatedAt,
	})
	s.log.Info("document stored", "document_id", doc.ID, "filename", filename, "chars", len(text))
	return doc, nil
}

// Summarize returns a short summary of the document's truncated prefix.
func (s *Service) Summarize(ctx context.Context, id string) (string, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	summary, err := s.llm.Complete(ctx, prompt.Summarize(doc.Text))
	if err != nil {
		return "", err
	}
	s.events.Publish(ctx, events.SubjectDocumentSummarized, events.DocumentEvent{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		At:         time.Now().UTC(),
	})
	return summary, nil
}

// Ask answers a free-form question against the document.
func (s *Service) Ask(ctx context.Context, id, question string) (Answer, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return Answer{}, err
	}
	text, err := s.llm.Complete(ctx, prompt.Ask(doc.Text, question))
	if err != nil {
		return Answer{}, err
	}
	parsed := answer.Parse(text, answer.LabelAnswer)
	return Answer{Answer: parsed.Primary, Justification: parsed.Justification}, nil
}

// GenerateQuestions asks the model for three inference questions in JSON mode
// and validates the parsed shape defensively. Three are requested but the
// count is not enforced.
func (s *Service) GenerateQuestions(ctx context.Context, id string) ([]Question, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	raw, err := s.llm.CompleteJSON(ctx, prompt.GenerateQuestions(doc.Text), llm.Schema{
		Name:       "questions",
		Definition: prompt.QuestionsSchema(),
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrMalformedOutput, err)
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("%w: missing questions array", llm.ErrMalformedOutput)
	}
	for _, q := range payload.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: blank question text", llm.ErrMalformedOutput)
		}
	}
	return payload.Questions, nil
}

// EvaluateAnswer grades a user's answer to a question against the document.
func (s *Service) EvaluateAnswer(ctx context.Context, id, question, userAnswer string) (Evaluation, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return Evaluation{}, err
	}
	text, err := s.llm.Complete(ctx, prompt.Evaluate(doc.Text, question, userAnswer))
	if err != nil {
		return Evaluation{}, err
	}
	parsed := answer.Parse(text, answer.LabelEvaluation)
	return Evaluation{Verdict: parsed.Primary, Justification: parsed.Justification}, nil
}
