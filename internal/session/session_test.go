package session

import (
	"context"
	"errors"
	"testing"

	"doc-assistant/internal/assistant"
)

func TestSetDocumentResetsState(t *testing.T) {
	s := New()
	if s.HasDocument() {
		t.Error("fresh session should have no document")
	}

	s.SetDocument("id-1", "summary one")
	s.EnterChallenge()
	s.SetQuestions([]assistant.Question{{Question: "Q1"}})
	s.SetAnswer(0, "draft")

	s.SetDocument("id-2", "summary two")
	if s.Mode != ModeNone {
		t.Error("new upload should reset mode")
	}
	if s.Questions != nil || s.Answers != nil || s.Results != nil {
		t.Error("new upload should clear quiz state")
	}
	if s.FileID != "id-2" || s.Summary != "summary two" {
		t.Errorf("unexpected document state: %q %q", s.FileID, s.Summary)
	}
}

func TestModeSwitchClearsOtherMode(t *testing.T) {
	s := New()
	s.SetDocument("id-1", "")
	s.EnterChallenge()
	s.SetQuestions([]assistant.Question{{Question: "Q1"}, {Question: "Q2"}})
	s.SetAnswer(1, "answer")

	s.EnterAsk()
	if s.Mode != ModeAsk {
		t.Errorf("expected ModeAsk, got %v", s.Mode)
	}
	if len(s.Questions) != 0 || len(s.Answers) != 0 {
		t.Error("entering ask mode should clear challenge state")
	}
}

func TestSubmitSkipsBlankAnswers(t *testing.T) {
	s := New()
	s.SetDocument("id-1", "")
	s.EnterChallenge()
	s.SetQuestions([]assistant.Question{
		{Question: "Q1"},
		{Question: "Q2"},
		{Question: "Q3"},
	})
	s.SetAnswer(1, "   ")
	s.SetAnswer(2, "a real answer")

	var evaluated []string
	results := s.Submit(context.Background(), func(_ context.Context, question, userAnswer string) (assistant.Evaluation, error) {
		evaluated = append(evaluated, question)
		return assistant.Evaluation{Verdict: "Correct", Justification: "ok"}, nil
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if len(evaluated) != 1 || evaluated[0] != "Q3" {
		t.Errorf("only the answered question should reach the backend, got %v", evaluated)
	}
	for _, i := range []int{0, 1} {
		if results[i].Verdict != VerdictNoAnswer {
			t.Errorf("result %d: expected %q, got %q", i, VerdictNoAnswer, results[i].Verdict)
		}
		if results[i].Justification != JustificationNoAnswer {
			t.Errorf("result %d: unexpected justification %q", i, results[i].Justification)
		}
	}
	if results[2].Verdict != "Correct" {
		t.Errorf("expected Correct, got %q", results[2].Verdict)
	}
}

func TestSubmitIsolatesFailures(t *testing.T) {
	s := New()
	s.SetDocument("id-1", "")
	s.EnterChallenge()
	s.SetQuestions([]assistant.Question{{Question: "Q1"}, {Question: "Q2"}})
	s.SetAnswer(0, "first")
	s.SetAnswer(1, "second")

	results := s.Submit(context.Background(), func(_ context.Context, question, _ string) (assistant.Evaluation, error) {
		if question == "Q1" {
			return assistant.Evaluation{}, errors.New("backend down")
		}
		return assistant.Evaluation{Verdict: "Incorrect", Justification: "see section 1"}, nil
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Verdict != VerdictEvaluationError {
		t.Errorf("expected error verdict, got %q", results[0].Verdict)
	}
	if results[1].Verdict != "Incorrect" {
		t.Errorf("one failure should not abort the rest, got %q", results[1].Verdict)
	}
}

func TestSubmitOrderMatchesQuestions(t *testing.T) {
	s := New()
	s.SetDocument("id-1", "")
	s.EnterChallenge()
	s.SetQuestions([]assistant.Question{{Question: "A"}, {Question: "B"}, {Question: "C"}})
	for i := range s.Questions {
		s.SetAnswer(i, "x")
	}

	var order []string
	s.Submit(context.Background(), func(_ context.Context, question, _ string) (assistant.Evaluation, error) {
		order = append(order, question)
		return assistant.Evaluation{Verdict: "Correct"}, nil
	})

	want := []string{"A", "B", "C"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected evaluation order %v, got %v", want, order)
		}
	}
}
