package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	short := "short text"
	if got := Truncate(short); got != short {
		t.Errorf("short text should pass through, got %q", got)
	}

	long := strings.Repeat("a", MaxDocumentChars+500)
	got := Truncate(long)
	if len(got) != MaxDocumentChars {
		t.Errorf("expected %d chars, got %d", MaxDocumentChars, len(got))
	}
}

func TestTruncateCountsRunesNotBytes(t *testing.T) {
	// A multibyte document: every é is two bytes but one character.
	text := "x" + strings.Repeat("é", MaxDocumentChars)
	got := Truncate(text)

	if !utf8.ValidString(got) {
		t.Error("truncated text is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != MaxDocumentChars {
		t.Errorf("expected %d characters, got %d", MaxDocumentChars, n)
	}
	if !strings.HasPrefix(text, got) {
		t.Error("truncation must be a prefix of the input")
	}
}

func TestPromptsBoundDocumentContent(t *testing.T) {
	long := strings.Repeat("x", MaxDocumentChars*2)
	builders := map[string]func(doc string) string{
		"summarize": func(doc string) string { return Summarize(doc) },
		"ask":       func(doc string) string { return Ask(doc, "q?") },
		"questions": func(doc string) string { return GenerateQuestions(doc) },
		"evaluate":  func(doc string) string { return Evaluate(doc, "q?", "a") },
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			// Rendering with an empty document isolates the template overhead.
			overhead := len(build(""))
			p := build(long)
			if got := len(p) - overhead; got != MaxDocumentChars {
				t.Errorf("prompt carries %d chars of document content, want %d", got, MaxDocumentChars)
			}
		})
	}
}

func TestAskIncludesQuestion(t *testing.T) {
	p := Ask("document body", "What is the main point?")
	if !strings.Contains(p, "document body") {
		t.Error("prompt missing document text")
	}
	if !strings.Contains(p, "Question: What is the main point?") {
		t.Error("prompt missing question")
	}
	if !strings.Contains(p, "Answer:") || !strings.Contains(p, "Justification:") {
		t.Error("prompt missing mandated output format")
	}
}

func TestEvaluateIncludesUserAnswer(t *testing.T) {
	p := Evaluate("doc", "Why?", "Because.")
	if !strings.Contains(p, "User's Answer: Because.") {
		t.Error("prompt missing user answer")
	}
	if !strings.Contains(p, "Evaluation:") {
		t.Error("prompt missing mandated output format")
	}
}

func TestGenerateQuestionsRequestsJSON(t *testing.T) {
	p := GenerateQuestions("doc")
	if !strings.Contains(p, `"questions"`) {
		t.Error("prompt missing JSON example")
	}
	if !strings.Contains(p, "three (3)") {
		t.Error("prompt missing question count")
	}
}

func TestQuestionsSchemaShape(t *testing.T) {
	schema := QuestionsSchema()
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("schema missing properties")
	}
	if _, ok := props["questions"]; !ok {
		t.Error("schema missing questions property")
	}
	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "questions" {
		t.Errorf("expected required [questions], got %v", schema["required"])
	}
}
