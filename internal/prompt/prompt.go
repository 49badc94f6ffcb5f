// Package prompt renders the instruction strings sent to the language model.
// Builders are pure functions over a bounded prefix of the document text, so
// prompt size stays capped regardless of document length.
package prompt

import "fmt"

// MaxDocumentChars bounds how much document text any prompt carries. Content
// beyond this prefix is invisible to every downstream operation.
const MaxDocumentChars = 8000

// Truncate returns the leading MaxDocumentChars characters of text. Counting
// is by rune, never by byte, so multibyte text keeps its full prefix and the
// cut never lands inside a UTF-8 sequence.
func Truncate(text string) string {
	if len(text) <= MaxDocumentChars {
		return text
	}
	runes := []rune(text)
	if len(runes) <= MaxDocumentChars {
		return text
	}
	return string(runes[:MaxDocumentChars])
}

// Summarize asks for a bounded summary focused on the main points.
func Summarize(docText string) string {
	return fmt.Sprintf(`Summarize the following document content in no more than 150 words. Focus on the main points and key takeaways.
Document Content:
%s`, Truncate(docText))
}

// Ask requests an answer plus a justification citing the document, in a
// two-line labeled format the response parser understands.
func Ask(docText, question string) string {
	return fmt.Sprintf(`Based on the following document content, answer the question accurately and concisely.
After the answer, provide a brief justification from the document, citing the relevant section or paragraph if possible.
Format your response as:
Answer: [Your Answer]
Justification: [Your Justification from the document, e.g., "This is supported by paragraph 3 of section 1..."]

Document Content (excerpt):
%s

Question: %s`, Truncate(docText), question)
}

// GenerateQuestions requests three inference questions as a JSON object with
// a "questions" array. The example keeps weaker models on format.
func GenerateQuestions(docText string) string {
	return fmt.Sprintf(`Generate three (3) distinct, logic-based or comprehension-focused questions derived from the following document.
The questions should require understanding and inference, not just direct recall.
Provide the questions in a JSON array format, where each object has a "question" key.
Example: {"questions": [{"question": "What is the primary implication of X on Y?"}, {"question": "How does A relate to B in the context of C?"}, {"question": "Based on the text, what is a potential consequence of Z?"}]}

Document Content (excerpt):
%s`, Truncate(docText))
}

// Evaluate requests a correctness verdict and justification for a user's
// answer, in the two-line labeled format.
func Evaluate(docText, question, userAnswer string) string {
	return fmt.Sprintf(`Evaluate the following user's answer to the question based on the provided document content.
Provide feedback on correctness (e.g., "Correct", "Partially Correct", "Incorrect") and a brief justification from the document.
Format your response as:
Evaluation: [Feedback on correctness]
Justification: [Your justification from the document, e.g., "This is supported by paragraph X of section Y..."]

Document Content (excerpt):
%s

Question: %s
User's Answer: %s`, Truncate(docText), question, userAnswer)
}

// QuestionsSchema describes the JSON object expected from question
// generation, passed to the LLM client to request structured output.
func QuestionsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
					},
					"required":             []string{"question"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	}
}
