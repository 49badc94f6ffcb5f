// Package client is a typed HTTP client for the document assistant backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"doc-assistant/internal/assistant"
)

// APIError carries the backend's HTTP status and detail string.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// Client talks to one backend instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL. The long timeout accommodates
// LLM round trips.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// UploadResult is the response of a successful upload.
type UploadResult struct {
	Message string `json:"message"`
	FileID  string `json:"file_id"`
}

// Upload posts file bytes as a multipart form.
func (c *Client) Upload(ctx context.Context, filename, contentType string, data []byte) (UploadResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(h)
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := part.Write(data); err != nil {
		return UploadResult{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload_document", body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out UploadResult
	if err := c.do(req, &out); err != nil {
		return UploadResult{}, err
	}
	return out, nil
}

// Summarize fetches the document summary.
func (c *Client) Summarize(ctx context.Context, fileID string) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	err := c.postJSON(ctx, "/summarize", map[string]string{"file_id": fileID}, &out)
	return out.Summary, err
}

// Ask sends a free-form question about the document.
func (c *Client) Ask(ctx context.Context, fileID, question string) (assistant.Answer, error) {
	var out assistant.Answer
	err := c.postJSON(ctx, "/ask_question", map[string]string{
		"file_id":  fileID,
		"question": question,
	}, &out)
	return out, err
}

// GenerateQuestions requests quiz questions for the document.
func (c *Client) GenerateQuestions(ctx context.Context, fileID string) ([]assistant.Question, error) {
	var out struct {
		Questions []assistant.Question `json:"questions"`
	}
	err := c.postJSON(ctx, "/generate_questions", map[string]string{"file_id": fileID}, &out)
	return out.Questions, err
}

// EvaluateAnswer submits one user answer for grading.
func (c *Client) EvaluateAnswer(ctx context.Context, fileID, question, userAnswer string) (assistant.Evaluation, error) {
	var out assistant.Evaluation
	err := c.postJSON(ctx, "/evaluate_answer", map[string]string{
		"file_id":     fileID,
		"question":    question,
		"user_answer": userAnswer,
	}, &out)
	return out, err
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
