package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"doc-assistant/internal/app"
	"doc-assistant/internal/assistant"
	"doc-assistant/internal/extract"
	"doc-assistant/internal/httputil"
	"doc-assistant/internal/store"
)

type documentRequest struct {
	FileID string `json:"file_id" validate:"required,uuid4"`
}

type askRequest struct {
	FileID   string `json:"file_id" validate:"required,uuid4"`
	Question string `json:"question" validate:"required,min=3,max=500"`
}

type evaluateRequest struct {
	FileID     string `json:"file_id" validate:"required,uuid4"`
	Question   string `json:"question" validate:"required"`
	UserAnswer string `json:"user_answer" validate:"required"`
}

func uploadHandler(deps app.Deps, svc *assistant.Service) http.HandlerFunc {
	maxFileSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httputil.Fail(deps.Log, w, "file is required", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read file", err, http.StatusInternalServerError)
			return
		}

		doc, err := svc.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), content)
		if err != nil {
			failOp(deps, w, "failed to process document", err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"message": fmt.Sprintf("File '%s' processed successfully.", header.Filename),
			"file_id": doc.ID,
		})
	}
}

func summarizeHandler(deps app.Deps, svc *assistant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req documentRequest
		if !decode(deps, w, r, &req) {
			return
		}
		summary, err := svc.Summarize(r.Context(), req.FileID)
		if err != nil {
			failOp(deps, w, "failed to generate summary", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"summary": summary})
	}
}

func askHandler(deps app.Deps, svc *assistant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if !decode(deps, w, r, &req) {
			return
		}
		ans, err := svc.Ask(r.Context(), req.FileID, req.Question)
		if err != nil {
			failOp(deps, w, "failed to get answer", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, ans)
	}
}

func generateQuestionsHandler(deps app.Deps, svc *assistant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req documentRequest
		if !decode(deps, w, r, &req) {
			return
		}
		questions, err := svc.GenerateQuestions(r.Context(), req.FileID)
		if err != nil {
			failOp(deps, w, "failed to generate questions", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"questions": questions})
	}
}

func evaluateHandler(deps app.Deps, svc *assistant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decode(deps, w, r, &req) {
			return
		}
		eval, err := svc.EvaluateAnswer(r.Context(), req.FileID, req.Question, req.UserAnswer)
		if err != nil {
			failOp(deps, w, "failed to evaluate answer", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, eval)
	}
}

// decode unmarshals and validates a JSON request body, writing a 400 on
// failure. Returns false when the handler should stop.
func decode(deps app.Deps, w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
		return false
	}
	if err := httputil.Validator.Struct(req); err != nil {
		httputil.ValidationError(deps.Log, w, err)
		return false
	}
	return true
}

// failOp maps operation errors onto HTTP statuses: extraction problems are
// client errors, a missing document is 404, everything else is a 500 with a
// human-readable detail string.
func failOp(deps app.Deps, w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, extract.ErrUnsupportedType), errors.Is(err, extract.ErrNoText):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrDocumentNotFound):
		status = http.StatusNotFound
	}
	httputil.Fail(deps.Log, w, fmt.Sprintf("%s: %v", message, err), err, status)
}
