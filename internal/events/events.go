package events

import (
	"context"
	"time"
)

// Subjects for document lifecycle notifications.
const (
	SubjectDocumentUploaded   = "documents.uploaded"
	SubjectDocumentSummarized = "documents.summarized"
)

// DocumentEvent is the payload published on document lifecycle subjects.
type DocumentEvent struct {
	DocumentID string    `json:"document_id"`
	Filename   string    `json:"filename,omitempty"`
	At         time.Time `json:"at"`
}

// Publisher emits fire-and-forget notifications. Implementations must not
// block request handling: publish failures are for the implementation to
// log, never to surface.
type Publisher interface {
	Publish(ctx context.Context, subject string, event DocumentEvent)
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, DocumentEvent) {}
