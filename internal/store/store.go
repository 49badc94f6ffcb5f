package store

import (
	"context"
	"errors"
	"time"
)

// ErrDocumentNotFound is returned by Get for ids never written.
var ErrDocumentNotFound = errors.New("document not found")

// Document is the unit of storage: extracted text keyed by id.
type Document struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the document persistence contract. Put upserts: writing an
// existing id replaces the prior document.
type Store interface {
	Put(ctx context.Context, doc Document) error
	Get(ctx context.Context, id string) (Document, error)
}
