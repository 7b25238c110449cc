// Package ports defines interfaces for external dependencies. Usecases depend
// on these abstractions; adapters implement them.
package ports

import (
	"context"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
)

// DocumentStore holds ingested documents in insertion order. Append-only:
// there is no removal operation. Implementations must serialize concurrent
// mutation; All returns a snapshot that never aliases live state.
type DocumentStore interface {
	// Append adds a document to the end of the sequence.
	Append(ctx context.Context, doc entities.Document) error

	// All returns every stored document in insertion order.
	All(ctx context.Context) ([]entities.Document, error)
}

// TextExtractor turns a file on disk into plain text.
// An unsupported file type yields an empty string, not an error.
type TextExtractor interface {
	// Extract reads the file at path and returns its text content.
	Extract(ctx context.Context, path string) (string, error)

	// Extensions returns file extensions this extractor handles.
	Extensions() []string
}

// InferenceGateway executes generation on the external model runner.
// The conversation is passed through with content parts intact so that
// audio/video parts reach the runner's own processor untouched.
type InferenceGateway interface {
	Generate(ctx context.Context, conv entities.Conversation) (*entities.GenerationResult, error)
}

// FileWatcher monitors a directory for document changes.
type FileWatcher interface {
	// Watch starts monitoring the directory and emits events until ctx ends.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// FileEvent is a single file system change.
type FileEvent struct {
	Path      string
	Operation FileOperation
}

// FileOperation is the type of file change.
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
)
