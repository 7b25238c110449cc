// Package entities contains core business entities.
// Pure domain objects with no knowledge of storage, HTTP, or the model runner.
package entities

import (
	"errors"
	"strings"
)

// Turn roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PartTypeText is the content-part type carrying plain text. Other part types
// (audio, video, image) are opaque here and pass through to the model runner.
const PartTypeText = "text"

// Document is an ingested text chunk. Immutable after creation; documents are
// never updated or evicted for the lifetime of the process.
type Document struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// ContentPart is a single typed unit of turn content. Only the field matching
// Type is populated; the rest stay empty and are omitted on the wire.
type ContentPart struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
	Video string `json:"video,omitempty"`
	Image string `json:"image,omitempty"`
}

// Turn is one role-tagged entry in a conversation.
type Turn struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// Conversation is an ordered sequence of turns forming a chat-style prompt.
// The last turn is treated as the user's query source.
type Conversation []Turn

// GenerationResult is what the model runner produces for one inference call.
type GenerationResult struct {
	Texts      []string
	TokenCount int
}

// Text joins multi-part generations with single spaces.
func (r *GenerationResult) Text() string {
	return strings.Join(r.Texts, " ")
}

// InferenceResult is the final response of the inference pipeline.
type InferenceResult struct {
	Response string  `json:"response"`
	Metrics  Metrics `json:"metrics"`
}

// Sentinel errors for the ingestion and inference pipelines.
var (
	// ErrEmptyConversation rejects inference requests without any turns.
	ErrEmptyConversation = errors.New("conversation must contain at least one turn")

	// ErrEmptyDocument marks an ingestion that produced no text. It is a
	// per-file failure status, never fatal to a folder-wide ingest.
	ErrEmptyDocument = errors.New("no text could be extracted from document")
)
