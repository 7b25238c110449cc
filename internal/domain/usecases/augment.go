package usecases

import (
	"github.com/omnichat/omnichat-go/internal/domain/entities"
)

// ContextPrefix introduces injected document context in the system turn.
const ContextPrefix = "Relevant context from your documents: "

// DefaultMaxContextChars bounds how much of a retrieved chunk is injected.
const DefaultMaxContextChars = 1000

// Augmenter inserts retrieved context into a conversation as an extra
// system turn.
type Augmenter struct {
	maxChars int
}

// NewAugmenter creates an Augmenter. maxChars caps the injected chunk length
// in characters (runes, no word-boundary awareness).
func NewAugmenter(maxChars int) *Augmenter {
	if maxChars <= 0 {
		maxChars = DefaultMaxContextChars
	}
	return &Augmenter{maxChars: maxChars}
}

// Augment returns a copy of conv with a system turn carrying the first
// context chunk inserted at index 1, immediately after the first turn
// whatever its role. The input conversation is never mutated. With no chunks
// the input is returned unchanged.
func (a *Augmenter) Augment(conv entities.Conversation, chunks []string) entities.Conversation {
	if len(chunks) == 0 {
		return conv
	}

	snippet := chunks[0]
	if runes := []rune(snippet); len(runes) > a.maxChars {
		snippet = string(runes[:a.maxChars])
	}
	contextTurn := entities.Turn{
		Role: entities.RoleSystem,
		Content: []entities.ContentPart{
			{Type: entities.PartTypeText, Text: ContextPrefix + snippet},
		},
	}

	at := 1
	if len(conv) < 1 {
		at = 0
	}
	out := make(entities.Conversation, 0, len(conv)+1)
	out = append(out, conv[:at]...)
	out = append(out, contextTurn)
	out = append(out, conv[at:]...)
	return out
}

// ExtractQuery pulls the retrieval query out of a conversation: the text of
// the first text-typed content part of the last turn. Single-turn (or empty)
// conversations yield an empty query, which skips retrieval entirely.
func ExtractQuery(conv entities.Conversation) string {
	if len(conv) <= 1 {
		return ""
	}
	last := conv[len(conv)-1]
	for _, part := range last.Content {
		if part.Type == entities.PartTypeText {
			return part.Text
		}
	}
	return ""
}
