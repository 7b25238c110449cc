package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
)

// mockStore implements ports.DocumentStore for testing
type mockStore struct {
	docs      []entities.Document
	appendErr error
}

func (m *mockStore) Append(ctx context.Context, doc entities.Document) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.docs = append(m.docs, doc)
	return nil
}

func (m *mockStore) All(ctx context.Context) ([]entities.Document, error) {
	out := make([]entities.Document, len(m.docs))
	copy(out, m.docs)
	return out, nil
}

// fileExtractor reads .txt files directly and treats .pdf as empty, which is
// enough to exercise folder-scan behavior without real PDFs.
type fileExtractor struct{}

func (e *fileExtractor) Extract(ctx context.Context, path string) (string, error) {
	if filepath.Ext(path) == ".pdf" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (e *fileExtractor) Extensions() []string {
	return []string{".txt", ".pdf"}
}

func TestIngestFile_AppendsDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	os.WriteFile(path, []byte("quarterly budget report"), 0644)

	store := &mockStore{}
	uc := NewIngestUseCase(&fileExtractor{}, store)

	doc, err := uc.IngestFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if doc.Filename != "notes.txt" {
		t.Errorf("unexpected filename: %s", doc.Filename)
	}
	if doc.ID == "" {
		t.Error("document should get an ID")
	}
	if len(store.docs) != 1 {
		t.Errorf("expected 1 stored doc, got %d", len(store.docs))
	}
}

func TestIngestFile_EmptyFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	os.WriteFile(path, []byte(""), 0644)

	store := &mockStore{}
	uc := NewIngestUseCase(&fileExtractor{}, store)

	_, err := uc.IngestFile(context.Background(), path)
	if !errors.Is(err, entities.ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
	if len(store.docs) != 0 {
		t.Error("empty file must not grow the store")
	}
}

func TestIngestFile_MissingFileFails(t *testing.T) {
	store := &mockStore{}
	uc := NewIngestUseCase(&fileExtractor{}, store)

	_, err := uc.IngestFile(context.Background(), "/nonexistent/file.txt")
	if err == nil {
		t.Error("expected error for missing file")
	}
	if len(store.docs) != 0 {
		t.Error("failed ingest must not grow the store")
	}
}

func TestIngestFolder_CountsSuccesses(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0644)
	os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta"), 0644)
	os.WriteFile(filepath.Join(dir, "scan.pdf"), []byte("%PDF"), 0644) // extracts empty

	store := &mockStore{}
	uc := NewIngestUseCase(&fileExtractor{}, store)

	count, err := uc.IngestFolder(context.Background(), dir)
	if err != nil {
		t.Fatalf("folder ingest failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 ingested, got %d", count)
	}
	if len(store.docs) != 2 {
		t.Errorf("expected 2 stored docs, got %d", len(store.docs))
	}
}

func TestIngestFolder_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "data.json"), []byte("{}"), 0644)
	os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# hi"), 0644)

	store := &mockStore{}
	uc := NewIngestUseCase(&fileExtractor{}, store)

	count, err := uc.IngestFolder(context.Background(), dir)
	if err != nil {
		t.Fatalf("folder ingest failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 ingested, got %d", count)
	}
}

func TestIngestFolder_OneBadFileDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "good.txt"), []byte("content"), 0644)
	os.WriteFile(filepath.Join(dir, "bad.txt"), []byte(""), 0644)

	store := &mockStore{}
	uc := NewIngestUseCase(&fileExtractor{}, store)

	count, err := uc.IngestFolder(context.Background(), dir)
	if err != nil {
		t.Fatalf("folder ingest failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 ingested, got %d", count)
	}
}
