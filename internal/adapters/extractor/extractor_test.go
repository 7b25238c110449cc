package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_TxtFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	os.WriteFile(path, []byte("plain text content"), 0644)

	r := NewRegistry()
	text, err := r.Extract(context.Background(), path)

	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if text != "plain text content" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestRegistry_UnsupportedExtensionSilentlyEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	os.WriteFile(path, []byte(`{"k": "v"}`), 0644)

	r := NewRegistry()
	text, err := r.Extract(context.Background(), path)

	if err != nil {
		t.Errorf("unsupported extension must not error: %v", err)
	}
	if text != "" {
		t.Errorf("unsupported extension must yield empty text, got %q", text)
	}
}

func TestRegistry_Extensions(t *testing.T) {
	r := NewRegistry()
	exts := r.Extensions()

	if len(exts) != 2 {
		t.Fatalf("expected 2 extensions, got %v", exts)
	}
	if exts[0] != ".pdf" || exts[1] != ".txt" {
		t.Errorf("unexpected extensions: %v", exts)
	}
}

func TestTextExtractor_DropsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.txt")
	os.WriteFile(path, []byte{'h', 'i', 0xff, 0xfe, '!', 0x80}, 0644)

	e := NewTextExtractor()
	text, err := e.Extract(context.Background(), path)

	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if text != "hi!" {
		t.Errorf("undecodable bytes should be dropped, got %q", text)
	}
}

func TestTextExtractor_MissingFile(t *testing.T) {
	e := NewTextExtractor()
	_, err := e.Extract(context.Background(), "/nonexistent/file.txt")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPDFExtractor_CorruptFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	os.WriteFile(path, []byte("not a pdf at all"), 0644)

	e := NewPDFExtractor()
	_, err := e.Extract(context.Background(), path)
	if err == nil {
		t.Error("corrupt pdf should fail extraction")
	}
}

func TestPDFExtractor_MissingFile(t *testing.T) {
	e := NewPDFExtractor()
	_, err := e.Extract(context.Background(), "/nonexistent/doc.pdf")
	if err == nil {
		t.Error("expected error for missing file")
	}
}
