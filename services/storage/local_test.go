package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalProviderPutDelete(t *testing.T) {
	root := t.TempDir()
	p, err := NewLocalProvider(root, "/uploads/")
	if err != nil {
		t.Fatalf("NewLocalProvider: %v", err)
	}

	ctx := context.Background()
	if err := p.Put(ctx, "resumes/cv.pdf", strings.NewReader("%PDF-1.4"), "application/pdf"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "resumes", "cv.pdf"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "%PDF-1.4" {
		t.Errorf("stored content = %q", data)
	}

	if got := p.URL("resumes/cv.pdf"); got != "/uploads/resumes/cv.pdf" {
		t.Errorf("URL = %q", got)
	}

	if err := p.Delete(ctx, "resumes/cv.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "resumes", "cv.pdf")); !os.IsNotExist(err) {
		t.Errorf("file still present after Delete: %v", err)
	}
	// deleting a missing key is not an error
	if err := p.Delete(ctx, "resumes/cv.pdf"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestLocalProviderKeepsKeysInsideRoot(t *testing.T) {
	root := t.TempDir()
	p, err := NewLocalProvider(filepath.Join(root, "uploads"), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalProvider: %v", err)
	}

	if err := p.Put(context.Background(), "../../escape.pdf", strings.NewReader("x"), ""); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "uploads", "escape.pdf")); err != nil {
		t.Errorf("expected file inside root: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.pdf")); !os.IsNotExist(err) {
		t.Errorf("file written outside root")
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		".pdf":  "application/pdf",
		".PDF":  "application/pdf",
		".doc":  "application/msword",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".exe":  "application/octet-stream",
	}
	for ext, want := range tests {
		if got := ContentType(ext); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", ext, got, want)
		}
	}
}
