// Package ingestion loads resumes and job descriptions from local files,
// converts PDF, DOCX, and HTML documents to plain text, and normalizes the
// result for feature extraction.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/types"
)

// extensionMimeTypes maps supported file extensions to the MIME type handed
// to ExtractText. Extension matching is case-insensitive.
var extensionMimeTypes = map[string]string{
	".txt":  MimeText,
	".md":   MimeText,
	".pdf":  MimePDF,
	".docx": MimeDocx,
	".html": MimeHTML,
	".htm":  MimeHTML,
}

// SupportedExtensions returns the file extensions the loader accepts, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionMimeTypes))
	for ext := range extensionMimeTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// MimeForExtension maps a file extension (with leading dot, any case) to the
// MIME type ExtractText expects for it.
func MimeForExtension(ext string) (string, bool) {
	mimeType, ok := extensionMimeTypes[strings.ToLower(ext)]
	return mimeType, ok
}

// Loader reads resume and job description documents from disk.
type Loader struct {
	log *zap.Logger
}

// NewLoader returns a Loader. A nil logger disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// LoadResumeFile reads one resume document and returns it as engine input.
// The resume ID is the file's base name.
func (l *Loader) LoadResumeFile(path string) (types.ResumeInput, error) {
	name := filepath.Base(path)
	mimeType, ok := extensionMimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return types.ResumeInput{}, &ExtractionError{
			Source:  name,
			Message: fmt.Sprintf("unsupported file extension %q", filepath.Ext(path)),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeInput{}, &ExtractionError{Source: name, Message: "failed to read file", Cause: err}
	}

	text, err := ExtractText(mimeType, data)
	if err != nil {
		return types.ResumeInput{}, fmt.Errorf("%s: %w", name, err)
	}

	return types.ResumeInput{ID: name, Text: CleanText(text)}, nil
}

// LoadResumeDir reads every supported document in dir, in lexicographic
// filename order. Subdirectories and unsupported extensions are skipped, and
// files that fail extraction are logged and skipped so one bad document does
// not abort a batch.
func (l *Loader) LoadResumeDir(dir string) ([]types.ResumeInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	resumes := make([]types.ResumeInput, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := extensionMimeTypes[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			l.log.Debug("skipping unsupported file", zap.String("file", entry.Name()))
			continue
		}

		resume, err := l.LoadResumeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			l.log.Warn("skipping unreadable resume", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		resumes = append(resumes, resume)
	}

	if len(resumes) == 0 {
		return nil, fmt.Errorf("no readable resumes in %s (supported extensions: %s)",
			dir, strings.Join(SupportedExtensions(), ", "))
	}
	return resumes, nil
}

// LoadJobText reads a job description document and returns its cleaned text.
func (l *Loader) LoadJobText(path string) (string, error) {
	name := filepath.Base(path)
	mimeType, ok := extensionMimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", &ExtractionError{
			Source:  name,
			Message: fmt.Sprintf("unsupported file extension %q", filepath.Ext(path)),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Source: name, Message: "failed to read file", Cause: err}
	}

	text, err := ExtractText(mimeType, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return CleanText(text), nil
}
