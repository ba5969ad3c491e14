package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadResumeFile_TextFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "alice.txt", "Marketing manager   \r\nSkills:    SEO, SEM\r\n")

	loader := NewLoader(nil)
	resume, err := loader.LoadResumeFile(filepath.Join(dir, "alice.txt"))
	require.NoError(t, err)

	assert.Equal(t, "alice.txt", resume.ID)
	assert.Equal(t, "Marketing manager\nSkills: SEO, SEM", resume.Text)
}

func TestLoadResumeFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "photo.png", "binary")

	loader := NewLoader(nil)
	_, err := loader.LoadResumeFile(filepath.Join(dir, "photo.png"))
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "photo.png", extErr.Source)
	assert.Contains(t, extErr.Message, "unsupported file extension")
}

func TestLoadResumeFile_MissingFile(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.LoadResumeFile(filepath.Join(t.TempDir(), "ghost.txt"))
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "failed to read file", extErr.Message)
}

func TestLoadResumeDir_LexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "charlie.txt", "Backend engineer, Python and SQL")
	writeFixture(t, dir, "alice.txt", "Marketing manager, SEO and SEM")
	writeFixture(t, dir, "bob.md", "# Bob\nData analyst, Excel and Tableau")

	loader := NewLoader(nil)
	resumes, err := loader.LoadResumeDir(dir)
	require.NoError(t, err)

	require.Len(t, resumes, 3)
	assert.Equal(t, "alice.txt", resumes[0].ID)
	assert.Equal(t, "bob.md", resumes[1].ID)
	assert.Equal(t, "charlie.txt", resumes[2].ID)
}

func TestLoadResumeDir_SkipsUnsupportedAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "alice.txt", "Marketing manager")
	writeFixture(t, dir, "headshot.png", "binary")
	writeFixture(t, dir, "notes.json", `{"ignored": true}`)

	nested := filepath.Join(dir, "archive")
	require.NoError(t, os.Mkdir(nested, 0755))
	writeFixture(t, nested, "old.txt", "should not be loaded")

	loader := NewLoader(nil)
	resumes, err := loader.LoadResumeDir(dir)
	require.NoError(t, err)

	require.Len(t, resumes, 1)
	assert.Equal(t, "alice.txt", resumes[0].ID)
}

func TestLoadResumeDir_SkipsFailedExtraction(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "broken.pdf", "not really a pdf")
	writeFixture(t, dir, "good.txt", "Software engineer, Go and Kubernetes")

	loader := NewLoader(nil)
	resumes, err := loader.LoadResumeDir(dir)
	require.NoError(t, err)

	require.Len(t, resumes, 1)
	assert.Equal(t, "good.txt", resumes[0].ID)
}

func TestLoadResumeDir_EmptyDir(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.LoadResumeDir(t.TempDir())
	require.Error(t, err)

	assert.Contains(t, err.Error(), "no readable resumes")
}

func TestLoadResumeDir_MissingDir(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.LoadResumeDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "failed to read resume directory")
}

func TestLoadJobText_MarkdownFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "job.md", "# Marketing Manager\n\nRequired:   SEO,   SEM\n\n\n\n5+ years of experience")

	loader := NewLoader(nil)
	text, err := loader.LoadJobText(filepath.Join(dir, "job.md"))
	require.NoError(t, err)

	assert.Contains(t, text, "# Marketing Manager")
	assert.Contains(t, text, "Required: SEO, SEM")
	assert.NotContains(t, text, "\n\n\n")
}

func TestLoadJobText_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "job.csv", "col1,col2")

	loader := NewLoader(nil)
	_, err := loader.LoadJobText(filepath.Join(dir, "job.csv"))
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Message, "unsupported file extension")
}

func TestSupportedExtensions_Sorted(t *testing.T) {
	exts := SupportedExtensions()

	assert.Equal(t, []string{".docx", ".htm", ".html", ".md", ".pdf", ".txt"}, exts)
}

func TestMimeForExtension(t *testing.T) {
	mimeType, ok := MimeForExtension(".PDF")
	assert.True(t, ok)
	assert.Equal(t, MimePDF, mimeType)

	_, ok = MimeForExtension(".exe")
	assert.False(t, ok)
}
