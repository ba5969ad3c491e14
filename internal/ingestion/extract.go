package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by ExtractText.
const (
	MimeText = "text/plain"
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeHTML = "text/html"
)

var markupTagPattern = regexp.MustCompile(`<[^>]+>`)

// normalizeMime lowercases a MIME type and drops parameters after ";"
// (charset and the like), so Content-Type header values can be passed
// through unchanged.
func normalizeMime(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0]))
}

// SupportedMime reports whether ExtractText can handle the given MIME type.
func SupportedMime(mimeType string) bool {
	switch normalizeMime(mimeType) {
	case MimeText, MimePDF, MimeDocx, MimeHTML:
		return true
	}
	return false
}

// ExtractText converts a raw document into plain text based on its MIME type.
func ExtractText(mimeType string, data []byte) (string, error) {
	switch normalizeMime(mimeType) {
	case MimeText:
		return string(data), nil
	case MimePDF:
		return extractPDFText(data)
	case MimeDocx:
		return extractDocxText(data)
	case MimeHTML:
		return extractHTMLText(data)
	default:
		return "", &ExtractionError{Message: fmt.Sprintf("unsupported content type %q", mimeType)}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocxText flattens the WordprocessingML body: paragraph closes become
// newlines, remaining markup is stripped, and XML entities are unescaped.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = markupTagPattern.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	return doc.Find("body").Text(), nil
}
