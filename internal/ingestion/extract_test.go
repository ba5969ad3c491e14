package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainTextPassthrough(t *testing.T) {
	text, err := ExtractText("text/plain", []byte("Marketing manager with 6 years of experience"))
	require.NoError(t, err)

	assert.Equal(t, "Marketing manager with 6 years of experience", text)
}

func TestExtractText_IgnoresContentTypeParameters(t *testing.T) {
	text, err := ExtractText("Text/Plain; charset=utf-8", []byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, "hello", text)
}

func TestExtractText_HTMLStripsNonContentElements(t *testing.T) {
	page := `<html>
<head><title>Careers</title><script>var tracker = 1;</script><style>body { margin: 0 }</style></head>
<body>
<nav>Home | Jobs | About</nav>
<header>Acme Careers</header>
<h1>Alice Smith</h1>
<p>Marketing manager with 6 years of experience. Skills: SEO, SEM, HubSpot.</p>
<footer>Copyright Acme</footer>
</body>
</html>`

	text, err := ExtractText("text/html", []byte(page))
	require.NoError(t, err)

	assert.Contains(t, text, "Alice Smith")
	assert.Contains(t, text, "Skills: SEO, SEM, HubSpot")
	assert.NotContains(t, text, "var tracker")
	assert.NotContains(t, text, "margin: 0")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Acme Careers")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractText_DocxFlattensParagraphs(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Jordan Lee</w:t></w:r></w:p><w:p><w:r><w:t>Research &amp; Development, 4 years of experience</w:t></w:r></w:p></w:body></w:document>`

	text, err := ExtractText(MimeDocx, docxBytes(t, document))
	require.NoError(t, err)

	assert.Contains(t, text, "Jordan Lee")
	assert.Contains(t, text, "Research & Development, 4 years of experience")
	assert.NotContains(t, text, "<w:")
	assert.NotContains(t, text, "&amp;")
}

func TestExtractText_UnsupportedType(t *testing.T) {
	_, err := ExtractText("image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Message, "unsupported content type")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("application/pdf", []byte("this is definitely not a pdf document"))
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "failed to read PDF", extErr.Message)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText(MimeDocx, []byte("this is not a zip archive"))
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "failed to parse DOCX", extErr.Message)
}

func TestSupportedMime(t *testing.T) {
	assert.True(t, SupportedMime("text/plain"))
	assert.True(t, SupportedMime("Text/HTML; charset=utf-8"))
	assert.True(t, SupportedMime("application/pdf"))
	assert.False(t, SupportedMime("image/png"))
	assert.False(t, SupportedMime(""))
}

// docxBytes builds a minimal DOCX archive around the given document XML.
func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(documentXML))
	require.NoError(t, err)

	rels, err := w.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}
