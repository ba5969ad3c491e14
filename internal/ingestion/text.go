package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpacePattern = regexp.MustCompile(`\s+`)
	blankRunPattern   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted document text while preserving structure.
// Line endings become LF, trailing whitespace is trimmed per line, runs of
// blank lines collapse to at most two, and inner whitespace runs collapse to
// a single space on regular lines. Markdown headings and bullet lists keep
// their markers so sectioned resumes stay readable.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Headings keep their markers, normalized to column zero.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullet items keep their indentation and marker.
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// Regular lines: collapse inner whitespace runs, keep leading indent.
	leadingSpace := len(line) - len(trimmed)
	content := innerSpacePattern.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// isBulletLine reports whether a trimmed line starts with a list marker,
// including the Unicode bullets PDF extraction tends to produce.
func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}
