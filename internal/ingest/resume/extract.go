// Package resume converts an uploaded document into a bounded text
// excerpt used only as prompt context. Ingestion failure is never fatal
// to the conversation: unsupported or unreadable input yields an empty
// excerpt plus a warning for the caller.
package resume

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"rsc.io/pdf"
)

// Result carries the extracted excerpt and, when extraction degraded, a
// non-fatal warning to surface to the user.
type Result struct {
	Excerpt string
	Warning string
}

// Extract decodes the document according to its declared type and bounds
// the excerpt to maxChars.
func Extract(data []byte, declaredType string, maxChars int) Result {
	switch normalizeType(declaredType) {
	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			return Result{Warning: fmt.Sprintf("could not read PDF: %v", err)}
		}
		return Result{Excerpt: truncate(text, maxChars)}
	case "txt":
		return Result{Excerpt: truncate(extractText(data), maxChars)}
	default:
		return Result{Warning: fmt.Sprintf("unsupported resume type %q: only PDF and plain text are accepted", declaredType)}
	}
}

func normalizeType(declared string) string {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case "application/pdf", "pdf", ".pdf":
		return "pdf"
	case "text/plain", "txt", ".txt", "text":
		return "txt"
	default:
		return ""
	}
}

// extractPDF concatenates the text of every page. The parser panics on
// some malformed files, so it runs under recover.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		parts := make([]string, 0, len(content.Text))
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			parts = append(parts, t.S)
		}
		if len(parts) > 0 {
			pages = append(pages, strings.Join(parts, " "))
		}
	}

	return strings.Join(pages, "\n"), nil
}

// extractText decodes bytes permissively: invalid sequences are dropped,
// never fatal.
func extractText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

func truncate(text string, maxChars int) string {
	text = strings.TrimSpace(text)
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}

	cut := maxChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
