package resume

import (
	"strings"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	result := Extract([]byte("Go developer since 2016."), "text/plain", 3000)
	if result.Warning != "" {
		t.Fatalf("unexpected warning: %q", result.Warning)
	}
	if result.Excerpt != "Go developer since 2016." {
		t.Fatalf("unexpected excerpt: %q", result.Excerpt)
	}
}

func TestExtractPlainTextPermissiveDecoding(t *testing.T) {
	data := []byte("caf\xff\xfe latte")
	result := Extract(data, "txt", 3000)
	if result.Warning != "" {
		t.Fatalf("invalid bytes must not be fatal, got warning %q", result.Warning)
	}
	if result.Excerpt != "caf latte" {
		t.Fatalf("unexpected excerpt: %q", result.Excerpt)
	}
}

func TestExtractTruncates(t *testing.T) {
	long := strings.Repeat("x", 5000)
	result := Extract([]byte(long), "text/plain", 3000)
	if len(result.Excerpt) != 3000 {
		t.Fatalf("expected 3000 chars, got %d", len(result.Excerpt))
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	result := Extract([]byte("binary"), "application/msword", 3000)
	if result.Excerpt != "" {
		t.Fatalf("unsupported type must yield empty excerpt, got %q", result.Excerpt)
	}
	if result.Warning == "" {
		t.Fatal("expected a warning for unsupported type")
	}
}

func TestExtractMalformedPDF(t *testing.T) {
	result := Extract([]byte("%PDF-1.4 garbage"), "application/pdf", 3000)
	if result.Excerpt != "" {
		t.Fatalf("malformed pdf must yield empty excerpt, got %q", result.Excerpt)
	}
	if result.Warning == "" {
		t.Fatal("expected a warning for malformed pdf")
	}
}
