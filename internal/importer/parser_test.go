package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	raw := "  Title\x00\t\nLine   one\r\n\r\nSecond line  "
	got := normalizeText(raw)
	want := "Title Line one Second line"
	if got != want {
		t.Fatalf("normalizeText() = %q, want %q", got, want)
	}
}

func TestPaginateBreaksOnWords(t *testing.T) {
	text := "alpha beta gamma delta"
	pages := paginate(text, 12)
	if len(pages) != 2 {
		t.Fatalf("pages = %q, want 2 pages", pages)
	}
	for _, page := range pages {
		if strings.HasPrefix(page, " ") || strings.HasSuffix(page, " ") {
			t.Fatalf("page %q not trimmed", page)
		}
	}
	if joined := strings.Join(pages, " "); joined != text {
		t.Fatalf("rejoined = %q, want original text", joined)
	}
}

func TestPaginateLongWord(t *testing.T) {
	// A word longer than the page must be cut, not loop forever.
	pages := paginate(strings.Repeat("x", 25), 10)
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}
}

func TestParserPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	content := strings.Repeat("word ", 100)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	pages, err := NewParser(120).Pages(path)
	if err != nil {
		t.Fatalf("pages: %v", err)
	}
	if len(pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(pages))
	}
}

func TestParserHTMLStripsMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.html")
	doc := "<html><head><style>p{color:red}</style></head><body><p>First</p><script>alert(1)</script><p>Second</p></body></html>"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	pages, err := NewParser(0).Pages(path)
	if err != nil {
		t.Fatalf("pages: %v", err)
	}
	text := strings.Join(pages, " ")
	if !strings.Contains(text, "First") || !strings.Contains(text, "Second") {
		t.Fatalf("text = %q", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Fatalf("markup leaked into text: %q", text)
	}
}

func TestParserEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewParser(0).Pages(path); err == nil {
		t.Fatalf("empty file must fail")
	}
}
