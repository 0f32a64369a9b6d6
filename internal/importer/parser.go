package importer

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// DefaultPageSize is the rune count per generated page for formats without
// intrinsic pages.
const DefaultPageSize = 1800

// Parser turns a source file into the ordered page array stored on a book.
// PDFs keep their own page boundaries; everything else is paginated by size.
type Parser struct {
	pageSize int
}

// NewParser creates a parser; pageSize <= 0 uses DefaultPageSize.
func NewParser(pageSize int) *Parser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Parser{pageSize: pageSize}
}

// Pages extracts book content from path. The format is chosen by the file
// extension: .pdf, .epub, .html/.htm, anything else is treated as plain text.
func (p *Parser) Pages(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return p.parsePDF(path)
	case ".epub":
		return p.parseEPUB(path)
	case ".html", ".htm":
		return p.parseHTML(path)
	default:
		return p.parseText(path)
	}
}

func (p *Parser) parsePDF(path string) ([]string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()
	totalPages := reader.NumPage()
	pages := make([]string, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip problematic pages instead of failing entirely
			continue
		}
		if text = normalizeText(text); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from PDF")
	}
	return pages, nil
}

func (p *Parser) parseEPUB(path string) ([]string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open epub: %w", err)
	}
	defer reader.Close()
	var sections []string
	for _, file := range reader.File {
		name := strings.ToLower(file.Name)
		if !(strings.HasSuffix(name, ".xhtml") || strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("read epub file: %w", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read epub content: %w", err)
		}
		text, err := textFromHTML(data)
		if err != nil {
			return nil, fmt.Errorf("parse epub html: %w", err)
		}
		if text != "" {
			sections = append(sections, text)
		}
	}
	pages := paginate(strings.Join(sections, " "), p.pageSize)
	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from epub")
	}
	return pages, nil
}

func (p *Parser) parseHTML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	text, err := textFromHTML(data)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	pages := paginate(text, p.pageSize)
	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from html")
	}
	return pages, nil
}

func (p *Parser) parseText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	pages := paginate(normalizeText(string(data)), p.pageSize)
	if len(pages) == 0 {
		return nil, fmt.Errorf("file contains no text")
	}
	return pages, nil
}

func textFromHTML(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return normalizeText(extractText(doc)), nil
}

func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\x00", " ")
	text = strings.ToValidUTF8(text, "")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// paginate splits text into pages of at most size runes, breaking on word
// boundaries where one exists inside the window.
func paginate(text string, size int) []string {
	if size <= 0 {
		return nil
	}
	runes := []rune(text)
	var pages []string
	for start := 0; start < len(runes); {
		end := start + size
		if end >= len(runes) {
			end = len(runes)
		} else {
			cut := end
			for cut > start && runes[cut-1] != ' ' {
				cut--
			}
			if cut > start {
				end = cut
			}
		}
		page := strings.TrimSpace(string(runes[start:end]))
		if page != "" {
			pages = append(pages, page)
		}
		start = end
	}
	return pages
}

func extractText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			buf.WriteString(node.Data)
			buf.WriteString(" ")
		case html.ElementNode:
			if node.Data == "script" || node.Data == "style" {
				return
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "br" || node.Data == "div" || node.Data == "li") {
			buf.WriteString(" ")
		}
	}
	walk(n)
	return buf.String()
}
