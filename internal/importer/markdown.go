package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"momgyeot-ai/internal/storage"
)

const (
	keywordsLabel = "키워드:"
	urgencyLabel  = "긴급도:"
)

// MarkdownParser turns a knowledge document into records.
//
// A level-1 heading sets the category for the records after it. Each level-2
// heading starts a record titled by the heading; the blocks below it form the
// content. List items starting with "키워드:" or "긴급도:" set the record's
// keywords (comma separated) and urgency instead of becoming content.
type MarkdownParser struct {
	md goldmark.Markdown
}

// NewMarkdownParser creates a new MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// IDPrefix derives the record id prefix from a file name: the upper-cased stem.
func IDPrefix(filename string) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToUpper(strings.TrimSpace(name))
}

// Parse returns the records of content. Ids are "<PREFIX>-NNN" numbered in document order.
func (p *MarkdownParser) Parse(content []byte, filename string) ([]storage.KnowledgeRecord, error) {
	records := []storage.KnowledgeRecord{}
	if len(content) == 0 {
		return records, nil
	}

	prefix := IDPrefix(filename)
	if prefix == "" {
		return nil, fmt.Errorf("cannot derive id prefix from %q", filename)
	}

	doc := p.md.Parser().Parse(text.NewReader(content))

	category := ""
	var current *storage.KnowledgeRecord
	var blocks []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.Join(blocks, "\n\n")
		records = append(records, *current)
		current = nil
		blocks = nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if heading, ok := n.(*ast.Heading); ok && heading.Level <= 2 {
			headingText := extractText(heading, content)
			if heading.Level == 1 {
				flush()
				category = headingText
				continue
			}
			flush()
			current = &storage.KnowledgeRecord{
				ID:       fmt.Sprintf("%s-%03d", prefix, len(records)+1),
				Title:    headingText,
				Keywords: []string{},
				Category: category,
			}
			continue
		}

		if current == nil {
			continue
		}

		if block := blockText(n, content, current); block != "" {
			blocks = append(blocks, block)
		}
	}
	flush()

	return records, nil
}

// blockText renders a block as plain text. Metadata list items are applied to rec and dropped.
func blockText(n ast.Node, content []byte, rec *storage.KnowledgeRecord) string {
	switch v := n.(type) {
	case *ast.List:
		var lines []string
		idx := v.Start
		for item := v.FirstChild(); item != nil; item = item.NextSibling() {
			itemText := extractText(item, content)
			if applyMetadata(itemText, rec) {
				continue
			}
			marker := "-"
			if v.IsOrdered() {
				marker = fmt.Sprintf("%d.", idx)
				idx++
			}
			lines = append(lines, marker+" "+itemText)
		}
		return strings.Join(lines, "\n")
	case *extast.Table:
		var rows []string
		for row := v.FirstChild(); row != nil; row = row.NextSibling() {
			rows = append(rows, tableRowText(row, content))
		}
		return strings.Join(rows, "\n")
	case *ast.Heading:
		return extractText(v, content)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var b strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(content))
		}
		return strings.TrimRight(b.String(), "\n")
	case *ast.ThematicBreak, *ast.HTMLBlock:
		return ""
	default:
		return extractText(n, content)
	}
}

// applyMetadata reports whether itemText was a metadata line, storing its value on rec.
func applyMetadata(itemText string, rec *storage.KnowledgeRecord) bool {
	switch {
	case strings.HasPrefix(itemText, keywordsLabel):
		for _, kw := range strings.Split(strings.TrimPrefix(itemText, keywordsLabel), ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				rec.Keywords = append(rec.Keywords, kw)
			}
		}
		return true
	case strings.HasPrefix(itemText, urgencyLabel):
		rec.Urgency = strings.TrimSpace(strings.TrimPrefix(itemText, urgencyLabel))
		return true
	}
	return false
}

// extractText extracts text content from a node and its children, keeping line breaks.
func extractText(n ast.Node, content []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if _, ok := node.(*ast.Paragraph); ok && node.NextSibling() != nil {
				b.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(content))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteString("\n")
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.List:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// tableRowText joins the cells of a table row with pipe separators.
func tableRowText(row ast.Node, content []byte) string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, extractText(cell, content))
	}
	return strings.Join(cells, " | ")
}
