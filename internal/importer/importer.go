// Package importer loads knowledge records from files into a record store.
package importer

import (
	"context"
	"fmt"
	"os"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/storage"
)

// Sink receives parsed records.
type Sink interface {
	UpsertKnowledge(ctx context.Context, records []storage.KnowledgeRecord) error
}

// Report summarizes an import run.
type Report struct {
	Files   int `json:"files"`
	Records int `json:"records"`
	Failed  int `json:"failed"`
}

// Importer parses knowledge files and upserts their records.
type Importer struct {
	sink     Sink
	markdown *MarkdownParser
}

// New creates a new Importer.
func New(sink Sink) *Importer {
	return &Importer{
		sink:     sink,
		markdown: NewMarkdownParser(),
	}
}

// ParseFile reads and parses a single source file.
func (i *Importer) ParseFile(file SourceFile) ([]storage.KnowledgeRecord, error) {
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", file.Path, err)
	}

	switch file.Format {
	case FormatRecords:
		return ParseRecords(content)
	case FormatMarkdown:
		return i.markdown.Parse(content, file.Path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", file.Path)
	}
}

// Import scans paths and upserts every file's records.
// Errors for individual files are logged and counted but don't stop the run.
func (i *Importer) Import(ctx context.Context, paths ...string) (Report, error) {
	logger := contextutil.LoggerFromContext(ctx)

	files, err := Scan(ctx, paths...)
	if err != nil {
		return Report{}, err
	}

	logger.InfoContext(ctx, "starting import", "total_files", len(files))

	var report Report
	for _, file := range files {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		report.Files++
		records, err := i.ParseFile(file)
		if err != nil {
			report.Failed++
			logger.ErrorContext(ctx, "failed to parse file", "path", file.Path, "error", err)
			continue
		}
		if len(records) == 0 {
			logger.WarnContext(ctx, "no records found", "path", file.Path)
			continue
		}

		if err := i.sink.UpsertKnowledge(ctx, records); err != nil {
			report.Failed++
			logger.ErrorContext(ctx, "failed to upsert records", "path", file.Path, "error", err)
			continue
		}

		report.Records += len(records)
		logger.DebugContext(ctx, "imported file", "path", file.Path, "records", len(records))
	}

	logger.InfoContext(ctx, "import completed", "files", report.Files, "records", report.Records, "failed", report.Failed)

	if report.Failed > 0 {
		return report, fmt.Errorf("import completed with %d errors", report.Failed)
	}
	return report, nil
}
