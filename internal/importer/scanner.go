package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceFile is a knowledge file found during scanning.
type SourceFile struct {
	Path   string
	Format Format
}

// Format identifies how a source file is parsed.
type Format int

const (
	FormatUnknown Format = iota
	FormatRecords
	FormatMarkdown
)

// FormatOf returns the format for a file name based on its extension.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return FormatRecords
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// Scan expands paths into supported source files.
// Directories are walked recursively, skipping hidden ones. Files given
// explicitly must have a supported extension.
func Scan(ctx context.Context, paths ...string) ([]SourceFile, error) {
	var files []SourceFile

	for _, root := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", root, err)
		}

		if !info.IsDir() {
			format := FormatOf(root)
			if format == FormatUnknown {
				return nil, fmt.Errorf("unsupported file type: %s", root)
			}
			files = append(files, SourceFile{Path: root, Format: format})
			continue
		}

		var found []SourceFile
		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("failed to access path %s: %w", path, err)
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if format := FormatOf(path); format != FormatUnknown {
				found = append(found, SourceFile{Path: path, Format: format})
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}

		sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
		files = append(files, found...)
	}

	return files, nil
}
