package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nirman-dev/nirman/internal/template"
)

// Failure records one file that could not be written.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// Result holds the outcome of materializing template records.
type Result struct {
	OutputDir string
	Files     []string  // relative paths written, in declaration order
	Failures  []Failure // records that could not be written
}

// Materialize writes each record under root in declaration order, creating
// missing parent directories and overwriting existing files. A record that
// fails (unwritable path, permission denial) is recorded in Result.Failures
// and does not abort the remaining records.
func Materialize(root string, records []template.FileRecord) *Result {
	result := &Result{OutputDir: root}

	for _, rec := range records {
		if err := writeRecord(root, rec); err != nil {
			result.Failures = append(result.Failures, Failure{Path: rec.Path, Err: err})
			continue
		}
		result.Files = append(result.Files, rec.Path)
	}

	return result
}

// writeRecord writes a single record's content to root/rec.Path.
func writeRecord(root string, rec template.FileRecord) error {
	outPath := filepath.Join(root, rec.Path)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if err := os.WriteFile(outPath, []byte(rec.Content), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
