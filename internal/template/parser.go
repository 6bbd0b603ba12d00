package template

import (
	"strings"
)

// Directive prefixes recognized in template text. Matching is exact-case on
// the whitespace-trimmed line; the remainder after the colon is trimmed.
const (
	projectPrefix   = "// Project:"
	librariesPrefix = "// Libraries:"
	filePrefix      = "// File:"
)

// Metadata holds the project-level declarations of a template.
// Name is empty when no `// Project:` line was present.
type Metadata struct {
	Name      string
	Libraries []string
}

// FileRecord is one file declared in a template. Path is taken verbatim from
// the `// File:` line (trimmed, no normalization). Content is trimmed of
// leading/trailing whitespace and always ends with exactly one newline.
type FileRecord struct {
	Path    string
	Content string
}

// Parse scans template text line by line and returns the project metadata
// and the declared files in declaration order.
//
// Repeated `// Project:` or `// Libraries:` lines overwrite earlier ones
// (last wins; libraries are replaced wholesale, not merged). Lines before
// the first `// File:` declaration that are not directives are discarded.
// An empty template yields empty metadata and no records.
func Parse(text string) (Metadata, []FileRecord) {
	var (
		meta    Metadata
		records []FileRecord
		path    string
		buf     strings.Builder
		open    bool
	)

	flush := func() {
		if !open {
			return
		}
		records = append(records, FileRecord{
			Path:    path,
			Content: strings.TrimSpace(buf.String()) + "\n",
		})
		buf.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, projectPrefix):
			meta.Name = strings.TrimSpace(trimmed[len(projectPrefix):])
		case strings.HasPrefix(trimmed, librariesPrefix):
			meta.Libraries = splitLibraries(trimmed[len(librariesPrefix):])
		case strings.HasPrefix(trimmed, filePrefix):
			flush()
			path = strings.TrimSpace(trimmed[len(filePrefix):])
			open = true
		default:
			// Content lines are kept verbatim, but only once a file is open.
			if open {
				buf.WriteString(line)
				buf.WriteByte('\n')
			}
		}
	}
	flush()

	return meta, records
}

// splitLibraries splits a comma-separated library list, trimming each token
// and dropping empty ones. Duplicate tokens are preserved; the manifest
// updater deduplicates naturally on insert.
func splitLibraries(rest string) []string {
	var libs []string
	for _, tok := range strings.Split(rest, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			libs = append(libs, tok)
		}
	}
	return libs
}
