package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileName is the manifest file name expected at a project root.
const FileName = "package.json"

// DefaultVersion is the version string assigned to newly added dependencies
// that carry no inline version.
const DefaultVersion = "latest"

// Document is an order-preserving JSON object. The decoder in this package
// parses nested objects into *Document values as well, so a full
// package.json round-trips without reordering or dropping fields the tool
// does not know about.
type Document = orderedmap.OrderedMap[string, any]

// Path returns the manifest path for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads and parses the manifest at root. A missing or unparseable file
// yields an empty document: the updater starts fresh rather than surfacing
// the error.
func Load(root string) *Document {
	data, err := os.ReadFile(Path(root))
	if err != nil {
		return orderedmap.New[string, any]()
	}
	doc, err := decode(data)
	if err != nil {
		return orderedmap.New[string, any]()
	}
	return doc
}

// Update patches the manifest at root with the project name and dependency
// list, then rewrites it with two-space indentation. A non-empty name
// overwrites any existing name. Each library not already present under
// "dependencies" is added; existing entries keep their version strings.
// Library tokens may carry an inline version as name@version (see SplitToken).
func Update(root, name string, libraries []string) error {
	doc := Load(root)

	if name != "" {
		doc.Set("name", name)
	}

	if len(libraries) > 0 {
		deps := dependencyMap(doc)
		for _, lib := range libraries {
			depName, version := SplitToken(lib)
			if depName == "" {
				continue
			}
			if _, exists := deps.Get(depName); exists {
				continue
			}
			deps.Set(depName, version)
		}
		doc.Set("dependencies", deps)
	}

	return write(root, doc)
}

// dependencyMap returns the existing "dependencies" object, or a fresh one
// when the field is missing or not an object.
func dependencyMap(doc *Document) *Document {
	if v, ok := doc.Get("dependencies"); ok {
		if m, ok := v.(*Document); ok {
			return m
		}
	}
	return orderedmap.New[string, any]()
}

// write serializes the document and overwrites the manifest unconditionally.
func write(root string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", FileName, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}
