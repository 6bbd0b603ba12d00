// Package template parses nirman project templates. A template is plain
// line-oriented text mixing three directives (`// Project:`, `// Libraries:`,
// `// File:`) with inline file contents. Parsing is pure: it produces project
// metadata and an ordered list of file records without touching the filesystem.
package template
