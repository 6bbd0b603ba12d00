// Package scaffold writes parsed template file records into a project
// directory. It powers the "nirman create" command, creating parent
// directories as needed and overwriting existing files. Materialization is
// best-effort: a failing record is reported and does not stop later ones.
package scaffold
