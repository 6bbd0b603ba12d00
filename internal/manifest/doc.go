// Package manifest reads and patches the package.json at a project root.
// The manifest is modeled as an ordered key-value document rather than a
// fixed schema, so unknown fields and key order survive a rewrite. Only the
// name and dependencies fields are ever touched, and existing dependency
// entries are never overwritten.
package manifest
