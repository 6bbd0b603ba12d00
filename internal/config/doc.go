// Package config manages user-level settings stored at ~/.nirman/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the preferred interactive editor.
package config
