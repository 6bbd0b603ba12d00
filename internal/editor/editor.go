// Package editor resolves and runs the user's interactive text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/nirman-dev/nirman/internal/config"
)

// Resolve returns the editor command to use. The "editor" config key wins
// (which also picks up NIRMAN_EDITOR through viper's automatic env), then
// $EDITOR, then notepad on Windows or vi on Unix.
func Resolve() string {
	if v := config.Get("editor"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Open runs the resolved editor on filePath attached to the caller's stdio,
// blocking until the editor exits. A non-zero editor exit is an error.
func Open(filePath string) error {
	name := Resolve()

	cmd := exec.Command(name, filePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", name, err)
	}
	return nil
}
