package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nirman-dev/nirman/internal/editor"
	"github.com/nirman-dev/nirman/internal/manifest"
	"github.com/nirman-dev/nirman/internal/scaffold"
	"github.com/nirman-dev/nirman/internal/template"
	"github.com/spf13/cobra"
)

// scratchFileName is the temporary template file opened in the editor. It
// lives inside the project directory and is removed once creation succeeds.
const scratchFileName = "nirman-template.txt"

const scratchSeed = "// Write your nirman template below this line, then save and close your editor.\n"

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <project-name>",
	Short: "Create a project from an editor-authored template",
	Long: `Create a project directory, open your editor on a template scratch file,
and materialize the result: every '// File:' block becomes a file on disk,
and the '// Project:' and '// Libraries:' declarations are merged into the
project's package.json.

Example:
  nirman create my-app`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	root := filepath.Join(".", args[0])

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating project directory %s: %w", root, err)
	}

	scratch := filepath.Join(root, scratchFileName)
	if err := os.WriteFile(scratch, []byte(scratchSeed), 0644); err != nil {
		return fmt.Errorf("writing template scratch file: %w", err)
	}

	// Block on the interactive editor; whatever the scratch file contains
	// when it exits is the template.
	if err := editor.Open(scratch); err != nil {
		return fmt.Errorf("editing template: %w", err)
	}

	data, err := os.ReadFile(scratch)
	if err != nil {
		return fmt.Errorf("reading edited template: %w", err)
	}

	meta, records := template.Parse(string(data))

	result := scaffold.Materialize(root, records)
	for _, failure := range result.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", failure)
	}

	if err := manifest.Update(root, meta.Name, meta.Libraries); err != nil {
		return fmt.Errorf("updating %s: %w", manifest.FileName, err)
	}

	// Shape warnings only; a manifest the schema dislikes is still written.
	if val, valErr := manifest.ValidateFile(manifest.Path(root)); valErr == nil && !val.Valid {
		for _, issue := range val.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", manifest.FileName, msg)
		}
	}

	if err := os.Remove(scratch); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: removing scratch file: %v\n", err)
	}

	printCreateResult(cmd, root, result)

	if len(result.Failures) > 0 {
		return fmt.Errorf("%d of %d files could not be written", len(result.Failures), len(records))
	}
	return nil
}

func printCreateResult(cmd *cobra.Command, root string, result *scaffold.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "Created project at %s/\n", root)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", manifest.FileName)
}
