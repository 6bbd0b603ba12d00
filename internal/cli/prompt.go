package cli

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/nirman-dev/nirman/internal/branding"
	"github.com/nirman-dev/nirman/internal/clipboard"
	"github.com/spf13/cobra"
)

//go:embed prompt.md.tmpl
var promptTmpl string

var promptPrint bool

func init() {
	promptCmd.Flags().BoolVar(&promptPrint, "print", false, "Print the prompt to stdout instead of copying it")
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Copy the template-authoring prompt to the clipboard",
	Long: `Copy an instructional prompt to the system clipboard. Paste it into an AI
assistant to get back a ready-to-use nirman template, then feed that template
to 'nirman create'.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	text, err := buildPrompt()
	if err != nil {
		return fmt.Errorf("rendering prompt: %w", err)
	}

	if promptPrint {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	if err := clipboard.Copy(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Prompt copied to clipboard.")
	return nil
}

// buildPrompt renders the embedded prompt template with branding values.
func buildPrompt() (string, error) {
	tmpl, err := template.New("prompt").Parse(promptTmpl)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	err = tmpl.Execute(&out, struct {
		CLIName string
	}{
		CLIName: branding.CLIName(),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
