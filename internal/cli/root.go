package cli

import (
	"fmt"
	"os"

	"github.com/nirman-dev/nirman/internal/branding"
	"github.com/nirman-dev/nirman/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a project directory from a small text template:
a project name, a dependency list, and a sequence of file paths with inline
contents. Write the template yourself or paste the output of an AI assistant
(see '` + branding.CLIName() + ` prompt'), save, and the files plus a patched
package.json appear on disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Shorthand -V per the original CLI surface; Cobra's default would
	// register -v.
	rootCmd.Flags().BoolP("version", "V", false, "Print version number")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are reported on stderr here because SilenceErrors is set; the
// caller turns a non-nil return into a non-zero exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	config.Load()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
