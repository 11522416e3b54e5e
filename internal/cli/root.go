package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "checkrun",
	Short: "Sequential CI pipeline runner for Go repositories",
	Long: `checkrun sequences a repository's verification steps — static analysis,
documentation builds, formatting checks and a dependency audit — stopping at
the first failing step and fixing metadata-file formatting drift in place
while still reporting it as a failure.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "checkrun %s\n", version)
	},
}
