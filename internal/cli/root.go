// Package cli provides the Cobra-based commands for the rulelint tool:
// checking a rules tree (check), inspecting the enforced header schema
// (schema), and version information.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rulelint",
	Short: "Lint IDE-assistant rule files",
	Long: `rulelint validates a directory tree of rule files.

Each rule file is a two-part document: a '---' delimited 'Key: value' header
block followed by a markdown body. rulelint enforces the header schema,
resolves @reference tokens between rules, and checks that every rule carries
actual guidance. The exit code gates CI: non-zero iff any rule is invalid.`,
	Example: `  # Lint the default rules directory
  rulelint check

  # Lint an explicit root
  rulelint check ./rules

  # Partial tree: name identifiers that live outside the scanned root
  rulelint check ./rules/backend --known base.mdc --known style/go.mdc

  # Show the header schema the gate enforces
  rulelint schema`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", ".rulelint/config.json", "Path to config file")
}
