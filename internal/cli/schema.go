package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/rulelint/internal/config"
	"github.com/schoolboyqueue/rulelint/internal/rule"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the header schema the check command enforces",
	Long: `Print the header schema the check command enforces.

Shows the active required keys, the pattern-list key, and the rule file
extension, after applying configuration from all sources. Useful for rule
authors who want to see what the CI gate expects.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		return runSchemaCommand(configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaCommand(configPath string, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	fmt.Fprintf(out, "Rule file schema\n")
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "Extension: %s\n", cfg.RuleExtension)
	fmt.Fprintf(out, "Header delimiter: %s\n\n", rule.HeaderDelimiter)

	fmt.Fprintf(out, "Required header keys:\n")
	for _, key := range cfg.RequiredKeys {
		suffix := ""
		if key == cfg.PatternKey {
			suffix = " (pattern list: must be non-empty after trimming)"
		}
		fmt.Fprintf(out, "  %s%s\n", key, suffix)
	}

	fmt.Fprintf(out, "\nBody: at least one '#' heading; may reference other rules as @<identifier>%s\n", cfg.RuleExtension)
	return nil
}
