package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/rulelint/internal/config"
	"github.com/schoolboyqueue/rulelint/internal/lint"
	"github.com/schoolboyqueue/rulelint/internal/progress"
	"github.com/schoolboyqueue/rulelint/internal/rule"
)

var (
	checkKnownFlag      []string
	checkQuietFlag      bool
	checkNoProgressFlag bool
)

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Validate every rule file under the rules root",
	Long: `Validate every rule file under the rules root.

Checks, per document:
  - Header block present and terminated ('---' delimiter lines)
  - Required header keys present with non-empty values
  - @references resolve against the full document set
  - Body contains at least one '#' heading

The known-identifier set is built from every discovered document before any
reference is resolved, so rules may reference each other in either direction.
Use --known to name documents outside the scanned root when linting a
partial tree.

Exit Codes:
  0 - Success (every rule file is valid)
  1 - Validation failed (at least one rule file has diagnostics)
  3 - Invalid arguments (bad config, missing rules root)`,
	Example: `  # Lint the configured rules directory
  rulelint check

  # Lint an explicit root
  rulelint check ./rules

  # Partial tree with external targets
  rulelint check ./rules/backend --known base.mdc

  # Summary only, no per-document lines
  rulelint check --quiet`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		return runCheckCommand(args, configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringArrayVar(&checkKnownFlag, "known", nil, "Identifier outside the scanned root that references may target (repeatable)")
	checkCmd.Flags().BoolVarP(&checkQuietFlag, "quiet", "q", false, "Print only the summary, not per-document lines")
	checkCmd.Flags().BoolVar(&checkNoProgressFlag, "no-progress", false, "Disable the scan spinner")
}

// runCheckCommand executes the check command: discover, lint, report.
func runCheckCommand(args []string, configPath string, out, errOut io.Writer) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	// The rules root is always explicit: positional arg or configured dir
	root := cfg.RulesDir
	if len(args) == 1 {
		root = args[0]
	}

	// Discovery phase, with scan feedback on interactive terminals
	var display *progress.ScanDisplay
	if cfg.ShowProgress && !checkNoProgressFlag {
		display = progress.NewScanDisplay(progress.DetectTerminalCapabilities())
		display.Start(fmt.Sprintf("Scanning %s for %s files", root, cfg.RuleExtension))
	}
	docs, err := rule.Discover(root, cfg.RuleExtension)
	if display != nil {
		display.Stop()
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	if len(docs) == 0 {
		fmt.Fprintf(out, "No %s files found under %s\n", cfg.RuleExtension, root)
		return nil
	}

	// Lint phase: the barrier between discovery and reference resolution
	// lives inside lint.Run
	report := lint.Run(docs, lint.Options{
		Schema: lint.HeaderSchema{
			RequiredKeys: cfg.RequiredKeys,
			PatternKey:   cfg.PatternKey,
		},
		Extension:        cfg.RuleExtension,
		KnownIdentifiers: append(append([]string{}, cfg.KnownIdentifiers...), checkKnownFlag...),
	})

	printReport(report, checkQuietFlag, out, errOut)

	if !report.Success() {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// printReport renders per-document pass/fail lines in discovery order,
// diagnostics for invalid documents, and the run summary.
func printReport(report *lint.RunReport, quiet bool, out, errOut io.Writer) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if !quiet {
		for _, result := range report.Results {
			if result.Valid() {
				fmt.Fprintf(out, "%s %s\n", green("✓"), result.Identifier)
				continue
			}
			fmt.Fprintf(out, "%s %s\n", red("✗"), result.Identifier)
			for _, diag := range result.Diagnostics {
				location := ""
				if diag.Line > 0 {
					location = fmt.Sprintf(" (line %d)", diag.Line)
				}
				fmt.Fprintf(errOut, "    %s: %s%s\n", diag.Kind, diag.Message, location)
				if diag.Hint != "" {
					fmt.Fprintf(errOut, "      %s %s\n", yellow("Hint:"), diag.Hint)
				}
			}
		}
		fmt.Fprintln(out)
	}

	total := report.ValidCount + report.InvalidCount
	fmt.Fprintf(out, "Checked %d rule file(s): %d valid, %d invalid\n",
		total, report.ValidCount, report.InvalidCount)

	if report.Success() {
		fmt.Fprintf(out, "%s all rule files valid\n", green("✓"))
	} else {
		fmt.Fprintf(errOut, "%s validation failed with %d error(s)\n",
			red("✗"), len(report.Diagnostics()))
	}
}
