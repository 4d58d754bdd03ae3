package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"smokecheck/internal/commands"
)

const (
	// checkTimeout bounds a full manifest check.
	checkTimeout = 2 * time.Minute
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every manifest fixture exists",
	Long: `Check every fixture in the manifest and print one PASS or FAIL line per fixture.

Exits non-zero when any fixture is missing. A missing built-in fixture fails with
"could not read datafile".`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().
		StringSlice("exclude", []string{}, "Skip fixtures whose name or path matches a glob (can be specified multiple times)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	excludePatterns, _ := cmd.Flags().GetStringSlice("exclude")
	root, err := app.ConfigProvider.GetFixtureRoot()
	if err != nil {
		return err
	}

	app.Logger.Debug("Starting check", "root", root, "exclude", excludePatterns)

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()
	result, err := app.CreateCheckCommand().Execute(ctx, commands.CheckRequest{
		Root:            root,
		ExcludePatterns: excludePatterns,
	})
	if result != nil && result.Report != nil {
		printerFor(cmd, app).Check(result.Report, result.Excluded)
	}
	return err
}
