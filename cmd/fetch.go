package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smokecheck/internal/commands"
)

const (
	// fetchTimeout is the maximum time allowed for downloading all fixtures.
	fetchTimeout = 10 * time.Minute
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download missing fixtures that declare a url",
	Long: `Download every manifest fixture that has a url and is missing on disk, then
check the whole manifest again.

Use --force to download fixtures that already exist.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().
		Bool("force", false, "Download fixtures even when they already exist")
	fetchCmd.Flags().
		Bool("insecure", false, "Skip TLS certificate verification for fixture hosts")
	fetchCmd.Flags().
		Int("concurrency", 0, "Number of concurrent downloads (default 4)")
}

func runFetch(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	insecureSkipTLS, _ := cmd.Flags().GetBool("insecure")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	root, err := app.ConfigProvider.GetFixtureRoot()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()
	result, err := app.CreateFetchCommand(insecureSkipTLS).Execute(ctx, commands.FetchRequest{
		Root:        root,
		Force:       force,
		Concurrency: concurrency,
	})

	printer := printerFor(cmd, app)
	if result != nil {
		printer.Fetch(result.Downloaded, result.Present, result.NoSource)
		printer.Check(result.Report, 0)
	}
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	return nil
}
