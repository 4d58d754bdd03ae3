package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smokecheck/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter fixture manifest",
	Long: `Write the current manifest (the built-in datafile fixture when none exists)
to smokecheck.yaml, or to the path given with --config.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().
		Bool("force", false, "Overwrite an existing manifest")
}

func runInit(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")

	path, err := app.CreateInitCommand().Execute(cmd.Context(), commands.InitRequest{Force: force})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
