package cmd

import (
	"github.com/spf13/cobra"

	"smokecheck/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var jarCmd = &cobra.Command{
	Use:   "jar FILE",
	Short: "Assert on the entries of a jar archive",
	Long: `Open a jar (or any zip archive) and check that it contains the given entries
and that no entry matches an --absent glob.

Example:
  smokecheck jar bazel-bin/app/app_deploy.jar --contains app/Main.class --absent 'kotlin/**'`,
	Args: cobra.ExactArgs(1),
	RunE: runJar,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(jarCmd)
	jarCmd.Flags().
		StringSlice("contains", []string{}, "Entry the jar must contain (can be specified multiple times)")
	jarCmd.Flags().
		StringSlice("absent", []string{}, "Glob no jar entry may match (can be specified multiple times)")
}

func runJar(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	contains, _ := cmd.Flags().GetStringSlice("contains")
	absent, _ := cmd.Flags().GetStringSlice("absent")

	result, err := app.CreateJarCommand().Execute(cmd.Context(), commands.JarRequest{
		Path:     args[0],
		Contains: contains,
		Absent:   absent,
	})
	if result != nil {
		printerFor(cmd, app).Jar(args[0], result.Entries, err)
	}
	return err
}
