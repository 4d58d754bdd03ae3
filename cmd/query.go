package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var queryCmd = &cobra.Command{
	Use:   "query EXPR",
	Short: "Run a bazel query from the smoke test package",
	Long: `Run "bazel query" in the current bazel workspace and print one result per line.

Implicit dependencies are hidden unless --implicits is set. With --libs, EXPR is a
label and the query lists the java libraries it depends on.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().
		String("package", "tests/smoke", "Package relative labels are resolved in")
	queryCmd.Flags().
		Bool("implicits", false, "Include implicit dependencies")
	queryCmd.Flags().
		Bool("libs", false, "List the library dependencies of the label")
}

func runQuery(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	pkg, _ := cmd.Flags().GetString("package")
	implicits, _ := cmd.Flags().GetBool("implicits")
	libs, _ := cmd.Flags().GetBool("libs")

	h, err := app.CreateHarness(cmd.Context(), pkg)
	if err != nil {
		return err
	}

	var lines []string
	if libs {
		lines, err = h.LibQuery(cmd.Context(), h.Target(args[0]), implicits)
	} else {
		lines, err = h.Query(cmd.Context(), args[0], implicits)
	}
	if err != nil {
		return err
	}

	if len(lines) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	}
	return nil
}
