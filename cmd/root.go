package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"smokecheck/internal/app"
	"smokecheck/internal/logging"
	"smokecheck/internal/report"
	"smokecheck/internal/services/config"
)

// envPrefix is the prefix for environment overrides, e.g. SMOKECHECK_DIR.
const envPrefix = "SMOKECHECK"

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool
	noColor bool

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "smokecheck",
	Short: "Verify that test fixtures are present before a test suite runs",
	Long: `Smokecheck confirms that the static files a test suite depends on exist.
Fixtures are listed in a YAML manifest (smokecheck.yaml). Without one, the
built-in tests/smoke/data/datafile.txt fixture is checked.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "fixture manifest (default is smokecheck.yaml in --dir)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().
		String("dir", "", "Directory fixture paths are resolved against (default is the working directory)")
}

// initConfig reads settings from the same manifest file the application loads:
// --config when given, otherwise smokecheck.yaml in the fixture directory.
func initConfig() {
	_ = viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", string(logging.LevelInfo))
	viper.SetDefault("log.format", "text")
	viper.SetDefault("workers", 0)
	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.rate", 0)
	viper.SetDefault("http.burst", 0)

	manifestPath := cfgFile
	if manifestPath == "" {
		manifestPath = filepath.Join(viper.GetString("dir"), config.DefaultManifestName)
	}
	viper.SetConfigFile(manifestPath)
	viper.SetConfigType("yaml")

	// Read config file silently (ignore error if config file doesn't exist)
	_ = viper.ReadInConfig()
}

// initApp builds the application container before every subcommand.
func initApp(cmd *cobra.Command, _ []string) error {
	opts := []app.Option{
		app.WithLogLevel(logging.LogLevel(viper.GetString("log.level"))),
		app.WithLogFormat(viper.GetString("log.format")),
		app.WithWorkers(viper.GetInt("workers")),
		app.WithHTTPTimeout(viper.GetDuration("http.timeout")),
		app.WithHTTPRateLimit(viper.GetFloat64("http.rate"), viper.GetInt("http.burst")),
		app.WithManifestPath(cfgFile),
		app.WithRoot(viper.GetString("dir")),
		app.WithNoColor(noColor || viper.GetBool("no_color")),
	}
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	var err error
	application, err = app.NewApp(cmd.Context(), opts...)
	if err != nil {
		return err
	}
	return nil
}

// printerFor returns a report printer for the command's output stream.
func printerFor(cmd *cobra.Command, a *app.App) *report.Printer {
	return report.NewPrinter(cmd.OutOrStdout(), a.UseColor())
}

func requireApp() (*app.App, error) {
	a := GetApp()
	if a == nil {
		return nil, errors.New("application not initialized")
	}
	return a, nil
}
