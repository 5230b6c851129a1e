package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ruboto/rubotogen/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile     string
	apiFile     string
	templateDir string
	destination string
	minSDK      int
	targetSDK   int
	verbose     int
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "rubotogen",
	Short: "Ruboto Java class generator",
	Long: `rubotogen - Ruboto Java class generator

rubotogen reads the Android API descriptor and generates Java subclasses and
interface implementations whose methods dispatch to Ruby callbacks, keeping
only the methods that are safe across the project's minSdk..targetSdk range.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupGenerate = "generate"
	groupUtility  = "utility"
)

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: auto-discover rubotogen.yaml)")
	pf.StringVar(&apiFile, "api", "", "API descriptor, api.xml or YAML (default: api.xml)")
	pf.StringVar(&templateDir, "templates", "", "directory overriding the built-in templates")
	pf.StringVar(&destination, "dest", "", "project root to write into (default: .)")
	pf.IntVar(&minSDK, "min-sdk", 0, "minimum supported SDK version (default: from AndroidManifest.xml)")
	pf.IntVar(&targetSDK, "target-sdk", 0, "target SDK version (default: from AndroidManifest.xml, else min-sdk)")
	pf.CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Generate:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	genCmd.GroupID = groupGenerate
	rootCmd.AddCommand(genCmd)

	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.ReportAndExitCode(err, cli.NewDiagnosticReporter(verbose > 0, os.Stderr), os.Stderr))
	}
}

// newSession builds a generation session from the loaded config and persistent flags
func newSession() (*cli.Session, error) {
	return cli.NewSession(cfg, cli.Options{
		API:         apiFile,
		Templates:   templateDir,
		Destination: destination,
		MinSDK:      minSDK,
		TargetSDK:   targetSDK,
		Verbosity:   verbose,
		Quiet:       quiet,
	})
}
