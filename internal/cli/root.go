package cli

import (
	"github.com/commitwiz/commitwiz/internal/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debugMode  bool
	configFile string
	dryRun     bool

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd represents the base command. Invoked without a subcommand it runs
// the commit wizard, so plain "commitwiz" (or the "git cz" alias) starts the
// prompt sequence directly.
var rootCmd = &cobra.Command{
	Use:   "commitwiz",
	Short: "Interactive Conventional Commits wizard",
	Long: `Commitwiz walks you through composing a Conventional Commits message:
  - commit type (feat, fix, docs, ...)
  - optional scope and gitmoji marker
  - description, body, issue trailer and breaking-change footer

and then creates the commit for you.

Run "commitwiz install" once to register the "git cz" alias.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode before any command runs
		if debugMode {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	RunE: runWizard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return version, gitCommit, buildTime
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Project config file path (default: <repo>/.commitwiz.conf)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the composed message without committing")
}
