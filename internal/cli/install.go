package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/commitwiz/commitwiz/internal/git"
	"github.com/commitwiz/commitwiz/internal/installer"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register commitwiz with git",
	Long: `Prepare this machine for commitwiz.

This command will:
1. Verify git is available on PATH
2. Create the global configuration file if it does not exist
3. Register the global "git cz" alias for the wizard

Examples:
  commitwiz install
  git cz`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	inst, err := installer.New(git.NewExecutor(cwd))
	if err != nil {
		return fmt.Errorf("failed to prepare installer: %w", err)
	}

	if err := inst.Run(ctx); err != nil {
		return err
	}

	fmt.Println("\n✅ commitwiz installed.")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Adjust the global config file to taste")
	fmt.Println("  2. Run 'git cz' in any repository to compose a commit")
	return nil
}
