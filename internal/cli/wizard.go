package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/commitwiz/commitwiz/internal/config"
	"github.com/commitwiz/commitwiz/internal/git"
	"github.com/commitwiz/commitwiz/internal/gitmoji"
	"github.com/commitwiz/commitwiz/internal/log"
	"github.com/commitwiz/commitwiz/internal/ui"
	"github.com/commitwiz/commitwiz/internal/wizard"
	"golang.org/x/term"
)

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	setupInterruptHandler()

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create git executor
	gitExec := git.NewExecutor(cwd)

	repoRoot, err := gitExec.RepoRoot(ctx)
	if err != nil {
		if errors.Is(err, git.ErrNotARepository) {
			return fmt.Errorf("not a git repository (run commitwiz inside one)")
		}
		return fmt.Errorf("failed to locate repository root: %w", err)
	}

	log.Debug("repository root: %s", repoRoot)

	// Load configuration
	paths, err := config.DefaultPaths(repoRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve config paths: %w", err)
	}
	if configFile != "" {
		paths.ProjectFile = configFile
	}

	cfg, err := config.Load(paths)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	printer := ui.NewStepPrinter(os.Stdout)
	prompter := ui.NewPrompter()

	if err := ensureStagedChanges(ctx, gitExec, cfg, prompter, printer); err != nil {
		return exitIfCancelled(err, printer)
	}

	// A missing catalog only disables the emoji step
	records := loadCatalog(ctx, printer)

	wiz := wizard.New(cfg, paths, prompter, gitExec,
		wizard.WithCatalog(records),
		wizard.WithPrinter(printer),
	)

	msg, err := wiz.Run(ctx)
	if err != nil {
		return exitIfCancelled(err, printer)
	}

	message := msg.Render()
	if err := printer.PrintMessagePreview(message); err != nil {
		return err
	}

	if dryRun {
		log.Debug("dry run, skipping commit")
		return nil
	}

	// Ask for confirmation unless the config commits straight away
	if !cfg.AutoCommit {
		confirmed, err := prompter.Confirm("Create the commit with this message?", true)
		if err != nil {
			return exitIfCancelled(err, printer)
		}
		if !confirmed {
			_ = printer.PrintInfo("Commit cancelled.")
			return nil
		}
	}

	if err := gitExec.Commit(ctx, message, cfg.ShowEditor); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return printer.PrintSuccess("Commit created successfully!")
}

// ensureStagedChanges makes sure the eventual commit has content before any
// prompt runs. With CheckUnstaged enabled a dirty working tree earns an offer
// to stage everything first.
func ensureStagedChanges(ctx context.Context, gitExec git.Executor, cfg *config.Config, prompter ui.Prompter, printer *ui.StepPrinter) error {
	if cfg.CheckUnstaged {
		unstaged, err := gitExec.HasUnstagedChanges(ctx)
		if err != nil {
			return fmt.Errorf("failed to check working tree: %w", err)
		}
		if unstaged {
			stage, err := prompter.Confirm("You have unstaged changes. Stage everything now?", true)
			if err != nil {
				return err
			}
			if stage {
				if err := gitExec.StageAll(ctx); err != nil {
					return fmt.Errorf("failed to stage changes: %w", err)
				}
				_ = printer.PrintStep("staged", "all changes")
			}
		}
	}

	staged, err := gitExec.HasStagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("failed to check staged changes: %w", err)
	}
	if !staged {
		_ = printer.PrintWarning("Nothing is staged for commit.")
		_ = printer.PrintInfo("Stage changes first with: git add <file> (or git add -A)")
		return fmt.Errorf("nothing staged to commit")
	}
	return nil
}

// loadCatalog loads the gitmoji catalog, degrading to an emoji-free session
// when it cannot be fetched or parsed
func loadCatalog(ctx context.Context, printer *ui.StepPrinter) []gitmoji.Record {
	loader, err := gitmoji.NewLoader()
	if err != nil {
		log.Warn("skipping emoji step: %v", err)
		return nil
	}

	spin := ui.NewSpinner("Loading gitmoji catalog...", term.IsTerminal(int(os.Stdout.Fd())))
	spin.Start()
	records, err := loader.Load(ctx)
	spin.Stop()

	if err != nil {
		log.Warn("%v", err)
		_ = printer.PrintWarning("Gitmoji catalog unavailable, continuing without emojis.")
		return nil
	}
	return records
}

// exitIfCancelled turns a user abort into the clean 130 exit every prompt
// shares; any other error is handed back to cobra.
func exitIfCancelled(err error, printer *ui.StepPrinter) error {
	if errors.Is(err, ui.ErrCancelled) {
		_ = printer.Newline()
		_ = printer.PrintInfo("Cancelled. No commit was created.")
		os.Exit(130)
	}
	return err
}
