package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/commitwiz/commitwiz/internal/config"
	"github.com/commitwiz/commitwiz/internal/log"
	"github.com/commitwiz/commitwiz/internal/ui"
)

// AliasName is the git alias the installer registers, so the wizard starts
// with "git cz"
const AliasName = "cz"

// aliasCommand tells git to run the binary instead of a builtin subcommand
const aliasCommand = "!commitwiz"

// AliasSetter registers a global git alias; git.Executor satisfies it
type AliasSetter interface {
	SetGlobalAlias(ctx context.Context, name, command string) error
}

// Installer prepares a machine for commitwiz: it verifies git is available,
// bootstraps the global configuration and registers the git alias.
type Installer struct {
	git      AliasSetter
	paths    config.Paths
	lookPath func(file string) (string, error)
	printer  *ui.StepPrinter
}

// Option is a functional option for Installer
type Option func(*Installer)

// WithConfigPaths overrides where the global config is bootstrapped
func WithConfigPaths(paths config.Paths) Option {
	return func(i *Installer) {
		i.paths = paths
	}
}

// WithLookPath overrides how executables are located on PATH
func WithLookPath(fn func(file string) (string, error)) Option {
	return func(i *Installer) {
		i.lookPath = fn
	}
}

// WithPrinter overrides where progress is written
func WithPrinter(printer *ui.StepPrinter) Option {
	return func(i *Installer) {
		i.printer = printer
	}
}

// New creates an Installer that registers the alias through gitExec
func New(gitExec AliasSetter, opts ...Option) (*Installer, error) {
	paths, err := config.DefaultPaths("")
	if err != nil {
		return nil, err
	}

	inst := &Installer{
		git:      gitExec,
		paths:    paths,
		lookPath: exec.LookPath,
		printer:  ui.NewStepPrinter(os.Stdout),
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst, nil
}

// Run performs the installation steps in order. Every step is idempotent, so
// running install again on a prepared machine is safe.
func (i *Installer) Run(ctx context.Context) error {
	gitPath, err := i.lookPath("git")
	if err != nil {
		return fmt.Errorf("git is required but was not found on PATH: %w", err)
	}
	log.Debug("found git at %s", gitPath)
	_ = i.printer.PrintStep("git", gitPath)

	// Load bootstraps the global file when it does not exist yet
	if _, err := config.Load(i.paths); err != nil {
		return fmt.Errorf("failed to bootstrap config: %w", err)
	}
	_ = i.printer.PrintStep("config", i.paths.GlobalFile)

	if err := i.git.SetGlobalAlias(ctx, AliasName, aliasCommand); err != nil {
		return fmt.Errorf("failed to register git alias: %w", err)
	}
	_ = i.printer.PrintStep("alias", fmt.Sprintf("git %s -> %s", AliasName, aliasCommand))

	return nil
}
