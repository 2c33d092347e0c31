package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotARepository means the working directory is not inside a git repository
var ErrNotARepository = errors.New("not a git repository")

// Executor defines the interface for git command execution
type Executor interface {
	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// RepoRoot returns the absolute path of the repository root
	RepoRoot(ctx context.Context) (string, error)

	// HasStagedChanges reports whether anything is staged for commit
	HasStagedChanges(ctx context.Context) (bool, error)

	// HasUnstagedChanges reports whether the working tree has changes
	// (modified or untracked) that are not staged
	HasUnstagedChanges(ctx context.Context) (bool, error)

	// StageAll stages every change in the working tree
	StageAll(ctx context.Context) error

	// Commit creates a commit with the given message. With edit the user's
	// editor is opened on the prepared message first.
	Commit(ctx context.Context, message string, edit bool) error

	// SetGlobalAlias registers a global git alias
	SetGlobalAlias(ctx context.Context, name, command string) error
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CurrentBranch returns the current branch name
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	return e.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// RepoRoot returns the absolute path of the repository root
func (e *DefaultExecutor) RepoRoot(ctx context.Context) (string, error) {
	root, err := e.runGit(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		if strings.Contains(err.Error(), "not a git repository") {
			return "", ErrNotARepository
		}
		return "", err
	}
	return root, nil
}

// HasStagedChanges reports whether anything is staged for commit
func (e *DefaultExecutor) HasStagedChanges(ctx context.Context) (bool, error) {
	out, err := e.runGit(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// HasUnstagedChanges reports whether the working tree has changes that are
// not staged, including untracked files
func (e *DefaultExecutor) HasUnstagedChanges(ctx context.Context) (bool, error) {
	out, err := e.runGit(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(out, "\n") {
		// The second column of porcelain output is the working tree state
		if len(line) >= 2 && line[1] != ' ' {
			return true, nil
		}
	}
	return false, nil
}

// StageAll stages every change in the working tree
func (e *DefaultExecutor) StageAll(ctx context.Context) error {
	_, err := e.runGit(ctx, "add", "-A")
	return err
}

// Commit creates a commit with the given message
func (e *DefaultExecutor) Commit(ctx context.Context, message string, edit bool) error {
	if !edit {
		_, err := e.runGit(ctx, "commit", "-m", message)
		return err
	}

	// --edit opens the user's editor, which needs the real terminal
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message, "--edit")
	cmd.Dir = e.workDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// SetGlobalAlias registers a global git alias
func (e *DefaultExecutor) SetGlobalAlias(ctx context.Context, name, command string) error {
	_, err := e.runGit(ctx, "config", "--global", "alias."+name, command)
	return err
}
