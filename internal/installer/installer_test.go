package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitwiz/commitwiz/internal/config"
	"github.com/commitwiz/commitwiz/internal/ui"
)

// fakeAliasSetter records the alias registration instead of touching git
type fakeAliasSetter struct {
	name    string
	command string
	err     error
	calls   int
}

func (f *fakeAliasSetter) SetGlobalAlias(ctx context.Context, name, command string) error {
	f.calls++
	f.name = name
	f.command = command
	return f.err
}

func testInstaller(t *testing.T, alias *fakeAliasSetter, opts ...Option) (*Installer, config.Paths) {
	t.Helper()

	paths := config.Paths{
		GlobalFile: filepath.Join(t.TempDir(), "commitwiz", "commitwiz.conf"),
	}
	base := []Option{
		WithConfigPaths(paths),
		WithLookPath(func(file string) (string, error) { return "/usr/bin/" + file, nil }),
		WithPrinter(ui.NewStepPrinter(&bytes.Buffer{}, ui.WithColor(false))),
	}

	inst, err := New(alias, append(base, opts...)...)
	require.NoError(t, err)
	return inst, paths
}

func TestInstaller_Run(t *testing.T) {
	alias := &fakeAliasSetter{}
	inst, paths := testInstaller(t, alias)

	err := inst.Run(context.Background())
	require.NoError(t, err)

	// The alias points git at the wizard binary
	assert.Equal(t, 1, alias.calls)
	assert.Equal(t, "cz", alias.name)
	assert.Equal(t, "!commitwiz", alias.command)

	// The global config was bootstrapped
	data, err := os.ReadFile(paths.GlobalFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "EMOJI_FORMAT")
}

func TestInstaller_Run_Idempotent(t *testing.T) {
	alias := &fakeAliasSetter{}
	inst, paths := testInstaller(t, alias)

	require.NoError(t, inst.Run(context.Background()))

	// Pre-existing config must survive a second run untouched
	require.NoError(t, os.WriteFile(paths.GlobalFile, []byte("AUTO_COMMIT=true\n"), 0644))
	require.NoError(t, inst.Run(context.Background()))

	data, err := os.ReadFile(paths.GlobalFile)
	require.NoError(t, err)
	assert.Equal(t, "AUTO_COMMIT=true\n", string(data))
	assert.Equal(t, 2, alias.calls)
}

func TestInstaller_Run_GitMissing(t *testing.T) {
	alias := &fakeAliasSetter{}
	inst, _ := testInstaller(t, alias, WithLookPath(func(file string) (string, error) {
		return "", fmt.Errorf("%s not found", file)
	}))

	err := inst.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git is required")
	assert.Zero(t, alias.calls)
}

func TestInstaller_Run_AliasFailure(t *testing.T) {
	alias := &fakeAliasSetter{err: errors.New("config locked")}
	inst, _ := testInstaller(t, alias)

	err := inst.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register git alias")
}
