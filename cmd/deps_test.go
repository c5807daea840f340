package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dxexec "github.com/wasabi0522/dxflow/internal/exec"
	"github.com/wasabi0522/dxflow/testutil"
)

func TestResolveDepsWithExec(t *testing.T) {
	t.Run("git not found", func(t *testing.T) {
		e := &dxexec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return fmt.Errorf("not found: %s", name)
			},
		}
		_, err := resolveDepsWithExec("/repo", e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git")
	})

	t.Run("success", func(t *testing.T) {
		e := &dxexec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return nil
			},
		}
		d, err := resolveDepsWithExec("/repo", e)
		require.NoError(t, err)
		assert.Equal(t, "/repo", d.dir)
		assert.Same(t, e, d.exec)
		assert.NotNil(t, d.git)
	})
}

func TestDefaultResolveRepo(t *testing.T) {
	dir := testutil.GitRepo(t)
	repo, err := defaultResolveRepo(dir)
	require.NoError(t, err)
	assert.True(t, repo.HasCommits)
}

func TestVerboseLogging(t *testing.T) {
	t.Run("quiet by default", func(t *testing.T) {
		a := &App{}
		var buf bytes.Buffer
		assert.Nil(t, a.logger(&buf))
		assert.Empty(t, a.wizardOpts(&buf))
		assert.Empty(t, a.scaffoldOpts(&buf))
		assert.Empty(t, a.setupOpts(&buf))
	})

	t.Run("verbose", func(t *testing.T) {
		a := &App{verbose: true}
		var buf bytes.Buffer
		a.logger(&buf).Debug("hello", "k", "v")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Len(t, a.wizardOpts(&buf), 1)
		assert.Len(t, a.scaffoldOpts(&buf), 1)
		assert.Len(t, a.setupOpts(&buf), 1)
	})
}

func TestRootCommand(t *testing.T) {
	out, err := executeCommand(t, NewApp(), "--version")
	require.NoError(t, err)
	assert.Equal(t, "dxflow version dev\n", out)

	out, err = executeCommand(t, NewApp())
	require.NoError(t, err)
	assert.Contains(t, out, "init")
	assert.Contains(t, out, "show")
}
