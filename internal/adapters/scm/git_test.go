package scm_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/matrix/internal/adapters/scm"
)

// initRepo creates a throwaway git repository with one commit.
func initRepo(t *testing.T, message string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@test",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@test",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	run("init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n"), 0o600))
	run("add", ".")
	run("commit", "-m", message)
	return dir
}

func TestGit_HeadMessage(t *testing.T) {
	repo := initRepo(t, "fix resolver [skip ci]")
	g := scm.NewGit(repo)

	message, err := g.HeadMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fix resolver [skip ci]", message)
}

func TestGit_HeadMessage_NotARepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	g := scm.NewGit(t.TempDir())

	_, err := g.HeadMessage(context.Background())
	require.Error(t, err)
}

func TestGit_Stage(t *testing.T) {
	repo := initRepo(t, "initial")
	g := scm.NewGit(repo)

	workspace := t.TempDir()
	require.NoError(t, g.Stage(context.Background(), workspace))

	// The committed tree lands in the workspace without git metadata.
	_, err := os.Stat(filepath.Join(workspace, "Makefile"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(workspace, ".git"))
	assert.True(t, os.IsNotExist(err))
}
