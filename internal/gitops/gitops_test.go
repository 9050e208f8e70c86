package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir))

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))
}

// setIdentity pins a committer identity so commits work regardless of
// the machine's global git config.
func setIdentity(t *testing.T, dir string) {
	t.Helper()
	_, err := runGit(dir, "config", "user.name", "Test")
	require.NoError(t, err)
	_, err = runGit(dir, "config", "user.email", "test@example.com")
	require.NoError(t, err)
}

func TestCommitAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	setIdentity(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hello"), 0o644))

	hash, err := CommitAll(dir, "import 2025-01-001: 3 transactions", "Spendlog", "ledger@spendlog.dev")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s <%an>", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "import 2025-01-001: 3 transactions")
	assert.Contains(t, string(out), "Spendlog")
}

func TestHasChanges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	setIdentity(t, dir)

	clean, err := HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, clean)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hello"), 0o644))
	dirty, err := HasChanges(dir)
	require.NoError(t, err)
	assert.True(t, dirty)
}
