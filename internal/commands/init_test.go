package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/categorize"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Sam"))

	expectedDirs := []string{
		"data",
		"accounts",
		"rules",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Sam"))

	data, err := os.ReadFile(filepath.Join(dir, "spendlog.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Sam")
	assert.Contains(t, string(data), "upload_account: Upload")
}

func TestInit_Rules(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Sam"))

	rules, err := categorize.LoadRules(filepath.Join(dir, "rules", "categories.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", rules.Categorize("STARBUCKS"))
	assert.Equal(t, "Other", rules.Fallback())
}

func TestInit_Accounts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Sam"))

	_, err := os.Stat(filepath.Join(dir, "accounts", "accounts.csv"))
	require.NoError(t, err)
}

func TestInit_NoGitByDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Sam"))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	assert.True(t, os.IsNotExist(err), "git versioning is opt-in")
}

func TestOpenLedger_NotInitialized(t *testing.T) {
	_, err := openLedger(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a spendlog ledger")
}

func TestOpenLedger_AfterInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Sam"))

	led, err := openLedger(dir)
	require.NoError(t, err)
	assert.Equal(t, "Sam", led.cfg.Profile.Name)
	assert.Equal(t, "Groceries", led.rules.Categorize("WALMART"))
}
