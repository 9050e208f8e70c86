// Package gitops versions the ledger root with plain git commands.
// The ledger is an ordinary file tree, so git is the backup and history
// mechanism; there is no sync and no remote involved.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// runGit runs a git subcommand in dir and returns combined output.
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a git repository at dir. No-op if one exists.
func Init(dir string) error {
	_, err := runGit(dir, "init")
	return err
}

// HasChanges reports whether the working tree has uncommitted changes.
func HasChanges(dir string) (bool, error) {
	out, err := runGit(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// IsRepo reports whether dir is a git repository root.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// CommitAll stages everything and commits. Returns the short commit hash.
func CommitAll(dir, message, authorName, authorEmail string) (string, error) {
	if _, err := runGit(dir, "add", "-A"); err != nil {
		return "", err
	}

	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	if _, err := runGit(dir, "commit", "-m", message, "--author", author); err != nil {
		return "", err
	}

	return runGit(dir, "rev-parse", "--short", "HEAD")
}
