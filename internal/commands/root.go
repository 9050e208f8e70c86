package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/buildinfo"
	"github.com/spendlog-dev/spendlog/internal/categorize"
	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendlog",
		Short:   "Local personal expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newPasteCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newAccountsCommand())

	return rootCmd
}

// configFile is the ledger config file name.
const configFile = "spendlog.yaml"

// rulesFile is the categorization rules file, relative to the root.
const rulesFile = "rules/categories.yaml"

// ledger bundles what a command needs from an initialized ledger root.
type ledger struct {
	root  string
	cfg   *config.Config
	rules *categorize.Ruleset
	store *store.Service
}

// openLedger resolves dir and loads the config, rules, and store.
// Missing rules fall back to the built-in set; a missing config means
// the directory was never initialized.
func openLedger(dir string) (*ledger, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, configFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s is not a spendlog ledger (run `spendlog init`)", root)
		}
		return nil, err
	}

	rules, err := categorize.LoadRules(filepath.Join(root, rulesFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		rules = categorize.DefaultRuleset()
	}

	return &ledger{
		root:  root,
		cfg:   cfg,
		rules: rules,
		store: store.NewService(root),
	}, nil
}
