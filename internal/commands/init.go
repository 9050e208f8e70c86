package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/accounts"
	"github.com/spendlog-dev/spendlog/internal/categorize"
	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new spendlog ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	// Create directory structure.
	dirs := []string{
		"data",
		"accounts",
		"rules",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write spendlog.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the built-in categorization rules so they can be edited.
	if err := categorize.SaveRules(filepath.Join(dir, rulesFile), categorize.DefaultRuleset()); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	// Write an empty accounts registry.
	if err := accounts.NewService(nil).Save(dir); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if !cfg.Git.AutoCommit {
		fmt.Printf("Initialized spendlog ledger at %s\n", dir)
		return nil
	}

	// Initialize git and create the first commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized spendlog ledger at %s (%s)\n", dir, hash)
	return nil
}
