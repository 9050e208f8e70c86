package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/accounts"
	"github.com/spendlog-dev/spendlog/internal/gitops"
	"github.com/spendlog-dev/spendlog/internal/importlog"
	"github.com/spendlog-dev/spendlog/internal/ingest"
	"github.com/spendlog-dev/spendlog/internal/logger"
	"github.com/spendlog-dev/spendlog/internal/model"
)

func newImportCommand() *cobra.Command {
	var dir string
	var all bool
	var accountID int
	var accountName string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import bank CSV exports (or .txt statement dumps) into the ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("pass exactly one file, or --all to sweep the import directory")
			}
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return runImport(dir, file, all, accountID, accountName, verbose)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().BoolVar(&all, "all", false, "import every file waiting in import/")
	cmd.Flags().IntVar(&accountID, "account", 0, "owning account id")
	cmd.Flags().StringVar(&accountName, "account-name", "", "account label (defaults from config)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log ingestion diagnostics")

	return cmd
}

func runImport(dir, file string, all bool, accountID int, accountName string, verbose bool) error {
	log := logger.New(verbose)
	led, err := openLedger(dir)
	if err != nil {
		return err
	}

	if !all {
		freeform := strings.HasSuffix(strings.ToLower(file), ".txt")
		_, err := ingestFile(led, log, file, freeform, accountID, accountName)
		return err
	}

	files, err := ingest.Scan(led.root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing waiting in import/")
		return nil
	}

	for _, f := range files {
		if _, err := ingestFile(led, log, f.Path, f.Freeform, accountID, accountName); err != nil {
			return err
		}
		if err := ingest.MarkProcessed(led.root, f.Name); err != nil {
			return err
		}
		log.Debug().Str("file", f.Name).Msg("moved to import/processed")
	}
	return nil
}

// ingestFile parses one statement file, persists the batch, and records
// the run in the import log. Returns the number of records added.
func ingestFile(led *ledger, log zerolog.Logger, path string, freeform bool, accountID int, accountName string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	fallback := led.cfg.Defaults.UploadAccount
	if freeform {
		fallback = led.cfg.Defaults.PasteAccount
	}
	name, err := resolveAccountName(led.root, accountID, accountName, fallback)
	if err != nil {
		return 0, err
	}

	parser := ingest.NewParser(led.rules)
	text := string(data)

	var txns []model.Transaction
	if freeform {
		txns = parser.ParseFreeformStatement(text, accountID, name)
	} else {
		txns = parser.ParseDelimitedDocument(text, accountID, name)
	}

	lines := strings.Count(text, "\n") + 1
	log.Debug().
		Str("source", filepath.Base(path)).
		Int("lines", lines).
		Int("records", len(txns)).
		Bool("freeform", freeform).
		Msg("parsed")

	return persistBatch(led, log, filepath.Base(path), name, lines, txns)
}

// persistBatch stores a parsed batch, appends to the import log, and
// auto-commits the ledger root when configured.
func persistBatch(led *ledger, log zerolog.Logger, source, account string, lines int, txns []model.Transaction) (int, error) {
	if len(txns) == 0 {
		fmt.Printf("No transactions found in %s\n", source)
		return 0, nil
	}

	stored, err := led.store.AddBatch(txns)
	if err != nil {
		return 0, fmt.Errorf("storing %s: %w", source, err)
	}

	batchID, err := importlog.NextBatchID(led.root, time.Now())
	if err != nil {
		return 0, err
	}
	entry := importlog.Entry{
		Timestamp:    time.Now(),
		BatchID:      batchID,
		Source:       source,
		Account:      account,
		LinesSeen:    lines,
		RecordsAdded: len(stored),
	}
	if err := importlog.Append(led.root, []importlog.Entry{entry}); err != nil {
		return 0, err
	}

	if led.cfg.Git.AutoCommit && gitops.IsRepo(led.root) {
		msg := fmt.Sprintf("import %s: %d transactions (%s)", batchID, len(stored), source)
		if _, err := gitops.CommitAll(led.root, msg, led.cfg.Git.AuthorName, led.cfg.Git.AuthorEmail); err != nil {
			// The batch is durable either way; a commit failure is not
			// worth failing the import over.
			log.Warn().Err(err).Msg("auto-commit failed")
		}
	}

	fmt.Printf("Imported %d transactions from %s (batch %s)\n", len(stored), source, batchID)
	return len(stored), nil
}

// resolveAccountName picks the account label for a batch: the explicit
// flag, else the registered name of the account id, else the entry
// point's configured default.
func resolveAccountName(root string, accountID int, explicit, fallback string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if accountID != 0 {
		svc, err := accounts.Load(root)
		if err != nil {
			return "", err
		}
		if acct, ok := svc.Get(accountID); ok {
			return acct.Name, nil
		}
	}
	return fallback, nil
}
