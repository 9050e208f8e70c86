package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/ingest"
	"github.com/spendlog-dev/spendlog/internal/logger"
)

func newPasteCommand() *cobra.Command {
	var dir string
	var accountID int
	var accountName string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "paste [file]",
		Short: "Scan freeform statement text from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return runPaste(dir, source, accountID, accountName, verbose)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().IntVar(&accountID, "account", 0, "owning account id")
	cmd.Flags().StringVar(&accountName, "account-name", "", "account label (defaults from config)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log ingestion diagnostics")

	return cmd
}

func runPaste(dir, source string, accountID int, accountName string, verbose bool) error {
	log := logger.New(verbose)
	led, err := openLedger(dir)
	if err != nil {
		return err
	}

	var text string
	label := source
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
		label = "paste"
	} else {
		data, err := os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("reading %s: %w", source, err)
		}
		text = string(data)
	}

	name, err := resolveAccountName(led.root, accountID, accountName, led.cfg.Defaults.PasteAccount)
	if err != nil {
		return err
	}

	parser := ingest.NewParser(led.rules)
	txns := parser.ParseFreeformStatement(text, accountID, name)

	lines := strings.Count(text, "\n") + 1
	log.Debug().Int("lines", lines).Int("records", len(txns)).Msg("scanned")

	_, err = persistBatch(led, log, label, name, lines, txns)
	return err
}
