package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var dir string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(dir, limit)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().IntVar(&limit, "limit", 0, "max rows (defaults from config)")

	return cmd
}

func runList(dir string, limit int) error {
	led, err := openLedger(dir)
	if err != nil {
		return err
	}

	if limit <= 0 {
		limit = led.cfg.Defaults.RecentLimit
	}

	txns, err := led.store.GetRecent(limit)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Println("No transactions yet")
		return nil
	}

	fmt.Printf("%-10s  %10s  %-18s  %-12s  %s\n", "DATE", "AMOUNT", "CATEGORY", "ACCOUNT", "DESCRIPTION")
	for _, txn := range txns {
		fmt.Printf("%-10s  %10s  %-18s  %-12s  %s\n",
			txn.DateString(), txn.Amount.StringFixed(2), txn.Category, txn.AccountName, txn.Description)
	}
	return nil
}
