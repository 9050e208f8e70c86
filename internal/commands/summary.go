package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var dir string
	var month string
	var accountID int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals by category and month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(dir, month, accountID)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&month, "month", "", "restrict to a month (YYYY-MM)")
	cmd.Flags().IntVar(&accountID, "account", 0, "restrict to an account id")

	return cmd
}

func runSummary(dir, month string, accountID int) error {
	led, err := openLedger(dir)
	if err != nil {
		return err
	}

	var txns []model.Transaction
	if accountID != 0 {
		txns, err = led.store.ByAccount(accountID)
	} else {
		txns, err = led.store.GetAll()
	}
	if err != nil {
		return err
	}

	if month != "" {
		var kept []model.Transaction
		for _, txn := range txns {
			if txn.Month() == month {
				kept = append(kept, txn)
			}
		}
		txns = kept
	}

	if len(txns) == 0 {
		fmt.Println("No transactions match")
		return nil
	}

	fmt.Println("By category:")
	for _, ct := range report.ByCategory(txns, led.rules.Categories()) {
		fmt.Printf("  %-18s  %12s\n", ct.Category, ct.Total.StringFixed(2))
	}

	if month == "" {
		fmt.Println("By month:")
		for _, mt := range report.ByMonth(txns) {
			fmt.Printf("  %-18s  %12s\n", mt.Month, mt.Total.StringFixed(2))
		}
	}

	fmt.Printf("Total: %s across %d transactions\n", report.Total(txns).StringFixed(2), len(txns))
	return nil
}
