package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/accounts"
	"github.com/spendlog-dev/spendlog/internal/model"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage tracked accounts",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	accountsCmd.AddCommand(newAccountsAddCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := openLedger(dir)
			if err != nil {
				return err
			}
			svc, err := accounts.Load(led.root)
			if err != nil {
				return err
			}
			if len(svc.All()) == 0 {
				fmt.Println("No accounts registered")
				return nil
			}
			for _, a := range svc.All() {
				fmt.Printf("%4d  %-20s  %s\n", a.ID, a.Name, a.Kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	return cmd
}

func newAccountsAddCommand() *cobra.Command {
	var dir string
	var name string
	var kind string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := openLedger(dir)
			if err != nil {
				return err
			}
			svc, err := accounts.Load(led.root)
			if err != nil {
				return err
			}

			acct := model.Account{
				ID:   svc.NextID(),
				Name: name,
				Kind: model.AccountKind(kind),
			}
			svc.Add(acct)
			if err := svc.Save(led.root); err != nil {
				return err
			}

			fmt.Printf("Added account %d (%s)\n", acct.ID, acct.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&kind, "kind", string(model.AccountKindChecking), "account kind (checking|savings|credit|other)")

	return cmd
}
