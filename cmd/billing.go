package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the account balance in the reporting currency",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			balance, err := a.svc.GetBalance(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", balance)
			return nil
		})
	},
}

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Print spend per day for the recent window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		daysBack, _ := cmd.Flags().GetInt("days-back")
		if !cmd.Flags().Changed("days-back") {
			daysBack = cfg.Billing.DaysBack
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			res := a.svc.GetExpenses(ctx, daysBack)
			if res.Failed() {
				return res.Err
			}
			return printJSON(cmd, map[string]any{
				"expenses": res.Value,
				"total":    res.Value.Total(),
			})
		})
	},
}

func init() {
	expensesCmd.Flags().Int("days-back", 7, "number of days before today to include (default BILLING_DAYS_BACK)")
}
