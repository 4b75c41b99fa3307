// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/tiptime/internal/i18n"
	"github.com/toeirei/tiptime/internal/logging"
	"github.com/toeirei/tiptime/internal/tip"
)

// newCalcCmd evaluates the calculator once with the same rules as the
// screen: amount and percent are free text and anything unparsable is zero.
func newCalcCmd() *cobra.Command {
	var in tip.Input
	var raw bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a tip once and print it",
		Example: `  tiptime calc --amount 50 --percent 18
  tiptime calc --amount 10 --percent 15 --round-up --raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("round-up") {
				in.RoundUp = appConfig.RoundUp
			}
			logging.Debugf("calc amount=%q percent=%q round_up=%v", in.Amount, in.Percent, in.RoundUp)

			result := calculator.Evaluate(in)
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), result)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("screen.tip_amount", result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Amount, "amount", "a", "", "Bill amount")
	cmd.Flags().StringVarP(&in.Percent, "percent", "p", "", "Tip percentage")
	cmd.Flags().BoolVarP(&in.RoundUp, "round-up", "r", false, "Round the tip up to the next whole currency unit (default: round_up from config)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the formatted amount")

	return cmd
}
