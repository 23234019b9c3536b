package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newMemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memo",
		Short: "List the memos attached to report fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			memos, err := a.client.ReportMemos(cmd.Context(), pid)
			if err != nil {
				return fmt.Errorf("failed to list memos: %w", err)
			}
			return a.print(memos, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "項目\tメモ\t更新日時")
				for _, m := range memos {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Field, m.Value, m.UpdatedAt)
				}
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set FIELD TEXT...",
		Short: "Set the memo of a report field",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			memo, err := a.client.PutReportMemo(cmd.Context(), pid, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return fmt.Errorf("failed to save memo: %w", err)
			}
			return a.print(memo, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "%s\t%s\n", memo.Field, memo.Value)
			})
		},
	})
	return cmd
}
