package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newManualCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Show the input manual checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			p, err := f.period()
			if err != nil {
				return err
			}

			entries, err := a.client.ListInputManual(cmd.Context(), pid, p)
			if err != nil {
				return fmt.Errorf("failed to list input manual: %w", err)
			}
			return a.print(entries, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "順\tシート\t進捗\t作業内容\t日付")
				for _, e := range entries {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.Order, e.SheetName, e.WorkProgress.Label(), e.WorkContent, e.CreatedAt)
				}
			})
		},
	}
	f.bind(cmd, false)

	var req models.CreateInputManualRequest
	var done bool
	add := &cobra.Command{
		Use:   "add SHEET",
		Short: "Add a checklist entry for one of the sheets",
		Long:  "Add a checklist entry. SHEET is one of:\n  " + strings.Join(models.SheetNames, "\n  "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			req.SheetName = args[0]
			req.WorkProgress = models.WorkProgressInProgress
			if done {
				req.WorkProgress = models.WorkProgressCompleted
			}

			entry, err := a.client.CreateInputManual(cmd.Context(), pid, &req)
			if err != nil {
				return fmt.Errorf("failed to create input manual entry: %w", err)
			}
			return a.print(entry, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Added %s\t%s\n", entry.SheetName, entry.WorkProgress.Label())
			})
		},
	}
	add.Flags().IntVar(&req.Order, "order", 0, "display order")
	add.Flags().StringVar(&req.WorkContent, "content", "", "work content")
	add.Flags().StringVar(&req.CreatedAt, "date", "", "entry date (default today)")
	add.Flags().BoolVar(&done, "done", false, "mark the entry completed")

	var dates periodFlags
	datesCmd := &cobra.Command{
		Use:   "dates",
		Short: "List the years, or months of --year, with checklist entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}

			var values []int
			if dates.year != 0 {
				values, err = a.client.InputManualMonths(cmd.Context(), pid, dates.year)
			} else {
				values, err = a.client.InputManualYears(cmd.Context(), pid)
			}
			if err != nil {
				return fmt.Errorf("failed to list dates: %w", err)
			}
			return a.printInts(values)
		},
	}
	datesCmd.Flags().IntVar(&dates.year, "year", 0, "year")

	cmd.AddCommand(add, datesCmd)
	return cmd
}
