package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/archive"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/screen"
)

func newReportCmd(a *app) *cobra.Command {
	var f periodFlags
	var local, save bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the income/expense statement and distributions",
		Long: `Show the income/expense statement of a period with the
distribution waterfall. --local aggregates the per-code sums on this
machine instead of asking the server for the finished statement; --save
archives the rendered statement under ARCHIVE_DIR.

Example:
  backoffice --property 1 report --year 2025 --month 3 --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			p, err := f.period()
			if err != nil {
				return err
			}

			load := func(ctx context.Context, p models.Period) (*report.Summary, error) {
				return a.client.Report(ctx, pid, p)
			}
			if local {
				load = func(ctx context.Context, p models.Period) (*report.Summary, error) {
					rs, err := a.client.ReportSettings(ctx, pid)
					if err != nil {
						return nil, err
					}
					return report.Build(ctx, a.client, pid, rs, p)
				}
			}

			sc := screen.New(load, p)
			if err := sc.Load(cmd.Context()); err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}
			summary, _ := sc.Data()

			if save {
				property, err := a.client.GetProperty(cmd.Context(), pid)
				if err != nil {
					return fmt.Errorf("failed to get property: %w", err)
				}
				repo := archive.NewFileSystemRepository(a.cfg.Paths())
				path, err := repo.SaveSummary(property.Name, summary)
				if err != nil {
					return fmt.Errorf("failed to archive report: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", path)
			}

			if a.jsonOut {
				return a.print(summary, nil)
			}
			return report.Render(a.out, summary)
		},
	}
	f.bind(cmd, true)
	cmd.Flags().BoolVar(&local, "local", false, "aggregate the sums locally")
	cmd.Flags().BoolVar(&save, "save", false, "archive the rendered statement")

	cmd.AddCommand(newReportSettingsCmd(a), newReportArchiveCmd(a))
	return cmd
}

func newReportSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the report settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			rs, err := a.client.ReportSettings(cmd.Context(), pid)
			if err != nil {
				return fmt.Errorf("failed to get report settings: %w", err)
			}
			if a.jsonOut {
				return a.print(rs, nil)
			}
			return writeYAML(a, rs)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "apply FILE",
		Short: "Replace the report settings with a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read settings: %w", err)
			}
			var rs report.Settings
			if err := yaml.Unmarshal(data, &rs); err != nil {
				return fmt.Errorf("failed to parse YAML: %w", err)
			}
			if err := rs.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}

			saved, err := a.client.PutReportSettings(cmd.Context(), pid, &rs)
			if err != nil {
				return fmt.Errorf("failed to save report settings: %w", err)
			}
			if a.jsonOut {
				return a.print(saved, nil)
			}
			return writeYAML(a, saved)
		},
	})
	return cmd
}

func newReportArchiveCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "List archived statements of a year, or print one with --month",
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
			if p.Year == 0 {
				p.Year = a.now().Year()
			}
			repo := archive.NewFileSystemRepository(a.cfg.Paths())

			if p.Month != 0 {
				content, err := repo.ReadReport(pid, p)
				if err != nil {
					return err
				}
				if content == "" {
					return fmt.Errorf("no archived statement for %s", p)
				}
				_, err = fmt.Fprint(a.out, content)
				return err
			}

			names, err := repo.ListReportsInYear(pid, p.Year)
			if err != nil {
				return err
			}
			return a.print(names, func(tw *tabwriter.Writer) {
				for _, n := range names {
					fmt.Fprintln(tw, n)
				}
			})
		},
	}
	f.bind(cmd, true)
	return cmd
}

func writeYAML(a *app, v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
