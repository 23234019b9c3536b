// Package cmd provides CLI commands for the property backoffice.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/client"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/config"
)

// app holds the global flags and the resources built from them.
type app struct {
	cfgFile    string
	debug      bool
	apiURL     string
	propertyID int64
	jsonOut    bool

	cfg    *config.Config
	client *client.Client
	out    io.Writer
	now    func() time.Time
}

// NewRootCmd builds the command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	return newRootCmd(&app{out: out, now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Manage rental property ledgers and reports",
		Long: `backoffice is a CLI client of the property backoffice API.

It supports:
- The rent roll and the per-unit deposit, utility, water and rent ledgers
- The six month rent income history and uncollected payments
- The income/expense ledger and the monthly statement with distributions
- The input manual checklist, past documents and report memos

Example:
  backoffice properties list
  backoffice --property 1 deposits --year 2025 --month 3
  backoffice --property 1 report --year 2025 --month 3 --save`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel := slog.LevelInfo
			if a.debug {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)

			return a.init(cmd)
		},
	}
	rootCmd.SetOut(a.out)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .env)")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.StringVar(&a.apiURL, "api-url", "", "backoffice API base URL (default from BACKOFFICE_API_URL)")
	flags.Int64Var(&a.propertyID, "property", 0, "property ID (default from BACKOFFICE_PROPERTY_ID)")
	flags.BoolVar(&a.jsonOut, "json", false, "print JSON instead of tables")

	// Add subcommands
	rootCmd.AddCommand(
		newPropertiesCmd(a),
		newRentRollCmd(a),
		newDepositsCmd(a),
		newUtilitiesCmd(a),
		newWaterCmd(a),
		newIncomeCmd(a),
		newHistoryCmd(a),
		newUncollectedCmd(a),
		newTransactionsCmd(a),
		newReportCmd(a),
		newManualCmd(a),
		newDocumentsCmd(a),
		newMemoCmd(a),
	)
	return rootCmd
}

// Execute runs the root command against os.Args.
// This is called by main.main().
func Execute() error {
	err := NewRootCmd(os.Stdout).Execute()
	if err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func (a *app) init(cmd *cobra.Command) error {
	slog.Debug("Loading configuration", "config", a.cfgFile)
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.apiURL != "" {
		cfg.Client.APIURL = a.apiURL
	}
	if cmd.Flags().Changed("property") {
		cfg.Client.PropertyID = a.propertyID
	}
	if err := cfg.Validate([]string{"client", "apiUrl"}); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.client = client.NewClient(client.ClientConfig{
		APIURL:  cfg.Client.APIURL,
		Timeout: cfg.Client.Timeout,
	})
	slog.Debug("API client ready", "api_url", cfg.Client.APIURL, "timeout", cfg.Client.Timeout)
	return nil
}

var errNoProperty = errors.New("no property selected: pass --property or set BACKOFFICE_PROPERTY_ID")

// property returns the selected property ID.
func (a *app) property() (int64, error) {
	if a.cfg == nil || a.cfg.Client.PropertyID <= 0 {
		return 0, errNoProperty
	}
	return a.cfg.Client.PropertyID, nil
}
