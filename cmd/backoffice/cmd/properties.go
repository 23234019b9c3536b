package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newPropertiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List and register properties",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, err := a.client.ListProperties(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list properties: %w", err)
			}
			return a.print(properties, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\t物件名")
				for _, p := range properties {
					fmt.Fprintf(tw, "%d\t%s\n", p.ID, p.Name)
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Register a property",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := a.client.CreateProperty(cmd.Context(), &models.CreatePropertyRequest{
				Name: strings.Join(args, " "),
			})
			if err != nil {
				return fmt.Errorf("failed to create property: %w", err)
			}
			return a.print(property, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Created property %d\t%s\n", property.ID, property.Name)
			})
		},
	})

	return cmd
}
