package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/client"
)

func (c *cli) newVaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaults",
		Short: "List the vaults of the signed-in account",
		Args:  cobra.NoArgs,
		RunE: c.action(inVault, func(cmd *cobra.Command, _ []string, a *client.App) error {
			vaults, err := a.Services.Vaults.List(cmd.Context())
			if err != nil {
				return err
			}
			active := a.Services.Session.ActiveVaultID()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\tID\tNAME\tROLE\tMEMBERS")
			for _, v := range vaults {
				mark := ""
				if v.ID == active {
					mark = "*"
				}
				role := "-"
				if v.MyRole != nil {
					role = string(*v.MyRole)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", mark, v.ID, v.Name, role, v.MemberCount)
			}
			return tw.Flush()
		}),
	}

	use := &cobra.Command{
		Use:   "use <vault-id>",
		Short: "Select the vault other commands act on",
		Args:  cobra.ExactArgs(1),
		RunE: c.action(signedIn, func(cmd *cobra.Command, args []string, a *client.App) error {
			v, err := a.Services.Vaults.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err = a.Services.Session.SetActiveVault(cmd.Context(), v.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active vault: %s\n", v.Name)
			return nil
		}),
	}

	cmd.AddCommand(use)
	return cmd
}
