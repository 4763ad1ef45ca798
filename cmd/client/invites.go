package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/client"
	"github.com/MKhiriev/legacy-keeper/models"
)

func (c *cli) newInvitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invites",
		Short: "Manage the shareable invite links of the active vault",
	}
	cmd.AddCommand(
		c.newInvitesListCmd(),
		c.newInvitesCreateCmd(),
		c.newInvitesRevokeCmd(),
		c.newInvitesDeleteCmd(),
		c.newInvitesCopyCmd(),
	)
	return cmd
}

func (c *cli) newInvitesListCmd() *cobra.Command {
	var params models.InvitesQueryParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shareable links, newest first",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&params.Page, "page", models.DefaultInvitesPage, "page number")
	cmd.Flags().IntVar(&params.PageSize, "page-size", models.DefaultInvitesPageSize, "links per page")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, _ []string, a *client.App) error {
		page, err := a.Services.Invites.List(cmd.Context(), params)
		if err != nil {
			return err
		}

		now := time.Now()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tROLE\tSTATUS\tJOINED\tEXPIRES\tLINK")
		for _, inv := range page.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
				inv.ID, inv.Role, inv.StatusAt(now), inv.JoinedCount, inv.ExpiresAt.Local().Format(time.DateTime), inv.Link)
		}
		if err = tw.Flush(); err != nil {
			return err
		}
		if page.HasNextPage {
			fmt.Fprintf(cmd.OutOrStdout(), "more on page %d\n", params.Normalize().Page+1)
		}
		return nil
	})
	return cmd
}

func (c *cli) newInvitesCreateCmd() *cobra.Command {
	var (
		role     string
		validFor time.Duration
		copyLink bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shareable link",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&role, "role", string(models.RoleViewer), "role granted by the link")
	cmd.Flags().DurationVar(&validFor, "valid-for", 7*24*time.Hour, "how long the link stays usable")
	cmd.Flags().BoolVar(&copyLink, "copy", false, "copy the link to the clipboard")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, _ []string, a *client.App) error {
		r, err := parseRole(role)
		if err != nil {
			return err
		}
		inv, err := a.Services.Invites.Create(cmd.Context(), models.CreateShareableInviteRequest{
			Role:      r,
			ExpiresAt: time.Now().Add(validFor),
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), inv.Link)
		if copyLink {
			return a.Copy(inv.Link)
		}
		return nil
	})
	return cmd
}

func (c *cli) newInvitesRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <invite-id>",
		Short: "Disable a shareable link",
		Args:  cobra.ExactArgs(1),
		RunE: c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
			_, err := a.Services.Invites.Revoke(cmd.Context(), args[0])
			return err
		}),
	}
}

func (c *cli) newInvitesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <invite-id>",
		Short: "Delete a shareable link",
		Args:  cobra.ExactArgs(1),
		RunE: c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
			return a.Services.Invites.Delete(cmd.Context(), args[0])
		}),
	}
}

func (c *cli) newInvitesCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <invite-id>",
		Short: "Copy a shareable link to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
			params := models.InvitesQueryParams{}.Normalize()
			for {
				page, err := a.Services.Invites.List(cmd.Context(), params)
				if err != nil {
					return err
				}
				for _, inv := range page.Items {
					if inv.ID != args[0] {
						continue
					}
					if status := inv.StatusAt(time.Now()); status != models.InviteActive {
						return fmt.Errorf("invite %s is %s", inv.ID, status)
					}
					if err = a.Copy(inv.Link); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Link copied to clipboard")
					return nil
				}
				if !page.HasNextPage {
					return fmt.Errorf("invite %s not found", args[0])
				}
				params.Page++
			}
		}),
	}
}
