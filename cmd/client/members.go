package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/client"
	"github.com/MKhiriev/legacy-keeper/models"
)

func parseRole(s string) (models.UserRole, error) {
	role := models.UserRole(strings.ToUpper(strings.TrimSpace(s)))
	switch role {
	case models.RoleAdmin, models.RoleContributor, models.RoleViewer:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q: want ADMIN, CONTRIBUTOR or VIEWER", s)
}

func (c *cli) newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage the members of the active vault",
	}
	cmd.AddCommand(
		c.newMembersListCmd(),
		c.newMembersInviteCmd(),
		c.newMembersRoleCmd(),
		c.newMembersRemoveCmd(),
		c.newMembersLeaveCmd(),
		c.newMembersTransferCmd(),
	)
	return cmd
}

func (c *cli) newMembersListCmd() *cobra.Command {
	var (
		params models.MembersQueryParams
		role   string
		status string
		pages  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&params.Search, "search", "", "search by name or email")
	cmd.Flags().StringVar(&role, "role", "", "ADMIN, CONTRIBUTOR or VIEWER")
	cmd.Flags().StringVar(&status, "status", "", "ACTIVE or PENDING")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, _ []string, a *client.App) error {
		if role != "" {
			r, err := parseRole(role)
			if err != nil {
				return err
			}
			params.Role = r
		}
		params.Status = models.MemberStatus(strings.ToUpper(status))

		data, err := loadPages(cmd.Context(), params, pages, a.Services.Members.List, a.Services.Members.NextPage)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tJOINED")
		for _, m := range data.Items() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.FullName, m.Email, m.Role, m.Status, m.JoinedDate)
		}
		return tw.Flush()
	})
	return cmd
}

func (c *cli) newMembersInviteCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "invite <email>",
		Short: "Invite someone by email",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&role, "role", string(models.RoleViewer), "ADMIN, CONTRIBUTOR or VIEWER")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
		r, err := parseRole(role)
		if err != nil {
			return err
		}
		res, err := a.Services.Members.Invite(cmd.Context(), models.InviteMemberRequest{Email: args[0], Role: r})
		if err != nil {
			return err
		}
		if res.Link != "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.Link)
		}
		return nil
	})
	return cmd
}

func (c *cli) newMembersRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <membership-id> <role>",
		Short: "Change the role of a member",
		Args:  cobra.ExactArgs(2),
		RunE: c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
			role, err := parseRole(args[1])
			if err != nil {
				return err
			}
			_, err = a.Services.Members.UpdateRole(cmd.Context(), args[0], role)
			return err
		}),
	}
}

func (c *cli) newMembersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <membership-id>",
		Short: "Remove a member from the vault",
		Args:  cobra.ExactArgs(1),
		RunE: c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
			return a.Services.Members.Remove(cmd.Context(), args[0])
		}),
	}
}

func (c *cli) newMembersLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave",
		Short: "Leave the active vault",
		Args:  cobra.NoArgs,
		RunE: c.action(inVault, func(cmd *cobra.Command, _ []string, a *client.App) error {
			_, err := a.Services.Members.Leave(cmd.Context(), a.Services.Session.ActiveVaultID())
			return err
		}),
	}
}

func (c *cli) newMembersTransferCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "transfer <membership-id>",
		Short: "Hand the active vault over to another member",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&password, "password", "", "your password (prompted when empty)")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
		pw, err := secret(cmd, password, "Password")
		if err != nil {
			return err
		}
		_, err = a.Services.Members.TransferOwnership(cmd.Context(), models.TransferOwnershipRequest{
			MembershipID: args[0],
			Password:     pw,
		})
		return err
	})
	return cmd
}

func (c *cli) newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <token-or-link>",
		Short: "Join a vault with an invite token or link",
		Args:  cobra.ExactArgs(1),
		RunE: c.action(signedIn, func(cmd *cobra.Command, args []string, a *client.App) error {
			res, err := a.Services.Members.Join(cmd.Context(), inviteToken(args[0]))
			if err != nil {
				return err
			}
			if res.VaultID != "" {
				return a.Services.Session.SetActiveVault(cmd.Context(), res.VaultID)
			}
			return nil
		}),
	}
}

// inviteToken accepts a bare token or a join link ending in /join/<token>.
func inviteToken(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	if i := strings.LastIndex(s, "/join/"); i >= 0 {
		return s[i+len("/join/"):]
	}
	return s
}
