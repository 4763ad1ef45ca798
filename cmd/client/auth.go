package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/client"
	"github.com/MKhiriev/legacy-keeper/models"
)

func (c *cli) newRegisterCmd() *cobra.Command {
	var reg models.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account, optionally joining a vault with an invite token",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password (prompted when empty)")
	cmd.Flags().StringVar(&reg.JoinToken, "join-token", "", "invite token to redeem on sign-up")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	cmd.RunE = c.action(anyone, func(cmd *cobra.Command, _ []string, a *client.App) error {
		var err error
		if reg.Password, err = secret(cmd, reg.Password, "Password"); err != nil {
			return err
		}
		_, err = a.Services.Auth.Register(cmd.Context(), reg)
		return err
	})
	return cmd
}

func (c *cli) newLoginCmd() *cobra.Command {
	var creds models.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")

	cmd.RunE = c.action(anyone, func(cmd *cobra.Command, _ []string, a *client.App) error {
		var err error
		if creds.Password, err = secret(cmd, creds.Password, "Password"); err != nil {
			return err
		}
		_, err = a.Services.Auth.Login(cmd.Context(), creds)
		return err
	})
	return cmd
}

func (c *cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: c.action(anyone, func(cmd *cobra.Command, _ []string, a *client.App) error {
			return a.Services.Auth.Logout(cmd.Context())
		}),
	}
}

func (c *cli) newMeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: c.action(signedIn, func(cmd *cobra.Command, _ []string, a *client.App) error {
			user, err := a.Services.Auth.Me(cmd.Context())
			if err != nil {
				return err
			}
			printUser(cmd, user)
			if exp, ok := a.Services.Session.AccessTokenExpiry(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Access token valid until %s\n", exp.Local().Format(time.DateTime))
			}
			return nil
		}),
	}

	var name, bio string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change the name or bio of the signed-in account",
		Args:  cobra.NoArgs,
	}
	update.Flags().StringVar(&name, "name", "", "new full name")
	update.Flags().StringVar(&bio, "bio", "", "new bio")
	update.RunE = c.action(signedIn, func(cmd *cobra.Command, _ []string, a *client.App) error {
		var upd models.UserUpdate
		if cmd.Flags().Changed("name") {
			upd.FullName = &name
		}
		if cmd.Flags().Changed("bio") {
			upd.Bio = &bio
		}
		user, err := a.Services.Auth.UpdateMe(cmd.Context(), upd)
		if err != nil {
			return err
		}
		printUser(cmd, user)
		return nil
	})

	cmd.AddCommand(update)
	return cmd
}

func printUser(cmd *cobra.Command, user models.User) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", user.ID)
	fmt.Fprintf(tw, "Name\t%s\n", user.FullName)
	fmt.Fprintf(tw, "Email\t%s\n", user.Email)
	if user.Bio != "" {
		fmt.Fprintf(tw, "Bio\t%s\n", user.Bio)
	}
	fmt.Fprintf(tw, "Role\t%s\n", user.Role)
	fmt.Fprintf(tw, "Plan\t%s\n", user.SubscriptionTier)
	_ = tw.Flush()
}
