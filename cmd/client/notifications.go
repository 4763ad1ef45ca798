package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/client"
	"github.com/MKhiriev/legacy-keeper/internal/service"
	"github.com/MKhiriev/legacy-keeper/internal/workers"
	"github.com/MKhiriev/legacy-keeper/models"
)

func (c *cli) newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notes"},
		Short:   "Read the notification feed",
		Args:    cobra.NoArgs,
		RunE: c.action(signedIn, func(cmd *cobra.Command, _ []string, a *client.App) error {
			center := a.Services.Notifications
			if err := center.Refresh(cmd.Context()); err != nil {
				return err
			}
			printNotifications(cmd.OutOrStdout(), center.Notifications())
			fmt.Fprintf(cmd.OutOrStdout(), "%d unread\n", center.UnreadCount())
			return nil
		}),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "read [notification-id]",
			Short: "Mark one notification, or the whole feed, read",
			Args:  cobra.MaximumNArgs(1),
			RunE: c.action(signedIn, func(cmd *cobra.Command, args []string, a *client.App) error {
				if len(args) == 0 {
					return a.Services.Notifications.MarkAllRead(cmd.Context())
				}
				return a.Services.Notifications.MarkRead(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "dismiss <notification-id>",
			Short: "Delete one notification",
			Args:  cobra.ExactArgs(1),
			RunE: c.action(signedIn, func(cmd *cobra.Command, args []string, a *client.App) error {
				return a.Services.Notifications.Dismiss(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the whole feed",
			Args:  cobra.NoArgs,
			RunE: c.action(signedIn, func(cmd *cobra.Command, _ []string, a *client.App) error {
				return a.Services.Notifications.Clear(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Poll the feed and print new notifications until interrupted",
			Args:  cobra.NoArgs,
			RunE: c.action(signedIn, func(cmd *cobra.Command, _ []string, a *client.App) error {
				feed := newFeedPrinter(cmd.OutOrStdout(), a.Services.Notifications)
				printer := workers.NewTicker(time.Second, false, feed.printNew)
				printer.Start(cmd.Context())
				defer printer.Stop()

				return a.Watch(cmd.Context())
			}),
		},
		c.newPreferencesCmd(),
	)
	return cmd
}

func printNotifications(w io.Writer, items []models.Notification) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tWHEN\tTITLE\tMESSAGE")
	for _, n := range items {
		printNotification(tw, n)
	}
	_ = tw.Flush()
}

func printNotification(w io.Writer, n models.Notification) {
	mark := ""
	if !n.IsRead {
		mark = "*"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", mark, n.ID, n.CreatedAt.Local().Format(time.DateTime), n.Title, n.Message)
}

// feedPrinter prints notifications the center has not shown before.
type feedPrinter struct {
	w      io.Writer
	center service.NotificationCenter

	mu   sync.Mutex
	seen map[string]struct{}
}

func newFeedPrinter(w io.Writer, center service.NotificationCenter) *feedPrinter {
	return &feedPrinter{w: w, center: center, seen: make(map[string]struct{})}
}

func (p *feedPrinter) printNew(context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := p.center.Notifications()
	// oldest first so the terminal reads top to bottom
	for i := len(items) - 1; i >= 0; i-- {
		n := items[i]
		if _, ok := p.seen[n.ID]; ok {
			continue
		}
		p.seen[n.ID] = struct{}{}
		fmt.Fprintf(p.w, "[%s] %s: %s\n", n.CreatedAt.Local().Format(time.DateTime), n.Title, n.Message)
	}
}

// prefSwitch maps a flag onto one notification preference.
type prefSwitch struct {
	flag   string
	update func(*models.NotificationPreferencesUpdate) **bool
	value  func(models.NotificationPreferences) bool
}

var prefSwitches = []prefSwitch{
	{"in-app",
		func(u *models.NotificationPreferencesUpdate) **bool { return &u.InAppEnabled },
		func(p models.NotificationPreferences) bool { return p.InAppEnabled }},
	{"push",
		func(u *models.NotificationPreferencesUpdate) **bool { return &u.PushEnabled },
		func(p models.NotificationPreferences) bool { return p.PushEnabled }},
	{"new-uploads",
		func(u *models.NotificationPreferencesUpdate) **bool { return &u.NewUploads },
		func(p models.NotificationPreferences) bool { return p.NewUploads }},
	{"comments",
		func(u *models.NotificationPreferencesUpdate) **bool { return &u.Comments },
		func(p models.NotificationPreferences) bool { return p.Comments }},
	{"tree-updates",
		func(u *models.NotificationPreferencesUpdate) **bool { return &u.TreeUpdates },
		func(p models.NotificationPreferences) bool { return p.TreeUpdates }},
	{"security-alerts",
		func(u *models.NotificationPreferencesUpdate) **bool { return &u.SecurityAlerts },
		func(p models.NotificationPreferences) bool { return p.SecurityAlerts }},
	{"member-joins",
		func(u *models.NotificationPreferencesUpdate) **bool { return &u.MemberJoins },
		func(p models.NotificationPreferences) bool { return p.MemberJoins }},
}

func (c *cli) newPreferencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preferences",
		Short: "Show or change the notification switches",
		Args:  cobra.NoArgs,
	}
	values := make([]bool, len(prefSwitches))
	for i, sw := range prefSwitches {
		cmd.Flags().BoolVar(&values[i], sw.flag, false, "turn "+sw.flag+" notifications on or off")
	}

	cmd.RunE = c.action(signedIn, func(cmd *cobra.Command, _ []string, a *client.App) error {
		var upd models.NotificationPreferencesUpdate
		changed := false
		for i, sw := range prefSwitches {
			if cmd.Flags().Changed(sw.flag) {
				*sw.update(&upd) = &values[i]
				changed = true
			}
		}

		var (
			prefs models.NotificationPreferences
			err   error
		)
		if changed {
			prefs, err = a.Services.Notifications.UpdatePreferences(cmd.Context(), upd)
		} else {
			prefs, err = a.Services.Notifications.Preferences(cmd.Context())
		}
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, sw := range prefSwitches {
			fmt.Fprintf(tw, "%s\t%t\n", sw.flag, sw.value(prefs))
		}
		return tw.Flush()
	})
	return cmd
}
