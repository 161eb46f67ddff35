package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/model"
	"github.com/footballhub/cli/internal/ui"
	"github.com/footballhub/cli/internal/ui/inbox"
	"github.com/footballhub/cli/internal/workflow"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"n"},
	Short:   "Read and act on your notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending notifications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if err := app.sess.Refresh(cmd.Context()); err != nil {
			return fail(err)
		}
		notifications := app.sess.Player.Notifications
		if len(notifications) == 0 {
			ui.Dim(os.Stdout, "No pending notifications")
			return nil
		}
		rows := make([][]string, len(notifications))
		for i, n := range notifications {
			actions := ""
			for j, a := range workflow.ActionsFor(n.Title) {
				if j > 0 {
					actions += ", "
				}
				actions += string(a)
			}
			rows[i] = []string{n.ID, n.Title, n.Message, n.Date, actions}
		}
		ui.Table(os.Stdout, []string{"ID", "Category", "Message", "Date", "Actions"}, rows)
		return nil
	},
}

var notificationsActCmd = &cobra.Command{
	Use:   "act <id> <action>",
	Short: "Perform a notification action",
	Long: `Perform a notification action.

Decision actions (approve, reject, accept) settle the notification in
place. Screen actions (accept on a match invitation, rate, submit-stats)
assemble the next screen and print the command that completes it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		n, ok := findNotification(args[0])
		if !ok {
			ui.InvalidAccess(os.Stdout)
			return api.ErrNotFound
		}
		out, err := app.router.Dispatch(cmd.Context(), &app.sess.Player, n, workflow.Action(args[1]))
		if err != nil {
			return fail(err)
		}
		renderOutcome(out)
		return nil
	},
}

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Open the interactive notification inbox",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if err := app.sess.Refresh(cmd.Context()); err != nil {
			return fail(err)
		}
		final, err := tea.NewProgram(inbox.New(&app.sess.Player, app.router), tea.WithAltScreen()).Run()
		if err != nil {
			return fail(err)
		}
		if m, ok := final.(inbox.Model); ok && m.Outcome() != nil {
			renderOutcome(*m.Outcome())
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll for new notifications until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		interval := time.Duration(app.cfg.Watch.IntervalSeconds) * time.Second
		watcher := workflow.NewWatcher(app.client, interval, func(n model.Notification) {
			ui.ToastWarn(os.Stdout, fmt.Sprintf("%s: %s", n.Title, n.Message))
		}, app.log)

		ui.Dim(os.Stdout, fmt.Sprintf("Watching for notifications every %s, ctrl+c to stop", interval))
		return watcher.Run(ctx)
	},
}

// findNotification looks an id up in the session's local list.
func findNotification(id string) (model.Notification, bool) {
	for _, n := range app.sess.Player.Notifications {
		if n.ID == id {
			return n, true
		}
	}
	return model.Notification{}, false
}

// settleNotification removes a notification after its deferred screen flow
// completed: server-side delete, local reconciliation, bundle cleanup.
// Failures are logged, not surfaced; the submission itself already
// succeeded.
func settleNotification(cmd *cobra.Command, id string) {
	if err := app.client.DeleteNotification(cmd.Context(), app.sess.Player.Email, id); err != nil {
		app.log.Warn().Err(err).Str("notification", id).Msg("notification delete failed")
	}
	app.sess.Player.Notifications = model.RemoveNotification(app.sess.Player.Notifications, id)
	if err := app.store.DeleteBundle(id); err != nil {
		app.log.Warn().Err(err).Str("notification", id).Msg("bundle cleanup failed")
	}
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd, notificationsActCmd)
	rootCmd.AddCommand(notificationsCmd, inboxCmd, watchCmd)
}
