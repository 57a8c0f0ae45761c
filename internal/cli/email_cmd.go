package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/alexanderramin/workclock/internal/mail"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const loginTimeout = 5 * time.Minute

func newEmailCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Configure report email delivery",
	}

	cmd.AddCommand(
		newEmailShowCmd(app),
		newEmailRecipientsCmd(app),
		newEmailTemplateCmd(app),
		newEmailSenderCmd(app),
		newEmailAutoSendCmd(app),
		newEmailLoginCmd(app),
		newEmailLogoutCmd(app),
	)

	return cmd
}

func newEmailShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show email settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Email.Get(cmd.Context())
			if err != nil {
				return err
			}
			transport := app.Transport
			if transport == "" {
				transport = "none"
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEmailConfig(c, transport))
			return nil
		},
	}
}

func newEmailRecipientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipients",
		Short: "Manage report recipients",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add ADDRESS...",
			Short: "Add one or more recipients",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, addr := range args {
					c, err := app.Email.AddRecipient(cmd.Context(), addr)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Recipients: %s\n", strings.Join(c.Recipients, ", "))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove ADDRESS",
			Aliases: []string{"rm"},
			Short:   "Remove a recipient",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := app.Email.RemoveRecipient(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !c.HasRecipients() {
					fmt.Fprintln(cmd.OutOrStdout(), "No recipients left.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recipients: %s\n", strings.Join(c.Recipients, ", "))
				return nil
			},
		},
	)

	return cmd
}

func newEmailTemplateCmd(app *App) *cobra.Command {
	var subject, body string
	var reset bool

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Set the report subject and body; {month} and {year} are filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if reset {
				subject, body = "", ""
			} else {
				current, err := app.Email.Get(ctx)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("subject") {
					subject = current.Subject
				}
				if !cmd.Flags().Changed("body") {
					body = current.Body
				}
			}

			if err := app.Email.SetTemplate(ctx, subject, body); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Email template saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject line")
	cmd.Flags().StringVar(&body, "body", "", "Message body")
	cmd.Flags().BoolVar(&reset, "reset", false, "Restore the default subject and body")

	return cmd
}

func newEmailSenderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sender ADDRESS",
		Short: "Set the From address used for SMTP delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Email.SetSender(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sender set to %s\n", args[0])
			return nil
		},
	}
}

func newEmailAutoSendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "auto-send on|off",
		Short:     "Send last month's report automatically on the 1st",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch strings.ToLower(args[0]) {
			case "on", "true", "yes":
				enabled = true
			case "off", "false", "no":
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}

			if err := app.Email.SetAutoSend(cmd.Context(), enabled); err != nil {
				return err
			}
			if enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Auto-send enabled. Run `workclock autosend daemon` to deliver on the 1st.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Auto-send disabled.")
			}
			return nil
		},
	}
}

func newEmailLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in to Gmail to send reports from your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.OAuth.Configured() {
				return errors.New("gmail.client_id and gmail.client_secret must be configured to sign in")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), loginTimeout)
			defer cancel()

			cfg := app.OAuth.Config()
			state := uuid.NewString()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Open this URL in your browser to sign in:\n\n  %s\n\n", mail.AuthURL(cfg, state))
			fmt.Fprintln(out, formatter.Dim("Waiting for the redirect to "+app.OAuth.RedirectURL+" ..."))

			code, err := mail.WaitForCode(ctx, app.OAuth.RedirectURL, state)
			if err != nil {
				return fmt.Errorf("waiting for sign-in: %w", err)
			}
			tok, err := mail.Exchange(ctx, cfg, code)
			if err != nil {
				return err
			}
			if err := app.Email.SaveToken(ctx, tok); err != nil {
				return err
			}

			addr, err := mail.NewGmailMailer(cfg, app.Email).SenderAddress(ctx)
			if err != nil {
				app.logger().WarnContext(ctx, "could not read gmail address", "error", err)
				fmt.Fprintln(out, "Signed in.")
				return nil
			}
			if err := app.Email.SetSender(ctx, addr); err != nil {
				return err
			}
			fmt.Fprintf(out, "Signed in as %s\n", addr)
			return nil
		},
	}
}

func newEmailLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored Gmail tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Email.ClearTokens(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
