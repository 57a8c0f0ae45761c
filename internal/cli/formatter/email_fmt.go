package formatter

import (
	"strings"

	"github.com/alexanderramin/workclock/internal/domain"
)

// FormatEmailConfig renders delivery preferences. Tokens are never shown.
func FormatEmailConfig(c *domain.EmailConfig, transport string) string {
	recipients := Dim("none")
	if c.HasRecipients() {
		recipients = strings.Join(c.Recipients, ", ")
	}
	autoSend := StyleDim.Render("off")
	if c.AutoSendEnabled {
		autoSend = StyleGreen.Render("on")
	}
	if c.LastAutoSent != (domain.YearMonth{}) {
		autoSend += Dim(" (last sent " + c.LastAutoSent.Title() + ")")
	}
	signedIn := StyleDim.Render("no")
	if c.SignedIn() {
		signedIn = StyleGreen.Render("yes")
	}

	return RenderBox("Email", RenderPairs([][2]string{
		{"Transport", transport},
		{"Sender", orDefault(c.SenderEmail, "")},
		{"Recipients", recipients},
		{"Subject", orDefault(c.Subject, "default")},
		{"Body", orDefault(c.Body, "default")},
		{"Auto-send", autoSend},
		{"Gmail signed in", signedIn},
	}))
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	if def == "" {
		return Dim("none")
	}
	return Dim(def)
}
