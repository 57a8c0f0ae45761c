package domain

import "strings"

// EmailConfig holds report delivery preferences and the stored OAuth tokens.
type EmailConfig struct {
	SenderEmail     string
	Recipients      []string
	Subject         string
	Body            string
	AutoSendEnabled bool
	AccessToken     string
	RefreshToken    string
	// LastAutoSent is the last month delivered by auto-send; zero when none.
	LastAutoSent YearMonth
}

// HasRecipients reports whether at least one recipient is configured.
func (c EmailConfig) HasRecipients() bool {
	return len(c.Recipients) > 0
}

// SignedIn reports whether an OAuth refresh token is stored.
func (c EmailConfig) SignedIn() bool {
	return c.RefreshToken != ""
}

// AddRecipient appends addr unless it is already present (case-insensitive).
// It reports whether the list changed.
func (c *EmailConfig) AddRecipient(addr string) bool {
	addr = strings.TrimSpace(addr)
	for _, r := range c.Recipients {
		if strings.EqualFold(r, addr) {
			return false
		}
	}
	c.Recipients = append(c.Recipients, addr)
	return true
}

// RemoveRecipient drops addr (case-insensitive) and reports whether it was present.
func (c *EmailConfig) RemoveRecipient(addr string) bool {
	addr = strings.TrimSpace(addr)
	kept := c.Recipients[:0]
	removed := false
	for _, r := range c.Recipients {
		if strings.EqualFold(r, addr) {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	c.Recipients = kept
	return removed
}
