package telegram

import (
	"fmt"
	"strings"
	"time"
)

// Day/month/year with a 24-hour clock, matching the notification the
// chat owner has always received.
const timestampLayout = "02/01/2006, 15:04:05"

// Ampersand is handled in the same pass as the angle brackets, so
// entities introduced by the tag replacements are never double-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes the characters Telegram's HTML parse mode treats as
// markup. Single-pass on the raw input; idempotence is not a goal.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// LeadData holds the submission fields for one chat notification.
type LeadData struct {
	Name     string
	Phone    string
	Username string
	Company  string
	Message  string
}

// FormatLead renders the fixed notification template. User content is
// escaped, the structural tags stay as markup. Empty company renders as
// "-", the username is displayed with exactly one leading "@".
func FormatLead(data LeadData, now time.Time) string {
	username := data.Username
	if !strings.HasPrefix(username, "@") {
		username = "@" + username
	}
	company := data.Company
	if company == "" {
		company = "-"
	}

	return fmt.Sprintf(
		"<b>New Lead — Sarvar Umarov</b>\n"+
			"👤 Ism: %s\n"+
			"📞 Telefon: %s\n"+
			"💬 Telegram: %s\n"+
			"🏢 Kompaniya: %s\n"+
			"📝 Xabar: %s\n"+
			"🕒 %s",
		EscapeHTML(data.Name),
		EscapeHTML(data.Phone),
		EscapeHTML(username),
		EscapeHTML(company),
		EscapeHTML(data.Message),
		now.Format(timestampLayout),
	)
}
