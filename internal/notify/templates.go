package notify

import (
	"fmt"
	"html"
)

// Content is a rendered notification
type Content struct {
	Subject string
	Body    string
}

// NewLeadEmail notifies staff about a freshly captured lead
func NewLeadEmail(name, email, phone, service, method string) Content {
	return Content{
		Subject: fmt.Sprintf("New lead: %s", name),
		Body: fmt.Sprintf(
			"<p>A new lead was submitted.</p><ul><li>Name: %s</li><li>Email: %s</li><li>Phone: %s</li><li>Service: %s</li><li>Attribution: %s</li></ul>",
			html.EscapeString(name), html.EscapeString(email), html.EscapeString(phone),
			html.EscapeString(service), html.EscapeString(method),
		),
	}
}

// ReferralLeadSMS tells a referrer that someone they referred signed up
func ReferralLeadSMS(referrerFirstName, leadFirstName string) string {
	return fmt.Sprintf("Hi %s, good news: %s just requested a consultation through your referral.", referrerFirstName, leadFirstName)
}

// TicketCreatedEmail notifies staff about a new support ticket
func TicketCreatedEmail(number, subject, category, priority string) Content {
	return Content{
		Subject: fmt.Sprintf("[%s] %s", number, subject),
		Body: fmt.Sprintf(
			"<p>Ticket %s was opened.</p><ul><li>Category: %s</li><li>Priority: %s</li></ul>",
			html.EscapeString(number), html.EscapeString(category), html.EscapeString(priority),
		),
	}
}

// CommissionApprovedEmail tells a referrer a commission was approved
func CommissionApprovedEmail(firstName string, amountCents int64) Content {
	return Content{
		Subject: "Your referral commission was approved",
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>A commission of <strong>%s</strong> has been approved and will be included in your next payout.</p>",
			html.EscapeString(firstName), FormatCents(amountCents),
		),
	}
}

// FormatCents renders cents as dollars, e.g. 12345 -> $123.45
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
