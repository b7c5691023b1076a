package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VETechnologiesCo/VPCO/internal/model"
	"github.com/VETechnologiesCo/VPCO/pkg/slack"
)

// NotifyOutcome is the result class of a notification attempt.
type NotifyOutcome string

const (
	NotifySent    NotifyOutcome = "sent"
	NotifySkipped NotifyOutcome = "skipped"
	NotifyFailed  NotifyOutcome = "failed"
)

// NotifyResult carries the outcome and, for skipped or failed attempts,
// the reason.
type NotifyResult struct {
	Outcome NotifyOutcome
	Err     error
}

// ContactNotifier announces a stored submission to an external sink.
// Implementations report failure through the result, never by panicking.
type ContactNotifier interface {
	Notify(ctx context.Context, c *model.ContactSubmission) NotifyResult
}

// NopNotifier skips every notification.
type NopNotifier struct{}

// Notify implements ContactNotifier.
func (NopNotifier) Notify(context.Context, *model.ContactSubmission) NotifyResult {
	return NotifyResult{Outcome: NotifySkipped, Err: errors.New("notifications disabled")}
}

// submittedLayout mirrors the en-US locale date-time format.
const submittedLayout = "1/2/2006, 3:04:05 PM"

// SlackNotifier posts a Block Kit summary of each submission to Slack.
type SlackNotifier struct {
	client   slack.Client
	location *time.Location
}

// NewSlackNotifier creates a SlackNotifier. Submission times are rendered
// in loc (time.Local when nil).
func NewSlackNotifier(client slack.Client, loc *time.Location) *SlackNotifier {
	if loc == nil {
		loc = time.Local
	}
	return &SlackNotifier{client: client, location: loc}
}

// Notify implements ContactNotifier.
func (n *SlackNotifier) Notify(ctx context.Context, c *model.ContactSubmission) NotifyResult {
	err := n.client.PostMessage(ctx, n.Message(c))
	switch {
	case err == nil:
		return NotifyResult{Outcome: NotifySent}
	case errors.Is(err, slack.ErrNotConfigured):
		return NotifyResult{Outcome: NotifySkipped, Err: err}
	default:
		return NotifyResult{Outcome: NotifyFailed, Err: err}
	}
}

// Message builds the Slack payload for c.
func (n *SlackNotifier) Message(c *model.ContactSubmission) slack.Message {
	submitted := c.Timestamp.In(n.location).Format(submittedLayout)
	return slack.Message{
		Text: "🔔 New Contact Form Submission",
		Blocks: []slack.Block{
			slack.Header("📬 New Contact Form Submission"),
			slack.Fields(
				slack.Markdown("*Name:*\n"+n.clean(c.Name)),
				slack.Markdown("*Email:*\n"+n.clean(c.Email)),
			),
			slack.Section(slack.Markdown("*Message:*\n"+n.clean(c.Message))),
			slack.Context(slack.Markdown(fmt.Sprintf("Submitted: %s | ID: %d", submitted, c.ID))),
		},
	}
}

// clean escapes user-supplied text so Slack shows it verbatim.
func (n *SlackNotifier) clean(s string) string {
	return slack.EscapeText(s)
}
