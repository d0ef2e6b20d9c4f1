package notifier

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/leyangloh/progress-bot/internal/domain"
	apperrors "github.com/leyangloh/progress-bot/internal/errors"
	"github.com/leyangloh/progress-bot/internal/report"
)

// slackNotifier implements Notifier using the Slack Web API
type slackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a notifier that posts to a Slack channel or
// user ID. Extra options are passed through to the Slack client; tests
// use slack.OptionAPIURL to point at a local server.
func NewSlackNotifier(token, channel string, opts ...slack.Option) Notifier {
	return &slackNotifier{
		client:  slack.New(token, opts...),
		channel: channel,
	}
}

// Send posts the report via chat.postMessage with a plain-text fallback
func (n *slackNotifier) Send(ctx context.Context, r *domain.Report) error {
	_, _, err := n.client.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(report.FallbackText(r), false),
		slack.MsgOptionBlocks(report.Blocks(r)...),
	)
	if err != nil {
		return apperrors.NewDeliveryError("failed to post report to Slack", err)
	}
	return nil
}
