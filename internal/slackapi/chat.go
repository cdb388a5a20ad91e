package slackapi

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/diegoclair/slack-greet-bot/internal/metrics"
	"github.com/slack-go/slack"
)

func (c *Client) Post(ctx context.Context, channelID string, msg entity.OutgoingMessage) (*entity.PostResult, error) {
	channel, ts, err := c.api.PostMessageContext(ctx, channelID, msgOptions(msg)...)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("slack").Inc()
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	return &entity.PostResult{
		OK:        true,
		Channel:   channel,
		Timestamp: ts,
		Text:      msg.Text,
	}, nil
}

func (c *Client) Update(ctx context.Context, channelID, timestamp string, msg entity.OutgoingMessage) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for update slot: %w", err)
	}

	if _, _, _, err := c.api.UpdateMessageContext(ctx, channelID, timestamp, msgOptions(msg)...); err != nil {
		metrics.UpstreamErrors.WithLabelValues("slack").Inc()
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

func msgOptions(msg entity.OutgoingMessage) []slack.MsgOption {
	return []slack.MsgOption{
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionBlocks(msg.Blocks...),
	}
}
