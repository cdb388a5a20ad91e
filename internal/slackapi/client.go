// Package slackapi adapts the Slack Web API to the bot's collaborators:
// the member directory, reaction snapshots of greeting messages, and
// posting or updating messages.
package slackapi

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"github.com/diegoclair/slack-greet-bot/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Client struct {
	api     contract.SlackClient
	cache   contract.Cache
	limiter *rate.Limiter
	log     *zap.Logger
}

// New wraps api. limiter throttles message updates, which bursts of
// reactions would otherwise trigger faster than Slack accepts; nil means
// no throttling.
func New(api contract.SlackClient, c contract.Cache, limiter *rate.Limiter, log *zap.Logger) *Client {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Client{
		api:     api,
		cache:   c,
		limiter: limiter,
		log:     log,
	}
}

// BotUserID returns the user ID of the bot behind the token.
func (c *Client) BotUserID(ctx context.Context) (string, error) {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("slack").Inc()
		return "", fmt.Errorf("failed to identify bot user: %w", err)
	}
	return resp.UserID, nil
}
