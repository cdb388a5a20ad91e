package slackapi

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-greet-bot/internal/cache"
	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/diegoclair/slack-greet-bot/internal/metrics"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// ActiveMembers returns the humans of the workspace: bots, apps, deleted
// accounts and Slackbot are left out.
func (c *Client) ActiveMembers(ctx context.Context) ([]entity.Member, error) {
	var members []entity.Member
	hit, err := c.cache.Get(ctx, cache.DirectoryKey, &members)
	if err != nil {
		c.log.Warn("cache read failed", zap.String("key", cache.DirectoryKey), zap.Error(err))
	}
	metrics.CacheLookups.WithLabelValues("directory", metrics.CacheResult(hit)).Inc()
	if hit {
		c.log.Debug("cache hit", zap.String("key", cache.DirectoryKey))
		return members, nil
	}

	users, err := c.api.GetUsersContext(ctx)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("slack").Inc()
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	members = make([]entity.Member, 0, len(users))
	for _, u := range users {
		if !isActiveHuman(u) {
			continue
		}
		members = append(members, entity.Member{
			ID:          u.ID,
			DisplayName: u.Profile.DisplayName,
			RealName:    u.RealName,
		})
	}

	if err := c.cache.Set(ctx, cache.DirectoryKey, members, domain.DirectoryTTL); err != nil {
		c.log.Warn("cache write failed", zap.String("key", cache.DirectoryKey), zap.Error(err))
	}
	return members, nil
}

func isActiveHuman(u slack.User) bool {
	return !u.IsBot && !u.IsAppUser && !u.Deleted && u.ID != domain.SlackbotUserID
}
