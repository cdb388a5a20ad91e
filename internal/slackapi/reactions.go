package slackapi

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/cache"
	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/diegoclair/slack-greet-bot/internal/metrics"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Apply returns the message the event refers to with its current reactions.
//
// A fresh snapshot already reflects the event. While the snapshot is cached,
// the reaction data kept next to it is patched with the event instead, so a
// burst of reactions costs one API call. The data outlives the snapshot; the
// next refresh replaces whatever drift the patches accumulated.
// Returns nil when the message no longer exists.
func (c *Client) Apply(ctx context.Context, event entity.ReactionEvent) (*entity.Message, error) {
	snapshotKey := cache.ReactionSnapshotKey(event.Channel, event.Timestamp)
	dataKey := cache.ReactionDataKey(event.Channel, event.Timestamp)

	var msg entity.Message
	hit, err := c.cache.Get(ctx, snapshotKey, &msg)
	if err != nil {
		c.log.Warn("cache read failed", zap.String("key", snapshotKey), zap.Error(err))
	}
	metrics.CacheLookups.WithLabelValues("reactions", metrics.CacheResult(hit)).Inc()

	if !hit {
		fresh, err := c.Snapshot(ctx, event.Channel, event.Timestamp)
		if err != nil || fresh == nil {
			return fresh, err
		}
		c.store(ctx, snapshotKey, fresh, domain.ReactionSnapshotTTL)
		c.store(ctx, dataKey, fresh.Reactions, domain.ReactionDataTTL)
		return fresh, nil
	}

	c.log.Debug("cache hit", zap.String("key", snapshotKey))

	var reactions []entity.Reaction
	found, err := c.cache.Get(ctx, dataKey, &reactions)
	if err != nil {
		c.log.Warn("cache read failed", zap.String("key", dataKey), zap.Error(err))
	}
	if !found {
		return &msg, nil
	}

	reactions = patchReactions(reactions, event)
	c.store(ctx, dataKey, reactions, domain.ReactionDataTTL)

	msg.Reactions = reactions
	return &msg, nil
}

// Snapshot reads a single message and its reactions from the channel history.
func (c *Client) Snapshot(ctx context.Context, channel, ts string) (*entity.Message, error) {
	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channel,
		Latest:    ts,
		Oldest:    ts,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("slack").Inc()
		return nil, fmt.Errorf("failed to read message %s/%s: %w", channel, ts, err)
	}

	for _, m := range resp.Messages {
		if m.Timestamp != ts {
			continue
		}
		msg := &entity.Message{
			Channel:   channel,
			Timestamp: m.Timestamp,
			Text:      m.Text,
			User:      m.User,
			BotID:     m.BotID,
			Reactions: make([]entity.Reaction, 0, len(m.Reactions)),
		}
		for _, r := range m.Reactions {
			msg.Reactions = append(msg.Reactions, entity.Reaction{Name: r.Name, Users: r.Users})
		}
		return msg, nil
	}

	return nil, nil
}

func (c *Client) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := c.cache.Set(ctx, key, value, ttl); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// patchReactions applies one add or remove to the reaction list. New
// reactions go last; a reaction nobody holds any more is dropped.
func patchReactions(reactions []entity.Reaction, event entity.ReactionEvent) []entity.Reaction {
	idx := slices.IndexFunc(reactions, func(r entity.Reaction) bool { return r.Name == event.Reaction })

	switch event.Type {
	case entity.ReactionAdded:
		if idx < 0 {
			return append(reactions, entity.Reaction{Name: event.Reaction, Users: []string{event.User}})
		}
		if !slices.Contains(reactions[idx].Users, event.User) {
			reactions[idx].Users = append(reactions[idx].Users, event.User)
		}

	case entity.ReactionRemoved:
		if idx < 0 {
			return reactions
		}
		reactions[idx].Users = slices.DeleteFunc(reactions[idx].Users, func(u string) bool { return u == event.User })
		if len(reactions[idx].Users) == 0 {
			reactions = slices.Delete(reactions, idx, idx+1)
		}
	}

	return reactions
}
