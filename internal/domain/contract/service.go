package contract

import (
	"context"

	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
)

type GreetService interface {
	GreetStart(ctx context.Context, channelID string) (*entity.PostResult, error)
	GreetEnd(ctx context.Context, channelID string) (*entity.PostResult, error)
	HandleReaction(ctx context.Context, event entity.ReactionEvent) error
}
