// Package handlers exposes the greet service over HTTP and Slack events.
package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"go.uber.org/zap"
)

const defaultEventTimeout = 30 * time.Second

type Handler struct {
	greet         contract.GreetService
	signingSecret string
	eventTimeout  time.Duration
	log           *zap.Logger

	inflight sync.WaitGroup
}

func New(greet contract.GreetService, signingSecret string, log *zap.Logger) *Handler {
	return &Handler{
		greet:         greet,
		signingSecret: signingSecret,
		eventTimeout:  defaultEventTimeout,
		log:           log,
	}
}

// Wait blocks until every dispatched reaction event has been handled.
func (h *Handler) Wait() {
	h.inflight.Wait()
}

// dispatch handles a reaction event in the background. The event has already
// been acknowledged, so the caller's cancellation must not abort it.
func (h *Handler) dispatch(ctx context.Context, event entity.ReactionEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.eventTimeout)

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		defer cancel()

		if err := h.greet.HandleReaction(ctx, event); err != nil {
			h.log.Error("failed to handle reaction",
				zap.String("type", string(event.Type)),
				zap.String("channel", event.Channel),
				zap.String("ts", event.Timestamp),
				zap.Error(err),
			)
		}
	}()
}
