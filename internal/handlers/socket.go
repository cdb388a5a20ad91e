package handlers

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"
)

type acker interface {
	Ack(req socketmode.Request, payload ...interface{})
}

// SocketMode receives Slack events over a Socket Mode websocket instead of
// the public events endpoint.
type SocketMode struct {
	client  *socketmode.Client
	handler *Handler
	log     *zap.Logger
}

func NewSocketMode(api *slack.Client, handler *Handler, log *zap.Logger) *SocketMode {
	return &SocketMode{
		client:  socketmode.New(api),
		handler: handler,
		log:     log,
	}
}

// Run connects and processes events until ctx is cancelled.
func (s *SocketMode) Run(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-s.client.Events:
				if !ok {
					return
				}
				s.handle(ctx, s.client, evt)
			}
		}
	}()

	return s.client.RunContext(ctx)
}

func (s *SocketMode) handle(ctx context.Context, ack acker, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		s.log.Info("connecting to slack with socket mode")
	case socketmode.EventTypeConnected:
		s.log.Info("connected to slack with socket mode")
	case socketmode.EventTypeConnectionError:
		s.log.Warn("socket mode connection failed, retrying")
	case socketmode.EventTypeEventsAPI:
		if evt.Request != nil {
			ack.Ack(*evt.Request)
		}

		event, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok || event.Type != slackevents.CallbackEvent {
			return
		}
		if reaction, ok := reactionEvent(event.InnerEvent); ok {
			s.handler.dispatch(ctx, reaction)
		}
	}
}
