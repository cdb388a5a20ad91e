package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// HandleEvents receives Slack Events API callbacks. Reaction events are
// acknowledged right away and handled in the background.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	// an empty secret would accept requests signed with an empty key
	if h.signingSecret == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if !json.Valid(body) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		// unsupported inner event types; answering 200 stops Slack from retrying
		h.log.Warn("ignoring unparsable event", zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		challenge, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		if reaction, ok := reactionEvent(event.InnerEvent); ok {
			h.dispatch(r.Context(), reaction)
		}
	}

	w.WriteHeader(http.StatusOK)
}

// reactionEvent extracts a reaction change from an inner event. Reactions on
// files and file comments carry no message and are skipped.
func reactionEvent(inner slackevents.EventsAPIInnerEvent) (entity.ReactionEvent, bool) {
	var (
		ev  entity.ReactionEvent
		msg slackevents.Item
	)

	switch data := inner.Data.(type) {
	case *slackevents.ReactionAddedEvent:
		ev = entity.ReactionEvent{Type: entity.ReactionAdded, User: data.User, Reaction: data.Reaction, ItemUser: data.ItemUser}
		msg = data.Item
	case *slackevents.ReactionRemovedEvent:
		ev = entity.ReactionEvent{Type: entity.ReactionRemoved, User: data.User, Reaction: data.Reaction, ItemUser: data.ItemUser}
		msg = data.Item
	default:
		return entity.ReactionEvent{}, false
	}

	if msg.Type != "" && msg.Type != "message" {
		return entity.ReactionEvent{}, false
	}

	ev.Channel = msg.Channel
	ev.Timestamp = msg.Timestamp
	return ev, true
}
