package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// AuthTestContext identifies the bot user behind the token
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)

	// GetUsersContext lists every member of the workspace
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)

	// GetConversationHistoryContext reads messages of a channel
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessageContext edits a message in place
	UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
}
