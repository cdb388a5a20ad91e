package entity

import "github.com/slack-go/slack"

type Reaction struct {
	Name  string   `json:"name"`
	Users []string `json:"users"`
}

// Group is a named bucket of members ready for rendering.
type Group struct {
	Name    string
	Members []Member
}

// Message is a snapshot of a posted chat message.
type Message struct {
	Channel   string     `json:"channel"`
	Timestamp string     `json:"ts"`
	Text      string     `json:"text"`
	User      string     `json:"user,omitempty"`
	BotID     string     `json:"bot_id,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`
}

type ReactionEventType string

const (
	ReactionAdded   ReactionEventType = "reaction_added"
	ReactionRemoved ReactionEventType = "reaction_removed"
)

type ReactionEvent struct {
	Type      ReactionEventType
	User      string
	Reaction  string
	ItemUser  string
	Channel   string
	Timestamp string
}

type OutgoingMessage struct {
	Text   string
	Blocks []slack.Block
}

// PostResult is returned by the greet operations. Holiday results carry no
// posted message.
type PostResult struct {
	OK        bool   `json:"ok"`
	Channel   string `json:"channel,omitempty"`
	Timestamp string `json:"ts,omitempty"`
	Text      string `json:"text,omitempty"`
	Holiday   bool   `json:"-"`
}
