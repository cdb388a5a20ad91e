package entity

import "github.com/diegoclair/slack-greet-bot/internal/domain"

type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	RealName    string `json:"real_name"`
}

// Name returns the display name, falling back to the real name and then to
// a placeholder.
func (m Member) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	if m.RealName != "" {
		return m.RealName
	}
	return domain.UnknownMember
}
