package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

var endBody = []string{
	"在宅ワークの皆さん、お疲れ様です。",
	"%d:00を過ぎました。そろそろ皆さん終了の時間かと思います。",
	"本日も1日、お疲れ様でした。:chatwork_ありがとう:",
}

func title(trigger string, date time.Time) string {
	return trigger + " " + date.Format(domain.TitleDateLayout)
}

func headerBlock(text string) *slack.HeaderBlock {
	return slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, text, true, false))
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

// renderStart builds the morning greeting with one section per group.
// date must already be in the local timezone.
func renderStart(date time.Time, groups []entity.Group) entity.OutgoingMessage {
	t := title(domain.StartTrigger, date)

	blocks := []slack.Block{
		headerBlock(t),
		markdownSection("*Reactions*"),
		slack.NewDividerBlock(),
	}
	for _, g := range groups {
		blocks = append(blocks, markdownSection(groupText(g)))
	}
	blocks = append(blocks, slack.NewDividerBlock())

	return entity.OutgoingMessage{Text: t, Blocks: blocks}
}

func groupText(g entity.Group) string {
	text := fmt.Sprintf(":%s: (%d)", g.Name, len(g.Members))
	if len(g.Members) == 0 {
		return text
	}

	names := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		names = append(names, m.Name())
	}
	return text + "\n```" + strings.Join(names, ", ") + "```"
}

// renderEnd builds the evening greeting. The body mentions the current hour.
func renderEnd(now time.Time) entity.OutgoingMessage {
	t := title(domain.EndTrigger, now)
	body := strings.Join(endBody, "\n")

	return entity.OutgoingMessage{
		Text: t,
		Blocks: []slack.Block{
			headerBlock(t),
			markdownSection(fmt.Sprintf(body, now.Hour())),
		},
	}
}
