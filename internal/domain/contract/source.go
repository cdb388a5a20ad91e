package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
)

// Directory returns the active members of the workspace
type Directory interface {
	ActiveMembers(ctx context.Context) ([]entity.Member, error)
}

// ReactionSource returns the current reactions of a message, patched with
// the event that triggered the lookup
type ReactionSource interface {
	Apply(ctx context.Context, event entity.ReactionEvent) (*entity.Message, error)
}

// RosterSource returns the member IDs of one attendance category for a date
type RosterSource interface {
	Members(ctx context.Context, date time.Time, category entity.Category) ([]string, error)
}

type HolidayCalendar interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

type Messenger interface {
	Post(ctx context.Context, channelID string, msg entity.OutgoingMessage) (*entity.PostResult, error)
	Update(ctx context.Context, channelID, timestamp string, msg entity.OutgoingMessage) error
}

// SheetValues reads a range of cells from a spreadsheet
type SheetValues interface {
	Values(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
}
