package service

import (
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// Dependencies are the collaborators of the greet service.
type Dependencies struct {
	Directory contract.Directory
	Reactions contract.ReactionSource
	Roster    contract.RosterSource
	Holidays  contract.HolidayCalendar
	Messenger contract.Messenger

	// BotUserID identifies the messages the bot posted itself.
	BotUserID string
	Location  *time.Location
	Schedule  Schedule

	// Now defaults to time.Now.
	Now    func() time.Time
	Logger *zap.Logger
}

type Instance struct {
	Greet     *greetService
	Scheduler *scheduler
}

func New(deps Dependencies) (*Instance, error) {
	greet := newGreet(deps)

	sched, err := newScheduler(greet, deps.Schedule, deps.Location, greet.now, deps.Logger)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Greet:     greet,
		Scheduler: sched,
	}, nil
}
