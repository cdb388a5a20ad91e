package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/diegoclair/slack-greet-bot/internal/metrics"
	"go.uber.org/zap"
)

type greetService struct {
	directory contract.Directory
	reactions contract.ReactionSource
	roster    contract.RosterSource
	holidays  contract.HolidayCalendar
	messenger contract.Messenger
	botUserID string
	loc       *time.Location
	now       func() time.Time
	log       *zap.Logger
}

func newGreet(deps Dependencies) *greetService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &greetService{
		directory: deps.Directory,
		reactions: deps.Reactions,
		roster:    deps.Roster,
		holidays:  deps.Holidays,
		messenger: deps.Messenger,
		botUserID: deps.BotUserID,
		loc:       deps.Location,
		now:       now,
		log:       deps.Logger,
	}
}

func (s *greetService) GreetStart(ctx context.Context, channelID string) (*entity.PostResult, error) {
	return s.greet(ctx, "start", channelID, func(now time.Time) (entity.OutgoingMessage, error) {
		groups, err := s.groups(ctx, now, nil)
		if err != nil {
			return entity.OutgoingMessage{}, err
		}
		return renderStart(now, groups), nil
	})
}

func (s *greetService) GreetEnd(ctx context.Context, channelID string) (*entity.PostResult, error) {
	return s.greet(ctx, "end", channelID, func(now time.Time) (entity.OutgoingMessage, error) {
		return renderEnd(now), nil
	})
}

func (s *greetService) greet(ctx context.Context, kind, channelID string, build func(time.Time) (entity.OutgoingMessage, error)) (*entity.PostResult, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, domain.ErrInvalidParams
	}

	now := s.now().In(s.loc)
	log := s.log.With(zap.String("kind", kind), zap.String("channel", channelID))

	holiday, err := s.holidays.IsHoliday(ctx, now)
	if err != nil {
		metrics.Greetings.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("failed to check holiday: %w", err)
	}
	if holiday {
		log.Info("skipping greeting on holiday", zap.String("date", now.Format(time.DateOnly)))
		metrics.Greetings.WithLabelValues(kind, "holiday").Inc()
		return &entity.PostResult{OK: true, Holiday: true}, nil
	}

	msg, err := build(now)
	if err != nil {
		metrics.Greetings.WithLabelValues(kind, "error").Inc()
		return nil, err
	}

	result, err := s.messenger.Post(ctx, channelID, msg)
	if err != nil {
		metrics.Greetings.WithLabelValues(kind, "error").Inc()
		return nil, err
	}

	log.Info("greeting posted", zap.String("ts", result.Timestamp))
	metrics.Greetings.WithLabelValues(kind, "posted").Inc()
	return result, nil
}

// HandleReaction re-renders a morning greeting after one of its reactions
// changed. Events on anything else are ignored.
func (s *greetService) HandleReaction(ctx context.Context, event entity.ReactionEvent) error {
	log := s.log.With(
		zap.String("channel", event.Channel),
		zap.String("ts", event.Timestamp),
		zap.String("reaction", event.Reaction),
	)

	if event.ItemUser != s.botUserID {
		metrics.ReactionUpdates.WithLabelValues("ignored").Inc()
		return nil
	}

	msg, err := s.reactions.Apply(ctx, event)
	if err != nil {
		metrics.ReactionUpdates.WithLabelValues("error").Inc()
		return err
	}
	if msg == nil {
		log.Debug("reacted message not found")
		metrics.ReactionUpdates.WithLabelValues("ignored").Inc()
		return nil
	}
	if !strings.HasPrefix(msg.Text, domain.StartTrigger) {
		log.Debug("ignoring reaction on non greeting message", zap.String("text", msg.Text))
		metrics.ReactionUpdates.WithLabelValues("ignored").Inc()
		return nil
	}

	date, err := parseTimestamp(event.Timestamp)
	if err != nil {
		metrics.ReactionUpdates.WithLabelValues("error").Inc()
		return err
	}
	date = date.In(s.loc)

	groups, err := s.groups(ctx, date, msg.Reactions)
	if err != nil {
		metrics.ReactionUpdates.WithLabelValues("error").Inc()
		return err
	}

	if err := s.messenger.Update(ctx, event.Channel, event.Timestamp, renderStart(date, groups)); err != nil {
		metrics.ReactionUpdates.WithLabelValues("error").Inc()
		return err
	}

	log.Debug("greeting updated")
	metrics.ReactionUpdates.WithLabelValues("updated").Inc()
	return nil
}

func (s *greetService) groups(ctx context.Context, date time.Time, reactions []entity.Reaction) ([]entity.Group, error) {
	members, err := s.directory.ActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	return Reconcile(members, reactions, s.fetchRoster(ctx, date)), nil
}

// fetchRoster reads every category for the date. A category that cannot be
// read is left empty.
func (s *greetService) fetchRoster(ctx context.Context, date time.Time) entity.Roster {
	var roster entity.Roster
	for _, category := range entity.Categories {
		ids, err := s.roster.Members(ctx, date, category)
		if err != nil {
			s.log.Warn("failed to fetch roster category",
				zap.String("category", string(category)),
				zap.String("date", date.Format(time.DateOnly)),
				zap.Error(err),
			)
			continue
		}
		roster.Set(category, ids)
	}
	return roster
}

// parseTimestamp converts a message ts such as "1712300000.000100" to the
// time it was posted.
func parseTimestamp(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, ts)
	}

	var usec int64
	if fracPart != "" {
		if usec, err = strconv.ParseInt(fracPart, 10, 64); err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, ts)
		}
	}

	return time.Unix(sec, usec*int64(time.Microsecond)), nil
}
