package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"github.com/diegoclair/slack-greet-bot/internal/domain/contract"
	"go.uber.org/zap"
)

const retryDelay = 30 * time.Second

// Schedule configures the built-in greeting trigger. An empty cron disables
// that greeting.
type Schedule struct {
	Channels  []string
	StartCron string
	EndCron   string
}

type job struct {
	kind string
	cron string
	run  func(ctx context.Context, channelID string) error
}

type scheduler struct {
	channels []string
	jobs     []job
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func newScheduler(greet contract.GreetService, schedule Schedule, loc *time.Location, now func() time.Time, log *zap.Logger) (*scheduler, error) {
	s := &scheduler{
		channels: schedule.Channels,
		loc:      loc,
		now:      now,
		log:      log,
	}

	candidates := []job{
		{kind: "start", cron: schedule.StartCron, run: func(ctx context.Context, ch string) error {
			_, err := greet.GreetStart(ctx, ch)
			return err
		}},
		{kind: "end", cron: schedule.EndCron, run: func(ctx context.Context, ch string) error {
			_, err := greet.GreetEnd(ctx, ch)
			return err
		}},
	}
	for _, j := range candidates {
		if j.cron == "" {
			continue
		}
		if !gronx.IsValid(j.cron) {
			return nil, fmt.Errorf("invalid %s greeting cron expression: %s", j.kind, j.cron)
		}
		s.jobs = append(s.jobs, j)
	}

	return s, nil
}

// Enabled reports whether there is anything to schedule.
func (s *scheduler) Enabled() bool {
	return len(s.jobs) > 0 && len(s.channels) > 0
}

// Run posts the scheduled greetings until ctx is cancelled.
func (s *scheduler) Run(ctx context.Context) {
	if !s.Enabled() {
		return
	}

	s.log.Info("scheduler started", zap.Int("jobs", len(s.jobs)), zap.Strings("channels", s.channels))

	ref := s.now()
	for {
		next, due, err := s.nextRun(ref)
		if err != nil {
			s.log.Error("failed to compute next greeting", zap.Error(err))
			select {
			case <-time.After(retryDelay):
				ref = s.now()
				continue
			case <-ctx.Done():
				s.log.Info("scheduler stopping")
				return
			}
		}

		s.log.Debug("next greeting scheduled", zap.Time("at", next), zap.Int("jobs", len(due)))

		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-timer.C:
			s.runJobs(ctx, due)
			ref = next
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("scheduler stopping")
			return
		}
	}
}

// nextRun returns the earliest tick strictly after ref and the jobs due then.
func (s *scheduler) nextRun(ref time.Time) (time.Time, []job, error) {
	ref = ref.In(s.loc)

	var (
		earliest time.Time
		due      []job
	)
	for _, j := range s.jobs {
		next, err := gronx.NextTickAfter(j.cron, ref, false)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("failed to compute next %s tick: %w", j.kind, err)
		}

		switch {
		case earliest.IsZero() || next.Before(earliest):
			earliest = next
			due = []job{j}
		case next.Equal(earliest):
			due = append(due, j)
		}
	}

	return earliest, due, nil
}

func (s *scheduler) runJobs(ctx context.Context, jobs []job) {
	for _, j := range jobs {
		for _, ch := range s.channels {
			if err := j.run(ctx, ch); err != nil {
				s.log.Error("scheduled greeting failed",
					zap.String("kind", j.kind),
					zap.String("channel", ch),
					zap.Error(err),
				)
			}
		}
	}
}
