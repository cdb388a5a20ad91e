package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
	"github.com/diegoclair/slack-greet-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestScheduler(t *testing.T, schedule Schedule) (*scheduler, *mocks.MockGreetService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	greet := mocks.NewMockGreetService(ctrl)

	s, err := newScheduler(greet, schedule, tokyo(t), func() time.Time { return now }, zap.NewNop())
	require.NoError(t, err)
	return s, greet
}

func Test_newScheduler(t *testing.T) {
	tests := []struct {
		name        string
		schedule    Schedule
		wantJobs    int
		wantEnabled bool
		wantErr     bool
	}{
		{
			name:     "Should be disabled without crons",
			schedule: Schedule{Channels: []string{channelID}},
		},
		{
			name:     "Should be disabled without channels",
			schedule: Schedule{StartCron: "30 8 * * 1-5"},
			wantJobs: 1,
		},
		{
			name:        "Should register both greetings",
			schedule:    Schedule{Channels: []string{channelID}, StartCron: "30 8 * * 1-5", EndCron: "0 18 * * 1-5"},
			wantJobs:    2,
			wantEnabled: true,
		},
		{
			name:     "Should reject an invalid cron",
			schedule: Schedule{Channels: []string{channelID}, StartCron: "every morning"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, err := newScheduler(mocks.NewMockGreetService(ctrl), tt.schedule, tokyo(t), time.Now, zap.NewNop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, s.jobs, tt.wantJobs)
			assert.Equal(t, tt.wantEnabled, s.Enabled())
		})
	}
}

func Test_scheduler_nextRun(t *testing.T) {
	loc := tokyo(t)

	tests := []struct {
		name     string
		schedule Schedule
		ref      time.Time
		want     time.Time
		wantJobs []string
	}{
		{
			name:     "Should pick the start greeting in the morning",
			schedule: Schedule{Channels: []string{channelID}, StartCron: "30 8 * * 1-5", EndCron: "0 18 * * 1-5"},
			ref:      time.Date(2024, 4, 5, 7, 0, 0, 0, loc),
			want:     time.Date(2024, 4, 5, 8, 30, 0, 0, loc),
			wantJobs: []string{"start"},
		},
		{
			name:     "Should not return the tick it was given",
			schedule: Schedule{Channels: []string{channelID}, StartCron: "30 8 * * 1-5", EndCron: "0 18 * * 1-5"},
			ref:      time.Date(2024, 4, 5, 8, 30, 0, 0, loc),
			want:     time.Date(2024, 4, 5, 18, 0, 0, 0, loc),
			wantJobs: []string{"end"},
		},
		{
			name:     "Should skip the weekend",
			schedule: Schedule{Channels: []string{channelID}, StartCron: "30 8 * * 1-5", EndCron: "0 18 * * 1-5"},
			ref:      time.Date(2024, 4, 5, 19, 0, 0, 0, loc),
			want:     time.Date(2024, 4, 8, 8, 30, 0, 0, loc),
			wantJobs: []string{"start"},
		},
		{
			name:     "Should compute ticks in the configured timezone",
			schedule: Schedule{Channels: []string{channelID}, StartCron: "30 8 * * *"},
			// 2024-04-04 22:00 UTC is 07:00 in Tokyo
			ref:      time.Date(2024, 4, 4, 22, 0, 0, 0, time.UTC),
			want:     time.Date(2024, 4, 5, 8, 30, 0, 0, loc),
			wantJobs: []string{"start"},
		},
		{
			name:     "Should run jobs sharing a tick together",
			schedule: Schedule{Channels: []string{channelID}, StartCron: "0 9 * * *", EndCron: "0 9 * * *"},
			ref:      time.Date(2024, 4, 5, 7, 0, 0, 0, loc),
			want:     time.Date(2024, 4, 5, 9, 0, 0, 0, loc),
			wantJobs: []string{"start", "end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScheduler(t, tt.schedule)

			got, due, err := s.nextRun(tt.ref)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)

			var kinds []string
			for _, j := range due {
				kinds = append(kinds, j.kind)
			}
			assert.Equal(t, tt.wantJobs, kinds)
		})
	}
}

func Test_scheduler_runJobs(t *testing.T) {
	s, greet := newTestScheduler(t, Schedule{
		Channels:  []string{"C1", "C2"},
		StartCron: "30 8 * * *",
		EndCron:   "0 18 * * *",
	})

	greet.EXPECT().GreetStart(gomock.Any(), "C1").Return(nil, errors.New("channel_not_found")).Times(1)
	greet.EXPECT().GreetStart(gomock.Any(), "C2").Return(&entity.PostResult{OK: true}, nil).Times(1)
	greet.EXPECT().GreetEnd(gomock.Any(), "C1").Return(&entity.PostResult{OK: true}, nil).Times(1)
	greet.EXPECT().GreetEnd(gomock.Any(), "C2").Return(&entity.PostResult{OK: true, Holiday: true}, nil).Times(1)

	// a failing channel does not stop the others
	s.runJobs(context.Background(), s.jobs)
}

func Test_scheduler_Run_StopsOnCancel(t *testing.T) {
	s, _ := newTestScheduler(t, Schedule{Channels: []string{channelID}, StartCron: "30 8 * * *"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
