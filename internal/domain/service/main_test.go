package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-greet-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const botUserID = "UBOT"

type allMocks struct {
	mockDirectory *mocks.MockDirectory
	mockReactions *mocks.MockReactionSource
	mockRoster    *mocks.MockRosterSource
	mockHolidays  *mocks.MockHolidayCalendar
	mockMessenger *mocks.MockMessenger
}

func tokyo(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func newServiceTestMock(t *testing.T) (allMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	return allMocks{
		mockDirectory: mocks.NewMockDirectory(ctrl),
		mockReactions: mocks.NewMockReactionSource(ctrl),
		mockRoster:    mocks.NewMockRosterSource(ctrl),
		mockHolidays:  mocks.NewMockHolidayCalendar(ctrl),
		mockMessenger: mocks.NewMockMessenger(ctrl),
	}, ctrl
}

func newTestGreet(t *testing.T, m allMocks, now time.Time) *greetService {
	t.Helper()

	return newGreet(Dependencies{
		Directory: m.mockDirectory,
		Reactions: m.mockReactions,
		Roster:    m.mockRoster,
		Holidays:  m.mockHolidays,
		Messenger: m.mockMessenger,
		BotUserID: botUserID,
		Location:  tokyo(t),
		Now:       func() time.Time { return now },
		Logger:    zap.NewNop(),
	})
}
