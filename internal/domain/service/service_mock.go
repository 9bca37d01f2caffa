package service

import (
	"testing"
	"time"

	"github.com/classdesk/slack-timetable-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockSubscriberRepo  *mocks.MockSubscriberRepo
	mockReminderLogRepo *mocks.MockReminderLogRepo
	mockSource          *mocks.MockTimetableSource
	mockSlackClient     *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	subscriberRepo := mocks.NewMockSubscriberRepo(ctrl)
	dm.EXPECT().Subscriber().Return(subscriberRepo).AnyTimes()

	reminderLogRepo := mocks.NewMockReminderLogRepo(ctrl)
	dm.EXPECT().ReminderLog().Return(reminderLogRepo).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockSubscriberRepo:  subscriberRepo,
		mockReminderLogRepo: reminderLogRepo,
		mockSource:          mocks.NewMockTimetableSource(ctrl),
		mockSlackClient:     mocks.NewMockSlackClient(ctrl),
	}

	return
}

// fixedClock pins the evaluation instant for deterministic tests.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestReminder(t *testing.T, m allMocks, now time.Time) *reminderService {
	t.Helper()

	svc := newReminder(m.mockSource, m.mockDataManager, m.mockSlackClient, zap.NewNop(), DefaultBand, fixedClock(now))
	require.NotNil(t, svc)
	return svc
}
