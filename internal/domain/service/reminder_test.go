package service

import (
	"context"
	"testing"
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
	"github.com/classdesk/slack-timetable-bot/internal/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestComputeDueReminders(t *testing.T) {
	tt := mondayTimetable(t) // 9:00 AM Math, 11:30 AM Physics, 2:00 PM Chemistry
	recipients := []string{"C111", "C222"}

	tests := []struct {
		name         string
		now          time.Time
		wantSubjects []string
		wantCount    int
	}{
		{
			name:         "Should flag class 9 minutes before start",
			now:          mondayAt(t, 8, 51),
			wantSubjects: []string{"Math"},
			wantCount:    2,
		},
		{
			name:         "Should flag class exactly 10 minutes before start",
			now:          mondayAt(t, 8, 50),
			wantSubjects: []string{"Math"},
			wantCount:    2,
		},
		{
			name:      "Should not flag class 11 minutes before start",
			now:       mondayAt(t, 8, 49),
			wantCount: 0,
		},
		{
			name:      "Should not flag class 8 minutes before start",
			now:       mondayAt(t, 8, 52),
			wantCount: 0,
		},
		{
			name:      "Should not flag an already-started class",
			now:       mondayAt(t, 9, 0),
			wantCount: 0,
		},
		{
			name:      "Should produce nothing on a day with no classes",
			now:       mondayAt(t, 8, 51).AddDate(0, 0, 1), // Tuesday
			wantCount: 0,
		},
		{
			name:         "Should flag the afternoon class independently",
			now:          mondayAt(t, 13, 50).Add(30 * time.Second), // 9m30s before 2:00 PM
			wantSubjects: []string{"Chemistry"},
			wantCount:    2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeDueReminders(tt, recipients, tc.now, DefaultBand)
			require.Len(t, got, tc.wantCount)

			for i, o := range got {
				assert.Equal(t, tc.wantSubjects[i/len(recipients)], o.Class.Subject)
				assert.Equal(t, recipients[i%len(recipients)], o.SlackChannelID)
			}
		})
	}
}

func TestComputeDueReminders_OncePerRecipient(t *testing.T) {
	tt := mondayTimetable(t)
	recipients := []string{"C111", "C222", "C333"}

	got := ComputeDueReminders(tt, recipients, mondayAt(t, 8, 51), DefaultBand)

	require.Len(t, got, 3)
	seen := map[string]int{}
	for _, o := range got {
		assert.Equal(t, "Math", o.Class.Subject)
		seen[o.SlackChannelID]++
	}
	for _, r := range recipients {
		assert.Equal(t, 1, seen[r])
	}
}

func TestReminderService_Tick(t *testing.T) {
	subscribers := []*entity.Subscriber{
		{ID: 1, SlackChannelID: "C111"},
		{ID: 2, SlackChannelID: "C222"},
	}

	tests := []struct {
		name      string
		now       time.Time
		buildMock func(t *testing.T, m allMocks)
		wantErr   error
	}{
		{
			name: "Should deliver one reminder per subscriber and mark each sent",
			now:  mondayAt(t, 8, 51),
			buildMock: func(t *testing.T, m allMocks) {
				m.mockSource.EXPECT().Load().Return(mondayTimetable(t), nil).Times(1)
				m.mockSubscriberRepo.EXPECT().GetAll().Return(subscribers, nil).Times(1)

				for _, channel := range []string{"C111", "C222"} {
					key := entity.ReminderKey{
						ClassDate:      "2026-01-05",
						ClassTime:      "9:00 AM",
						Subject:        "Math",
						SlackChannelID: channel,
					}
					m.mockReminderLogRepo.EXPECT().WasSent(key).Return(false, nil).Times(1)
					m.mockSlackClient.EXPECT().
						PostMessage(channel, gomock.Any()).
						Return("", "", nil).Times(1)
					m.mockReminderLogRepo.EXPECT().MarkSent(key).Return(nil).Times(1)
				}
			},
		},
		{
			name: "Should skip subscribers already reminded",
			now:  mondayAt(t, 8, 51),
			buildMock: func(t *testing.T, m allMocks) {
				m.mockSource.EXPECT().Load().Return(mondayTimetable(t), nil).Times(1)
				m.mockSubscriberRepo.EXPECT().GetAll().Return(subscribers, nil).Times(1)

				m.mockReminderLogRepo.EXPECT().WasSent(gomock.Any()).Return(true, nil).Times(2)
				// No PostMessage, no MarkSent.
			},
		},
		{
			name: "Should keep delivering after one recipient fails",
			now:  mondayAt(t, 8, 51),
			buildMock: func(t *testing.T, m allMocks) {
				m.mockSource.EXPECT().Load().Return(mondayTimetable(t), nil).Times(1)
				m.mockSubscriberRepo.EXPECT().GetAll().Return(subscribers, nil).Times(1)

				m.mockReminderLogRepo.EXPECT().WasSent(gomock.Any()).Return(false, nil).Times(2)
				m.mockSlackClient.EXPECT().
					PostMessage("C111", gomock.Any()).
					Return("", "", assert.AnError).Times(1)
				m.mockSlackClient.EXPECT().
					PostMessage("C222", gomock.Any()).
					Return("", "", nil).Times(1)

				// Only the successful delivery is recorded, so C111 is
				// retried on the next in-band tick.
				m.mockReminderLogRepo.EXPECT().
					MarkSent(gomock.Cond(func(key entity.ReminderKey) bool {
						return key.SlackChannelID == "C222"
					})).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should do nothing outside the look-ahead band",
			now:  mondayAt(t, 8, 30),
			buildMock: func(t *testing.T, m allMocks) {
				m.mockSource.EXPECT().Load().Return(mondayTimetable(t), nil).Times(1)
				m.mockSubscriberRepo.EXPECT().GetAll().Return(subscribers, nil).Times(1)
			},
		},
		{
			name: "Should stop early with no subscribers",
			now:  mondayAt(t, 8, 51),
			buildMock: func(t *testing.T, m allMocks) {
				m.mockSource.EXPECT().Load().Return(mondayTimetable(t), nil).Times(1)
				m.mockSubscriberRepo.EXPECT().GetAll().Return(nil, nil).Times(1)
			},
		},
		{
			name: "Should surface a malformed timetable document",
			now:  mondayAt(t, 8, 51),
			buildMock: func(t *testing.T, m allMocks) {
				m.mockSource.EXPECT().Load().Return(nil, timetable.ErrDataFormat).Times(1)
			},
			wantErr: timetable.ErrDataFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tc.buildMock(t, m)

			svc := newTestReminder(t, m, tc.now)
			err := svc.Tick(context.Background())

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReminderService_PruneLog(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	cutoff := mondayAt(t, 0, 0)
	m.mockReminderLogRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(3), nil).Times(1)

	svc := newTestReminder(t, m, mondayAt(t, 8, 51))
	require.NoError(t, svc.PruneLog(cutoff))
}

func TestFormatReminder(t *testing.T) {
	c := class(t, "9:00 AM", "Math", "101")
	assert.Equal(t, "⏰ Class Reminder\n\nMath\n🕒 9:00 AM\n🏫 101", FormatReminder(c))
}
