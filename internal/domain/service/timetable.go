package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain"
	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// Messages returned when a query has no classes to report. These are ordinary
// results, not errors.
const (
	NoClassesMessage     = "🎉 No classes today!"
	NoMoreClassesMessage = "No more classes today"
)

// DescribeToday renders every class scheduled for now's weekday, in start
// order. A weekday absent from the timetable yields the no-classes message.
func DescribeToday(tt *entity.Timetable, now time.Time) string {
	day := now.Weekday().String()
	classes := tt.ClassesOn(day)
	if len(classes) == 0 {
		return NoClassesMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s\n\n", day)
	for _, c := range classes {
		fmt.Fprintf(&b, "%s – %s\n🏫 %s\n\n", c.Time, c.Subject, c.Room)
	}
	return strings.TrimRight(b.String(), "\n")
}

// NextClass returns the first class today starting strictly after now.
// A class starting at exactly now has already started and is not "next".
func NextClass(tt *entity.Timetable, now time.Time) (entity.ClassEntry, bool) {
	for _, c := range tt.ClassesOn(now.Weekday().String()) {
		if c.Start.At(now).After(now) {
			return c, true
		}
	}
	return entity.ClassEntry{}, false
}

// DescribeNext renders the next upcoming class today, or the no-more-classes
// message when every class has already started or the day is empty.
func DescribeNext(tt *entity.Timetable, now time.Time) string {
	c, ok := NextClass(tt, now)
	if !ok {
		return NoMoreClassesMessage
	}
	return fmt.Sprintf("⏭ Next Class\n\n%s\n🕒 %s\n🏫 %s", c.Subject, c.Time, c.Room)
}

// DescribeWeek renders the whole timetable in Monday→Sunday order. Weekdays
// absent from the document are omitted entirely.
func DescribeWeek(tt *entity.Timetable) string {
	var b strings.Builder
	b.WriteString("📅 Weekly Timetable\n\n")
	for _, day := range domain.WeekdayOrder {
		classes := tt.ClassesOn(day)
		if len(classes) == 0 {
			continue
		}
		b.WriteString(day + "\n")
		for _, c := range classes {
			fmt.Fprintf(&b, "%s – %s (%s)\n", c.Time, c.Subject, c.Room)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type timetableService struct {
	source contract.TimetableSource
	logger *zap.Logger
	now    func() time.Time
}

func newTimetable(source contract.TimetableSource, logger *zap.Logger, now func() time.Time) *timetableService {
	return &timetableService{
		source: source,
		logger: logger,
		now:    now,
	}
}

func (s *timetableService) Today() (string, error) {
	tt, err := s.source.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load timetable: %w", err)
	}
	return DescribeToday(tt, s.now()), nil
}

func (s *timetableService) NextClass() (string, error) {
	tt, err := s.source.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load timetable: %w", err)
	}
	return DescribeNext(tt, s.now()), nil
}

func (s *timetableService) Week() (string, error) {
	tt, err := s.source.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load timetable: %w", err)
	}
	return DescribeWeek(tt), nil
}
