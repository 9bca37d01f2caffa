package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain"
	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
)

// ErrDataFormat marks a timetable document that is missing, unparsable, or
// contains an invalid time field. It indicates a persistent data problem and
// is never retried internally.
var ErrDataFormat = errors.New("invalid timetable data")

// FileSource loads the timetable document from a JSON file. Load re-reads the
// file every time so edits become visible on the next evaluation without any
// cache invalidation.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Load() (*entity.Timetable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataFormat, s.path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a timetable document. Day keys must be valid
// weekday names and every class time must parse as a 12-hour time of day.
// Classes within a day are sorted by start time, so the engine stays correct
// even when the document lists them out of order.
func Parse(data []byte) (*entity.Timetable, error) {
	var days map[string][]entity.ClassEntry
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}

	for day, classes := range days {
		if !domain.ValidWeekdays[day] {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrDataFormat, day)
		}
		for i := range classes {
			start, err := ParseTimeOfDay(classes[i].Time)
			if err != nil {
				return nil, fmt.Errorf("%s class %q: %w", day, classes[i].Subject, err)
			}
			classes[i].Start = start
		}
		sort.SliceStable(classes, func(i, j int) bool {
			a, b := classes[i].Start, classes[j].Start
			if a.Hour != b.Hour {
				return a.Hour < b.Hour
			}
			return a.Minute < b.Minute
		})
	}

	return &entity.Timetable{Days: days}, nil
}

// ParseTimeOfDay parses a "H:MM AM/PM" wall-clock time. The hour must be
// 1-12: time.Parse alone would also admit "0:10 AM", which is not a valid
// 12-hour clock reading.
func ParseTimeOfDay(s string) (entity.TimeOfDay, error) {
	clean := strings.ToUpper(strings.TrimSpace(s))

	t, err := time.Parse("3:04 PM", clean)
	if err != nil {
		return entity.TimeOfDay{}, fmt.Errorf("%w: time %q: %v", ErrDataFormat, s, err)
	}

	hourToken, _, _ := strings.Cut(clean, ":")
	hour, err := strconv.Atoi(hourToken)
	if err != nil || hour < 1 || hour > 12 {
		return entity.TimeOfDay{}, fmt.Errorf("%w: time %q: hour must be between 1 and 12", ErrDataFormat, s)
	}

	return entity.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}
