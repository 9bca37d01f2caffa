package timetable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := []byte(`{
		"Monday": [
			{"time": "9:00 AM", "subject": "Math", "room": "101"},
			{"time": "11:30 AM", "subject": "Physics", "room": "202"}
		],
		"Friday": [
			{"time": "2:00 PM", "subject": "Chemistry", "room": "303"}
		]
	}`)

	tt, err := Parse(doc)
	require.NoError(t, err)

	monday := tt.ClassesOn("Monday")
	require.Len(t, monday, 2)
	assert.Equal(t, "Math", monday[0].Subject)
	assert.Equal(t, entity.TimeOfDay{Hour: 9, Minute: 0}, monday[0].Start)
	assert.Equal(t, entity.TimeOfDay{Hour: 11, Minute: 30}, monday[1].Start)

	friday := tt.ClassesOn("Friday")
	require.Len(t, friday, 1)
	assert.Equal(t, entity.TimeOfDay{Hour: 14, Minute: 0}, friday[0].Start)

	assert.Nil(t, tt.ClassesOn("Tuesday"))
}

func TestParse_SortsUnorderedDay(t *testing.T) {
	doc := []byte(`{
		"Monday": [
			{"time": "2:00 PM", "subject": "Chemistry", "room": "303"},
			{"time": "9:00 AM", "subject": "Math", "room": "101"},
			{"time": "11:30 AM", "subject": "Physics", "room": "202"}
		]
	}`)

	tt, err := Parse(doc)
	require.NoError(t, err)

	monday := tt.ClassesOn("Monday")
	require.Len(t, monday, 3)
	assert.Equal(t, "Math", monday[0].Subject)
	assert.Equal(t, "Physics", monday[1].Subject)
	assert.Equal(t, "Chemistry", monday[2].Subject)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "Should reject invalid JSON",
			doc:  `{"Monday": [`,
		},
		{
			name: "Should reject unknown weekday key",
			doc:  `{"Funday": [{"time": "9:00 AM", "subject": "Math", "room": "101"}]}`,
		},
		{
			name: "Should reject unparsable time",
			doc:  `{"Monday": [{"time": "25:00", "subject": "Math", "room": "101"}]}`,
		},
		{
			name: "Should reject hour outside 1-12",
			doc:  `{"Monday": [{"time": "13:00 PM", "subject": "Math", "room": "101"}]}`,
		},
		{
			name: "Should reject hour zero",
			doc:  `{"Monday": [{"time": "0:10 AM", "subject": "Math", "room": "101"}]}`,
		},
		{
			name: "Should reject missing time field",
			doc:  `{"Monday": [{"subject": "Math", "room": "101"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.ErrorIs(t, err, ErrDataFormat)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    entity.TimeOfDay
		wantErr bool
	}{
		{input: "9:00 AM", want: entity.TimeOfDay{Hour: 9, Minute: 0}},
		{input: "12:00 AM", want: entity.TimeOfDay{Hour: 0, Minute: 0}},
		{input: "12:30 PM", want: entity.TimeOfDay{Hour: 12, Minute: 30}},
		{input: "11:59 PM", want: entity.TimeOfDay{Hour: 23, Minute: 59}},
		{input: " 9:05 am ", want: entity.TimeOfDay{Hour: 9, Minute: 5}},
		{input: "9:60 AM", wantErr: true},
		// Hour zero reads fine to time.Parse but has no place on a
		// 12-hour clock; midnight is written "12:00 AM".
		{input: "0:10 AM", wantErr: true},
		{input: "0:00 AM", wantErr: true},
		{input: "00:30 PM", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrDataFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "9:05 AM", entity.TimeOfDay{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "12:00 AM", entity.TimeOfDay{Hour: 0, Minute: 0}.String())
	assert.Equal(t, "2:00 PM", entity.TimeOfDay{Hour: 14, Minute: 0}.String())
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timetable.json")

	doc := `{"Monday": [{"time": "9:00 AM", "subject": "Math", "room": "101"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	source := NewFileSource(path)

	tt, err := source.Load()
	require.NoError(t, err)
	require.Len(t, tt.ClassesOn("Monday"), 1)

	// Edits become visible on the next load without any cache.
	doc = `{"Monday": [], "Tuesday": [{"time": "8:00 AM", "subject": "History", "room": "104"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tt, err = source.Load()
	require.NoError(t, err)
	assert.Empty(t, tt.ClassesOn("Monday"))
	require.Len(t, tt.ClassesOn("Tuesday"), 1)
}

func TestFileSource_LoadMissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))

	_, err := source.Load()
	require.ErrorIs(t, err, ErrDataFormat)
}
