package timetable

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupWatcherTest(t *testing.T) (path string, logs *observer.ObservedLogs) {
	t.Helper()

	dir := t.TempDir()
	path = filepath.Join(dir, "timetable.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Monday": []}`), 0o644))

	core, logs := observer.New(zap.InfoLevel)

	w, err := NewWatcher(NewFileSource(path), zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	w.Start(ctx)

	return path, logs
}

func TestWatcher_ReportsValidDocument(t *testing.T) {
	path, logs := setupWatcherTest(t)

	doc := `{"Monday": [{"time": "9:00 AM", "subject": "Math", "room": "101"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	require.Eventually(t, func() bool {
		return logs.FilterMessage("timetable document reloaded").Len() > 0
	}, 3*time.Second, 50*time.Millisecond, "expected reload log after a valid rewrite")
}

func TestWatcher_ReportsBrokenDocument(t *testing.T) {
	path, logs := setupWatcherTest(t)

	require.NoError(t, os.WriteFile(path, []byte(`{"Monday": [`), 0o644))

	require.Eventually(t, func() bool {
		return logs.FilterMessage("timetable document changed and failed validation").Len() > 0
	}, 3*time.Second, 50*time.Millisecond, "expected validation failure log after a broken rewrite")
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	path, logs := setupWatcherTest(t)

	sibling := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(sibling, []byte("unrelated"), 0o644))

	// Give the debounce window time to elapse; nothing should be logged
	// for a file the watcher does not track.
	time.Sleep(500 * time.Millisecond)
	assert.Zero(t, logs.Len(), "expected no logs for sibling file writes")
}
