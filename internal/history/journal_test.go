package history

import (
	"context"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	journal, err := Open(DatabasePath(t.TempDir(), "Pomodoro"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })
	return journal
}

func TestRecordAndCount(t *testing.T) {
	journal := openTestJournal(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, err := journal.Record(ctx, timer.PhaseWork, 25*time.Minute, base)
	require.NoError(t, err)
	_, err = journal.Record(ctx, timer.PhaseShortBreak, 5*time.Minute, base.Add(5*time.Minute))
	require.NoError(t, err)
	entry, err := journal.Record(ctx, timer.PhaseWork, 25*time.Minute, base.Add(30*time.Minute))
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 25*time.Minute, entry.Duration())

	count, err := journal.CompletedWorkSince(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = journal.CompletedWorkSince(ctx, base.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordRejectsIdle(t *testing.T) {
	journal := openTestJournal(t)

	_, err := journal.Record(context.Background(), timer.PhaseIdle, 0, time.Now())

	assert.Error(t, err)
}

func TestCompletedWorkToday(t *testing.T) {
	journal := openTestJournal(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	journal.now = func() time.Time { return now }

	_, err := journal.Record(ctx, timer.PhaseWork, time.Minute, now.Add(-24*time.Hour))
	require.NoError(t, err)
	_, err = journal.Record(ctx, timer.PhaseWork, time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)

	count, err := journal.CompletedWorkToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecentNewestFirst(t *testing.T) {
	journal := openTestJournal(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for i, phase := range []timer.Phase{timer.PhaseWork, timer.PhaseShortBreak, timer.PhaseWork} {
		_, err := journal.Record(ctx, phase, time.Minute, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	entries, err := journal.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, timer.PhaseWork, entries[0].Phase)
	assert.Equal(t, timer.PhaseShortBreak, entries[1].Phase)
}

func TestFollowRecordsCompletedPhases(t *testing.T) {
	journal := openTestJournal(t)
	config := model.TimerConfigFromMinutes(2, 1, 3, 4)
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	events := make(chan timer.Event, 4)
	events <- timer.Event{Type: timer.EventProgress, At: at}
	events <- timer.Event{Type: timer.EventPhaseChange, Previous: timer.PhaseWork, At: at, Snapshot: timer.Snapshot{Config: config}}
	events <- timer.Event{Type: timer.EventCommand, Command: "pause", At: at}
	events <- timer.Event{Type: timer.EventPhaseChange, Previous: timer.PhaseShortBreak, At: at.Add(time.Minute), Snapshot: timer.Snapshot{Config: config}}
	close(events)

	var recorded []Entry
	journal.Follow(context.Background(), events, func(entry Entry) {
		recorded = append(recorded, entry)
	})

	require.Len(t, recorded, 2)
	assert.Equal(t, timer.PhaseWork, recorded[0].Phase)
	assert.Equal(t, 2*time.Minute, recorded[0].Duration())
	assert.Equal(t, timer.PhaseShortBreak, recorded[1].Phase)
	assert.Equal(t, time.Minute, recorded[1].Duration())
}

func TestFollowStopsOnContextCancel(t *testing.T) {
	journal := openTestJournal(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		journal.Follow(ctx, make(chan timer.Event), nil)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Follow did not return after cancel")
	}
}
