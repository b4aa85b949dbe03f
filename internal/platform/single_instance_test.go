package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	port := portFromName("Pomodoro")

	assert.Equal(t, port, portFromName("Pomodoro"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	appName := "pomodoro-test-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	t.Cleanup(func() { _ = guard.Release() })

	_, err = AcquireSingleInstance(appName)

	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestReleaseAllowsReacquire(t *testing.T) {
	appName := "pomodoro-test-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestActivateRunningInstance(t *testing.T) {
	appName := "pomodoro-test-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	t.Cleanup(func() { _ = guard.Release() })

	activated := make(chan struct{}, 1)
	go guard.Serve(func() { activated <- struct{}{} })

	require.NoError(t, ActivateRunningInstance(appName, time.Second))

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestActivateWithoutRunningInstanceFails(t *testing.T) {
	err := ActivateRunningInstance("pomodoro-test-"+t.Name(), 200*time.Millisecond)

	assert.Error(t, err)
}

func TestEntryName(t *testing.T) {
	assert.Equal(t, "pomodoro", entryName("  "))
	assert.Equal(t, "focus-timer", entryName("Focus Timer"))
}
