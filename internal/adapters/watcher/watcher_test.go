package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/watcher"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func nextEvent(t *testing.T, events <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a file event")
		return ports.WatchEvent{}
	}
}

func TestWatcher_ReportsChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".build"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor"), 0o750))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	w := watcher.NewWatcher(log)
	require.NoError(t, w.Start(ctx, root, []string{"vendor"}))
	t.Cleanup(func() { _ = w.Stop() })

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	// Skipped directories produce no events.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".build", "jigapp"), []byte("bin"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "vendor", "dep.go"), []byte("package dep"), 0o600))

	target := filepath.Join(root, "tasks.go")
	require.NoError(t, os.WriteFile(target, []byte("package main"), 0o600))

	ev := nextEvent(t, events)
	assert.Equal(t, target, ev.Path)
}

func TestWatcher_StartTwice(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	require.NoError(t, w.Start(t.Context(), root, nil))
	t.Cleanup(func() { _ = w.Stop() })

	assert.Error(t, w.Start(t.Context(), root, nil))
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	assert.NoError(t, w.Stop())
}
