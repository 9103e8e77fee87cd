package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFiresForWatchedFileOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")

	var calls atomic.Int32
	w, err := New(path, func() { calls.Add(1) })
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go w.Run(ctx, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("[]"), 0o600))
	time.Sleep(3 * debounceDelay)
	assert.Zero(t, calls.Load(), "unrelated files are ignored")

	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("[ ]"), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

	time.Sleep(3 * debounceDelay)
	assert.Equal(t, int32(1), calls.Load(), "rapid writes are coalesced")
}
