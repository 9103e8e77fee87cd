package filelock

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockDataCreatesLockFile(t *testing.T) {
	data := filepath.Join(t.TempDir(), "sub", "tasks.json")

	unlock, err := LockData(data)
	require.NoError(t, err)
	assert.FileExists(t, data+".lock")
	assert.NoFileExists(t, data)
	require.NoError(t, unlock())
}

func TestLockSerializesHolders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.lock")

	unlock, err := Lock(path)
	require.NoError(t, err)

	var (
		mu       sync.Mutex
		acquired bool
		done     = make(chan struct{})
	)
	go func() {
		defer close(done)
		second, err := Lock(path)
		if err != nil {
			return
		}
		mu.Lock()
		acquired = true
		mu.Unlock()
		_ = second()
	}()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.False(t, acquired, "second holder must wait")
	mu.Unlock()

	require.NoError(t, unlock())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second holder never acquired the lock")
	}
	assert.True(t, acquired)
}
