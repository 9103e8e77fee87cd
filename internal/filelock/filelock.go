// Package filelock provides advisory file locking so that two ttd processes
// on one machine serialize their read-modify-write cycles on the task file.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	lockFileMode = 0o600
	lockDirMode  = 0o750
	lockSuffix   = ".lock"
)

// Lock acquires an exclusive advisory lock on the file at path,
// creating it if it does not exist. The returned function releases
// the lock and must be called when the critical section is done.
//
// Only one process can hold the lock at a time; other callers block
// until the lock is available.
func Lock(path string) (unlock func() error, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFileMode) //nolint:gosec // lock file path from trusted source
	if err != nil {
		return nil, err
	}

	if err := lockFile(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() error {
		unlockErr := unlockFile(f)
		closeErr := f.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}

// PathFor returns the lock file guarding dataPath.
func PathFor(dataPath string) string {
	return dataPath + lockSuffix
}

// LockData locks the sibling lock file of dataPath, creating the parent
// directory when needed.
func LockData(dataPath string) (unlock func() error, err error) {
	if err := os.MkdirAll(filepath.Dir(dataPath), lockDirMode); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}
	unlock, err = Lock(PathFor(dataPath))
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", dataPath, err)
	}
	return unlock, nil
}
