package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/username/easter-report/internal/calendar"
)

const lockSuffix = ".lock"

// WriteFile renders the report and writes it to path.
// The document is rendered in memory, written to a temporary file next to
// path and renamed over it, so a failed run never leaves a partial report
// or clobbers the previous one. Concurrent writers to the same path are
// rejected.
func WriteFile(path string, dates []calendar.EasterDate, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, dates, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	lockPath := path + lockSuffix
	fileLock := flock.New(lockPath)

	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("%w: acquiring lock: %v", ErrIO, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s is being written by another process", ErrIO, path)
	}
	defer func() {
		fileLock.Unlock()
		os.Remove(lockPath)
	}()

	return replaceFile(path, buf.Bytes())
}

func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary report file: %v", ErrIO, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write report file: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to close report file: %v", ErrIO, err)
	}

	// CreateTemp opens with 0600
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to set report file mode: %v", ErrIO, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace report file: %v", ErrIO, err)
	}

	return nil
}
