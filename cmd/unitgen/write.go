package main

import (
	"os"
	"path/filepath"
)

// tempFile is the subset of *os.File used by writeFileAtomic.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic stages data in a hidden temp file next to targetPath and renames it
// into place. On any failure after the temp file exists, the temp file is removed.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) error {
	tmp, err := createTempFile(filepath.Dir(targetPath), "."+filepath.Base(targetPath)+"-*")
	if err != nil {
		return err
	}
	if err := commitTemp(tmp, targetPath, data, perm); err != nil {
		_ = removeFile(tmp.Name())
		return err
	}
	return nil
}

// commitTemp writes, closes, chmods and renames tmp. The file is always closed; a write
// error takes precedence over a close error.
func commitTemp(tmp tempFile, targetPath string, data []byte, perm os.FileMode) error {
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return closeErr
	}
	if err := chmodFile(tmp.Name(), perm); err != nil {
		return err
	}
	return renameFile(tmp.Name(), targetPath)
}
