// Package writer exposes file sinks for encoded metadata records.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes a whole file atomically.
type FileWriter struct {
	Path string
}

// WriteFile writes buf to the configured path atomically via temp file + rename.
func (w *FileWriter) WriteFile(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".vhdxkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// PatchWriter overwrites a byte range of an existing file in place.
type PatchWriter struct {
	Path string
}

// WriteAt writes buf at off and syncs the file. The file is never extended.
func (w *PatchWriter) WriteAt(buf []byte, off int64) error {
	f, err := os.OpenFile(w.Path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if off < 0 || off+int64(len(buf)) > info.Size() {
		return fmt.Errorf("patch [%d+%d] outside %d-byte file", off, len(buf), info.Size())
	}
	if _, err := f.WriteAt(buf, off); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return f.Close()
}
