package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileName is the active log file inside the state directory.
const FileName = "tabshell.log"

// RotatingFile is an io.Writer that rolls the log over once it grows past
// maxSize, keeping at most maxBackups old files.
type RotatingFile struct {
	mu          sync.Mutex
	dir         string
	maxSize     int64
	maxBackups  int
	currentFile *os.File
	currentSize int64
}

// OpenRotatingFile opens (or creates) dir/tabshell.log for appending.
func OpenRotatingFile(dir string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	r := &RotatingFile{
		dir:        dir,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *RotatingFile) Path() string {
	return filepath.Join(r.dir, FileName)
}

func (r *RotatingFile) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.currentSize = info.Size()
	}
	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *RotatingFile) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.currentFile = nil

	backup := filepath.Join(r.dir, FileName+"."+time.Now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	r.prune()

	r.currentSize = 0
	return r.open()
}

// prune removes the oldest backups beyond maxBackups.
func (r *RotatingFile) prune() {
	if r.maxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}
	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), FileName+".") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= r.maxBackups {
		return
	}
	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, name))
	}
}

// Close closes the active file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
