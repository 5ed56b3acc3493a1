package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/haldor/keepintouch/internal/models"
)

// File implements Store backed by a single pretty-printed JSON array
// file. Every mutation is a whole-file read-modify-write guarded by a
// mutex, so in-process writers (generator loop, concurrent requests)
// cannot lose each other's updates.
type File struct {
	path string

	mu        sync.Mutex
	lastWrite time.Time // wall clock of the last internal write
}

// Open creates a File store at path. A missing file is initialized to
// an empty array; the parent directory is created if needed.
func Open(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir: %w", err)
	}
	f := &File{path: abs}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		if err := f.writeLocked(nil); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("storage: stat %s: %w", path, err)
	}
	return f, nil
}

// Path returns the absolute path of the backing file.
func (f *File) Path() string {
	return f.path
}

// LastWrite returns the time of the most recent write made through
// this store. The watcher uses it to tell internal writes apart from
// out-of-band edits.
func (f *File) LastWrite() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastWrite
}

// Load returns all records in insertion order.
func (f *File) Load() ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readLocked()
}

// Append adds one record to the log and returns the new state.
func (f *File) Append(rec models.Record) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recs, err := f.readLocked()
	if err != nil {
		return nil, err
	}
	recs = append(recs, rec)
	if err := f.writeLocked(recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Replace overwrites the log with recs.
func (f *File) Replace(recs []models.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeLocked(recs)
}

func (f *File) readLocked() ([]models.Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	var recs []models.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", f.path, err)
	}
	return recs, nil
}

// writeLocked serializes recs and writes them atomically via a temp
// file and rename.
func (f *File) writeLocked(recs []models.Record) error {
	if recs == nil {
		recs = []models.Record{}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".keepintouch-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	f.lastWrite = time.Now()
	return nil
}
